package places

import (
	"errors"
	"strconv"
	"time"

	"place-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for places.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the places routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/places", h.HandleListPlaces)
	app.Get("/places/:id", h.HandleGetPlace)
}

// HandleListPlaces returns all places, or the ones updated after a timestamp.
// @Summary List Places
// @Description List all places ordered by id. With updated_since only places updated after that instant are returned, oldest update first.
// @Tags places
// @Produce json
// @Param updated_since query string false "RFC3339 timestamp (e.g. '2024-03-01T00:00:00Z')"
// @Success 200 {array} models.PlaceResponse "Places"
// @Failure 400 {object} map[string]string "Invalid timestamp"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /places [get]
func (h *Handler) HandleListPlaces(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if raw := c.Query("updated_since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "updated_since must be an RFC3339 timestamp",
			})
		}
		places, err := h.service.ListUpdatedSince(c.Context(), since)
		if err != nil {
			l.Error("Listing updated places failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(places)
	}

	places, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Listing places failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(places)
}

// HandleGetPlace returns a single place.
// @Summary Get Place
// @Description Get a place by its OpenStreetMap id. Soft-deleted places are returned with deleted_at set.
// @Tags places
// @Produce json
// @Param id path int true "Place id"
// @Success 200 {object} models.PlaceResponse "Place"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /places/{id} [get]
func (h *Handler) HandleGetPlace(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id must be an integer",
		})
	}

	place, err := h.service.Get(c.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Getting place failed", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(place)
}
