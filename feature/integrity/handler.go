package integrity

import (
	"place-manager/core/logger"
	"place-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/places", h.HandlePlacesCheck)
	group.Get("/cache", h.HandleCacheCheck)
}

// HandleIntegrityCheck runs all integrity checks.
// @Summary Run All Integrity Checks
// @Description Runs the schema, places and cache checks. A failing check is reported in place and does not fail the request.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]any)

	if r, err := h.service.CheckSchema(); err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = r
	}

	if r, err := h.service.CheckPlaces(ctx); err != nil {
		report["places"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["places"] = r
	}

	if r, err := h.service.CheckCache(ctx); err != nil {
		report["cache"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["cache"] = r
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the places table.
// @Summary Check Schema
// @Description Compares the places table with the expected columns and nullability.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema mismatch detected",
			zap.Strings("missing_columns", report.MissingColumns),
			zap.Strings("null_mismatches", report.NullMismatches),
		)
	}
	return c.JSON(report)
}

// HandlePlacesCheck summarizes the stored places.
// @Summary Check Places
// @Description Counts live and soft-deleted places and reports the latest update time.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.PlacesReport "Places Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/places [get]
func (h *Handler) HandlePlacesCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckPlaces(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Places check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleCacheCheck inspects the cached snapshot.
// @Summary Check Cache
// @Description Reports whether a snapshot is cached, its age and whether it normalizes.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.CacheReport "Cache Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/cache [get]
func (h *Handler) HandleCacheCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckCache(c.Context())
	if err != nil {
		l.Error("Cache check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status == "invalid" {
		l.Warn("Cached snapshot is invalid", zap.String("error", report.Error))
	}
	return c.JSON(report)
}
