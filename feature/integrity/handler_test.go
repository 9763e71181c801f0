package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"place-manager/core/database"
	"place-manager/feature/overpass"
	"place-manager/feature/places/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, cache overpass.Cache) *fiber.App {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &models.Place{}))

	app := fiber.New()
	feature := NewFeature(db, cache, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func getJSON(t *testing.T, app *fiber.App, url string) (int, map[string]any) {
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleSchemaCheck(t *testing.T) {
	app := setupTestApp(t, nil)

	status, body := getJSON(t, app, "/integrity/schema")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["matched"])
}

func TestHandlePlacesCheck(t *testing.T) {
	app := setupTestApp(t, nil)

	status, body := getJSON(t, app, "/integrity/places")
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(0), body["live"])
	assert.NotContains(t, body, "last_updated_at")
}

func TestHandleCacheCheck(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		app := setupTestApp(t, &overpass.FileCache{Path: filepath.Join(t.TempDir(), "snapshot.json")})

		status, body := getJSON(t, app, "/integrity/cache")
		assert.Equal(t, 200, status)
		assert.Equal(t, "empty", body["status"])
	})

	t.Run("NotConfigured", func(t *testing.T) {
		app := setupTestApp(t, nil)

		status, body := getJSON(t, app, "/integrity/cache")
		assert.Equal(t, 500, status)
		assert.Contains(t, body["error"], "not configured")
	})
}

func TestHandleIntegrityCheck(t *testing.T) {
	app := setupTestApp(t, nil)

	status, body := getJSON(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "schema")
	assert.Contains(t, body, "places")

	cache, ok := body["cache"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "error", cache["status"])
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, nil, zap.NewNop())
	assert.Equal(t, "integrity", feature.Name())
	assert.False(t, feature.IsEnabled())
}
