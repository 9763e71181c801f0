package overpass

// Config holds configuration for the Overpass client.
type Config struct {
	// Endpoint is the Overpass interpreter URL.
	Endpoint string `mapstructure:"endpoint" default:"https://overpass-api.de/api/interpreter"`
	// Query overrides DefaultQuery when set.
	Query string `mapstructure:"query" default:""`
	// TimeoutSeconds bounds the whole HTTP exchange. The server side query timeout is 300s.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"330"`
	// UserAgent is sent with every request, as the Overpass usage policy asks.
	UserAgent string `mapstructure:"user_agent" default:"place-manager/1.0"`
}

// CacheConfig selects where the last raw response is kept.
type CacheConfig struct {
	// Backend is "file" or "object".
	Backend string `mapstructure:"backend" default:"file"`
	// Path is the file cache location. Empty selects DefaultCachePath().
	Path string `mapstructure:"path" default:""`
	// Object is the object key used by the object backend.
	Object string `mapstructure:"object" default:"overpass/last-osm-response.json"`
}

const (
	CacheBackendFile   = "file"
	CacheBackendObject = "object"
)
