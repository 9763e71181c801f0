package overpass

// DefaultQuery selects every node, way and relation accepting bitcoin.
// Areas are returned with a computed center so they can be stored as points.
const DefaultQuery = `[out:json][timeout:300];
(
  node["payment:bitcoin"="yes"];
  way["payment:bitcoin"="yes"];
  relation["payment:bitcoin"="yes"];
);
out center;`

// query returns the configured query or DefaultQuery.
func (c Config) query() string {
	if c.Query != "" {
		return c.Query
	}
	return DefaultQuery
}
