// Package metrics holds the Prometheus collectors of the sync pipeline.
//
// Collectors are package-level and registered with the default registry on import.
// The start command mounts Handler at /metrics.
package metrics
