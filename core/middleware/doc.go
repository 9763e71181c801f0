// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: checks the X-API-Key header against server.api_key. An empty key
//     disables the check so a local read API can run without credentials.
//   - RayID: reuses the incoming X-Ray-ID header or generates a UUID, stores it in
//     the request locals and echoes it in the response for tracing.
//
// RayID is registered first so that every later log line carries the id. The
// /swagger and /metrics routes are mounted before Auth and stay public.
package middleware
