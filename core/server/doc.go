// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package defines the
// listen port and the API key that guards the read API.
//
// # Usage
//
// This package is embedded by core/config and read by the start command.
package server
