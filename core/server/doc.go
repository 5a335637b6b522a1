// Package server holds the HTTP server configuration.
//
// The main entry point (cmd/start.go) owns the Fiber application lifecycle; this package
// only describes the settings it needs: the listen port and the API key that protects every
// route except the swagger documentation.
package server
