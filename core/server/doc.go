// Package server holds the HTTP server configuration.
//
// The start command owns the fiber application itself; this package only defines the
// settings it reads: listening port, API key and graceful shutdown bound.
package server
