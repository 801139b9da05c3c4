package server

import "time"

const (
	readTimeout = 5 * time.Second
	// POST /admin/refresh holds its response for a whole fetch and pipeline run.
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second

	// minFetchInterval spaces fetches from the loop and the admin endpoint.
	minFetchInterval = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
