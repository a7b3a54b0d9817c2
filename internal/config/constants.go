package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 60 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 60 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for health checks
const DBPingTimeout = 5 * time.Second

// Bearer tokens live for a fixed 48 hours and are never extended.
const SessionTokenTTL = 48 * time.Hour

// Background job intervals
const CleanupJobInterval = 5 * time.Minute

// Default rate limiting
const DefaultRateLimitPerMin = 60

// Catalog request limits
const (
	DefaultPageLimit  = 50
	MaxPageLimit      = 250
	MaxCategoryLength = 50
)
