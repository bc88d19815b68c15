// Copyright (c) 2026 Fitfolio. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, cookie settings, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Security: JWT issuer and session cookie configuration.
  - Cache Taxonomy: Redis key prefixes.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "fitfolio-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "fitfolio.app"

	// SessionCookieName is the name of the cookie that carries the session token.
	SessionCookieName = "token"

	// SessionTokenTTL is the lifetime of an issued session token. There is no
	// server-side revocation: a token stays valid until this expiry, even
	// after logout.
	SessionTokenTTL = 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixResults keys the cached calculation list of a single user.
	RedisPrefixResults = "fitness:results:"
)

// # Cache Timing

const (
	// ResultCacheTTL bounds staleness of the per-user calculation cache.
	// Writes invalidate eagerly; the TTL is a backstop.
	ResultCacheTTL = 5 * time.Minute
)
