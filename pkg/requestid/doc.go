// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client-supplied X-Request-ID header when it is made of
// 1 to 128 characters from [A-Za-z0-9._-] and generates a UUIDv4 otherwise.
// The ID is available through FromContext and is added to log records by
// LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractor(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
