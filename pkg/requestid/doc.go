// Package requestid attaches a correlation ID to every HTTP request served by
// the GrowBuddy API.
//
// Middleware reuses a client supplied X-Request-ID when it is at most 128
// characters of letters, digits, dashes and underscores, and otherwise
// generates a UUIDv4. The ID is stored in the request context, echoed in the
// response header and, through LoggerExtractor, added to every log record
// written with that context.
package requestid
