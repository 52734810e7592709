// Package shared holds the request and response plumbing common to all HTTP
// handlers: trace IDs in contexts, JSON responses and request validation.
package shared
