// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and the
// time slot engine, translating HTTP concerns to slot lookups, navigation and
// conversions.
package api
