// Package api implements the client for the backend event-sync endpoint.
//
// A sync is a single POST of the full record set; the server answers with
// insert/update accounting. Transient failures (5xx, timeouts, connection
// errors) are retried with exponential backoff, while authentication and
// other client errors fail immediately so a bad key never burns the retry
// budget.
package api
