// Package api contains the HTTP handlers for the compose page and the JSON
// generation endpoint.
//
// Handlers translate requests into domain.Fields, delegate to
// service.ComposeService, and map the resulting errors to status codes and
// user-facing messages via MapErrorToStatusCode and GetSafeErrorMessage.
// Raw error text never reaches a response body.
package api
