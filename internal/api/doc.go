// Package api implements the HTTP handlers for apiaries, hives, inspections,
// tasks, feedings, harvests and treatments.
//
// Handlers decode and validate the request body, call the matching service
// and write the JSON envelope defined in api/shared. Service and store errors
// are translated to status codes and client-safe messages by HandleAPIError,
// so internal details never reach the response body.
package api
