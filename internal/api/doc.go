// Package api handles incoming HTTP requests, request validation and
// response formatting for the auth, user and bookmark endpoints. It
// translates service errors to status codes in one place (errors.go).
package api
