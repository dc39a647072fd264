// Package service contains the application use cases: signup and signin,
// the caller's profile, and owner-scoped bookmark management.
//
// Services are stateless. They receive their stores and collaborators through
// constructors, talk to storage only through the interfaces in internal/store,
// and report failures as the sentinel errors in errors.go (wrapped in
// ServiceError where extra context helps). Translating those errors to HTTP
// statuses is left to internal/api.
package service
