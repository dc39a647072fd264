package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. The API layer maps them to
// status codes with errors.Is.
var (
	// ErrCredentialsTaken indicates the email is already registered.
	ErrCredentialsTaken = errors.New("credentials taken")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// The two cases are intentionally indistinguishable.
	ErrInvalidCredentials = errors.New("credentials incorrect")

	// ErrResourceNotFound indicates no resource with the given id belongs to
	// the caller. A resource owned by someone else is reported the same way.
	ErrResourceNotFound = errors.New("access to resource denied")
)

// ServiceError records which service operation failed. It unwraps to the
// underlying error so sentinel checks keep working.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
