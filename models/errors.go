package models

import "fmt"

// Service errors. The helper maps each type to an HTTP status code.

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string {
	return e.Message
}

// ErrorInternalServer always wraps the upstream failure message.
type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}

func NewInternalError(action string, cause error) ErrorInternalServer {
	return ErrorInternalServer{Message: fmt.Sprintf("%s. Error: %v", action, cause)}
}
