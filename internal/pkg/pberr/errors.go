package pberr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeInternalError       = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found, or when the
	// requester is not allowed to know whether it exists.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrUnauthorized is returned when a request lacks valid credentials.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "could not validate credentials")

	// ErrConstraint is returned when a write conflicts with a database constraint.
	ErrConstraint = New(fiber.StatusBadRequest, CodeConstraintViolation, "request conflicts with existing data")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type PulseError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *PulseError {
	return &PulseError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e PulseError) Msg(format string, parts ...interface{}) *PulseError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e PulseError) WithExtras(extras Extras) *PulseError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *PulseError {
	// copy ErrInvalidRequest as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *PulseError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
