package boarderr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound            = "NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrUpstreamUnavailable is returned when the stats backend cannot be reached.
	ErrUpstreamUnavailable = New(fiber.StatusServiceUnavailable, CodeUpstreamUnavailable, "stats backend is not reachable")
)

type Extras map[string]any

type BoardError struct {
	StatusCode int    `example:"503"`
	ErrorCode  string `example:"UPSTREAM_UNAVAILABLE"`
	Message    string `example:"stats backend is not reachable"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *BoardError {
	return &BoardError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e BoardError) Msg(format string, parts ...any) *BoardError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e BoardError) WithExtras(extras Extras) *BoardError {
	e.Extras = &extras
	return &e
}

func (e *BoardError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
