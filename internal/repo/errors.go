package repo

import (
	"strconv"
)

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "HTTP " + strconv.Itoa(e.StatusCode)
}

// DecodeError is returned when the upstream body is not a stats document.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode stats: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
