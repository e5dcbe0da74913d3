package remote

import (
	"encoding/json"
	"errors"
	"fmt"
)

// GenericFailureMessage is surfaced when an error response carries no
// usable detail, or when its body cannot be parsed at all.
const GenericFailureMessage = "Something went wrong. Please try again."

// ErrMissingReport marks a success response from the food-analysis
// service that lacks the report payload the screen needs.
var ErrMissingReport = errors.New("analysis response did not include a report")

// StatusError is an HTTP-level failure: the service answered, but with
// a non-success status. Message comes from the error body's optional
// "detail" field, or GenericFailureMessage when there is none.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Message)
}

// ConnectError is a network-level failure: no response could be
// obtained at all. Callers show a "check your connection" style message
// for this kind and a service-derived message for StatusError.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return "could not reach service: " + e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func IsConnectError(err error) bool {
	var connectErr *ConnectError
	return errors.As(err, &connectErr)
}

// AsStatusError unpacks an HTTP-level failure from an error chain.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

type errorBody struct {
	Detail string `json:"detail"`
}

// failureMessage extracts the human-readable message from an error
// body. A body that is not JSON, or whose detail is absent or not a
// string, yields the generic fallback instead of a parse error.
func failureMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return GenericFailureMessage
	}
	if parsed.Detail == "" {
		return GenericFailureMessage
	}
	return parsed.Detail
}
