package controllers

import (
	"errors"

	"github.com/lunahealth/luna/internal/remote"
)

// State tracks where a screen is in its submit cycle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// ErrRequestInFlight rejects a second submit while one is outstanding.
// The screen disables its trigger control, so hitting this means the
// guard did its job.
var ErrRequestInFlight = errors.New("a request is already in flight")

// CouldNotConnectMessage is shown for network-level failures, as
// opposed to a service that answered with an error.
const CouldNotConnectMessage = "Could not connect to the service. Check your connection and try again."

func isConnectFailure(err error) bool {
	return remote.IsConnectError(err)
}

// failureText maps a transport failure onto the message a screen shows.
func failureText(err error) string {
	if remote.IsConnectError(err) {
		return CouldNotConnectMessage
	}
	if statusErr, ok := remote.AsStatusError(err); ok {
		return statusErr.Message
	}
	return remote.GenericFailureMessage
}
