package api

import "errors"

// Root of all errors returned by this library.
// Use errors.Is(err, ErrWattpilot) to catch any of them.
var ErrWattpilot = errors.New("wattpilot error")

type wattpilotError struct {
	kind string
	msg  string
	err  error
}

func (e *wattpilotError) Error() string {
	if e.err != nil && e.msg != "" {
		return e.kind + ": " + e.msg + ": " + e.err.Error()
	}
	if e.err != nil {
		return e.kind + ": " + e.err.Error()
	}
	return e.kind + ": " + e.msg
}

// Transport failures, timeouts waiting for auth or initialization, reconnect failures
type ConnectionError struct{ wattpilotError }

func NewConnectionError(msg string, cause error) *ConnectionError {
	return &ConnectionError{wattpilotError{kind: "connection error", msg: msg, err: cause}}
}

func (e *ConnectionError) Unwrap() error        { return e.err }
func (e *ConnectionError) Is(target error) bool { return target == ErrWattpilot }
func (e *ConnectionError) Message() string      { return e.msg }

// Credentials were rejected by the device
type AuthenticationError struct{ wattpilotError }

func NewAuthenticationError(msg string) *AuthenticationError {
	return &AuthenticationError{wattpilotError{kind: "authentication error", msg: msg}}
}

func (e *AuthenticationError) Unwrap() error        { return e.err }
func (e *AuthenticationError) Is(target error) bool { return target == ErrWattpilot }
func (e *AuthenticationError) Message() string      { return e.msg }

// Unknown property, value coercion failure, no firmware update available
type PropertyError struct{ wattpilotError }

func NewPropertyError(msg string, cause error) *PropertyError {
	return &PropertyError{wattpilotError{kind: "property error", msg: msg, err: cause}}
}

func (e *PropertyError) Unwrap() error        { return e.err }
func (e *PropertyError) Is(target error) bool { return target == ErrWattpilot }
func (e *PropertyError) Message() string      { return e.msg }

// A correlated command response reported a failure
type CommandError struct {
	wattpilotError

	RequestID int64
}

func NewCommandError(requestID int64, msg string) *CommandError {
	return &CommandError{wattpilotError: wattpilotError{kind: "command error", msg: msg}, RequestID: requestID}
}

func (e *CommandError) Unwrap() error        { return e.err }
func (e *CommandError) Is(target error) bool { return target == ErrWattpilot }
func (e *CommandError) Message() string      { return e.msg }
