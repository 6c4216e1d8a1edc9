// errs/errs.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package errs defines the process-wide error taxonomy shared by the CLI,
// the pipeline, and the drone handler: a fixed set of return codes plus the
// sentinel errors that map onto them.
package errs

import "errors"

// Code is the fixed set of process-level outcomes a run can end in.
type Code int

const (
	Ok               Code = 0
	BadArgument      Code = 1
	ConnectionFailed Code = 2
	NoSystemsFound   Code = 3
	TelemetryFailure Code = 4
	ActionFailure    Code = 5
	OffboardFailure  Code = 6
	MissionFailure   Code = 7
	UnknownFailure   Code = 255
)

func (c Code) String() string {
	switch c {
	case Ok:
		return "Ok"
	case BadArgument:
		return "BadArgument"
	case ConnectionFailed:
		return "ConnectionFailed"
	case NoSystemsFound:
		return "NoSystemsFound"
	case TelemetryFailure:
		return "TelemetryFailure"
	case ActionFailure:
		return "ActionFailure"
	case OffboardFailure:
		return "OffboardFailure"
	case MissionFailure:
		return "MissionFailure"
	case UnknownFailure:
		return "UnknownFailure"
	default:
		return "UnknownFailure"
	}
}

// ReturnCode pairs a Code with the human-readable message that goes with
// this particular occurrence of it.
type ReturnCode struct {
	Code    Code
	Message string
}

func (r ReturnCode) Error() string {
	return r.Code.String() + ": " + r.Message
}

func NewReturnCode(code Code, message string) ReturnCode {
	return ReturnCode{Code: code, Message: message}
}

var (
	ErrBadArgument      = errors.New("bad argument")
	ErrConnectionFailed = errors.New("connection failed")
	ErrNoSystemsFound   = errors.New("no systems found")
	ErrTelemetryFailure = errors.New("telemetry failure")
	ErrActionFailure    = errors.New("action failure")
	ErrOffboardFailure  = errors.New("offboard failure")
	ErrMissionFailure   = errors.New("mission failure")
)

// codeForSentinel maps the flat sentinel errors onto their Code, so a
// pipeline stage that only has a generic error in hand can still report the
// right outcome.
var codeForSentinel = map[error]Code{
	ErrBadArgument:      BadArgument,
	ErrConnectionFailed: ConnectionFailed,
	ErrNoSystemsFound:   NoSystemsFound,
	ErrTelemetryFailure: TelemetryFailure,
	ErrActionFailure:    ActionFailure,
	ErrOffboardFailure:  OffboardFailure,
	ErrMissionFailure:   MissionFailure,
}

// CodeFor classifies err against the known sentinels, falling back to
// UnknownFailure for anything else. nil maps to Ok.
func CodeFor(err error) Code {
	if err == nil {
		return Ok
	}
	for sentinel, code := range codeForSentinel {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return UnknownFailure
}
