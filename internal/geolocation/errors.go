// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package geolocation

import (
	"context"
	"errors"
	"io/fs"
	"syscall"
)

// ErrorKind classifies a position source failure.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindPermissionDenied
	KindUnavailable
	KindTimeout
	KindUnsupported
)

// User-facing messages, one per kind.
const (
	MsgPermissionDenied = "Location access denied. Please enable location permissions in your browser settings."
	MsgUnavailable      = "Location information is unavailable. Please check your GPS/network connection."
	MsgTimeout          = "Location request timed out. Please try again."
	MsgOther            = "An error occurred while retrieving location."
	MsgUnsupported      = "Geolocation is not supported by this browser."
)

// Message returns the fixed message shown for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case KindPermissionDenied:
		return MsgPermissionDenied
	case KindUnavailable:
		return MsgUnavailable
	case KindTimeout:
		return MsgTimeout
	case KindUnsupported:
		return MsgUnsupported
	default:
		return MsgOther
	}
}

// String is used as the metrics label.
func (k ErrorKind) String() string {
	switch k {
	case KindPermissionDenied:
		return "permission_denied"
	case KindUnavailable:
		return "unavailable"
	case KindTimeout:
		return "timeout"
	case KindUnsupported:
		return "unsupported"
	default:
		return "other"
	}
}

// PositionError is the terminal error of a sampling session.
type PositionError struct {
	Kind ErrorKind
	Err  error
}

// Error returns the user-facing message. The cause is available through Unwrap.
func (e *PositionError) Error() string {
	return e.Kind.Message()
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// ErrUnsupported is reported when no position source is configured.
var ErrUnsupported = &PositionError{Kind: KindUnsupported}

func unavailable(err error) error {
	return &PositionError{Kind: KindUnavailable, Err: err}
}

// Classify maps any source error to a PositionError. Errors that already
// are PositionErrors keep their kind.
func Classify(err error) *PositionError {
	if err == nil {
		return nil
	}
	var pe *PositionError
	if errors.As(err, &pe) {
		return pe
	}
	switch {
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return &PositionError{Kind: KindPermissionDenied, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &PositionError{Kind: KindTimeout, Err: err}
	case errors.Is(err, fs.ErrNotExist):
		return &PositionError{Kind: KindUnavailable, Err: err}
	default:
		return &PositionError{Kind: KindOther, Err: err}
	}
}
