package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Reason classifies why an upstream call failed.
type Reason string

const (
	ReasonNotFound  Reason = "not_found" // upstream answered but has no usable match
	ReasonMalformed Reason = "malformed" // response body could not be decoded or lacks a field
	ReasonTimeout   Reason = "timeout"   // deadline exceeded
	ReasonTransport Reason = "transport" // connection level failure
	ReasonStatus    Reason = "status"    // non-2xx status other than 404
)

// Error is returned by every upstream call.
type Error struct {
	Op     string // e.g. "holdings", "search", "quote"
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ReasonOf extracts the Reason from err, defaulting to ReasonTransport for
// errors that did not originate here.
func ReasonOf(err error) Reason {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Reason
	}
	return ReasonTransport
}

func newError(op string, reason Reason, err error) *Error {
	return &Error{Op: op, Reason: reason, Err: err}
}

// classify maps a transport error onto a Reason.
func classify(op string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(op, ReasonTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return newError(op, ReasonTimeout, err)
	}
	return newError(op, ReasonTransport, err)
}
