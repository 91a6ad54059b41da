package pompeii

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies bootstrap failures. An ErrorKind is itself an
// error, so errors.Is(err, NoSuitableDevice) works on any wrapped *Error.
type ErrorKind int

const (
	CapabilityUnavailable ErrorKind = iota + 1
	InstanceCreationFailed
	DebugHookUnavailable
	SurfaceCreationFailed
	EnumerationFailed
	NoDevicesFound
	NoSuitableDevice
	LogicalDeviceCreationFailed
	AllocationFailure
)

func (k ErrorKind) String() string {
	switch k {
	case CapabilityUnavailable:
		return "capability unavailable"
	case InstanceCreationFailed:
		return "instance creation failed"
	case DebugHookUnavailable:
		return "debug hook unavailable"
	case SurfaceCreationFailed:
		return "surface creation failed"
	case EnumerationFailed:
		return "enumeration failed"
	case NoDevicesFound:
		return "no devices found"
	case NoSuitableDevice:
		return "no suitable device"
	case LogicalDeviceCreationFailed:
		return "logical device creation failed"
	case AllocationFailure:
		return "allocation failure"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Fatal reports whether bootstrap can continue past this kind of failure.
func (k ErrorKind) Fatal() bool {
	return k != DebugHookUnavailable
}

// Error is a classified bootstrap failure.
type Error struct {
	Kind ErrorKind
	// Name is the offending capability, set for CapabilityUnavailable.
	Name string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Name != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Name)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind ErrorKind, cause error, format string, a ...interface{}) error {
	if cause != nil {
		cause = errors.Wrapf(cause, format, a...)
	} else if format != "" {
		cause = errors.Errorf(format, a...)
	}
	return &Error{Kind: kind, Err: cause}
}
