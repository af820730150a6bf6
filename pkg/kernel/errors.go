package kernel

import "fmt"

// ErrorKind classifies a kernel failure.
type ErrorKind int

const (
	// KindInvalidGeometry: the kernel rejected the input geometry.
	KindInvalidGeometry ErrorKind = iota
	// KindBooleanFailed: a boolean evaluation could not be completed.
	KindBooleanFailed
	// KindUnsupported: the backend cannot express the requested operation.
	KindUnsupported
	// KindResource: a kernel-side resource (memory, temporary file) failed.
	KindResource
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidGeometry:
		return "invalid geometry"
	case KindBooleanFailed:
		return "boolean failed"
	case KindUnsupported:
		return "unsupported operation"
	case KindResource:
		return "resource failure"
	default:
		return "unknown"
	}
}

// Error is a typed kernel failure. Op names the kernel request that failed;
// Msg carries the backend's own description verbatim.
type Error struct {
	Kind ErrorKind
	Op   string
	Msg  string
	Err  error // underlying backend error, if any
}

// Errorf constructs a kernel Error with a formatted message.
func Errorf(kind ErrorKind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs a kernel Error around a backend error.
func Wrap(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: err.Error(), Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("kernel %s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Unwrap returns the underlying backend error.
func (e *Error) Unwrap() error { return e.Err }
