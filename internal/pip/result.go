package pip

import "errors"

// Result is the outcome of a capability check or session start. The integer
// values are part of the host contract.
type Result int

const (
	NoError             Result = 0
	OsVersionTooLow     Result = -101
	PermissionDenied    Result = -102
	ActivityDestroyed   Result = -103
	FeatureNotSupported Result = -108
)

// NoActiveActivity is reported when there is no foreground window, or it has
// been destroyed. It shares the ActivityDestroyed code.
const NoActiveActivity = ActivityDestroyed

var (
	ErrOsVersionTooLow     = errors.New("platform version too low for picture-in-picture")
	ErrPermissionDenied    = errors.New("picture-in-picture permission denied")
	ErrActivityDestroyed   = errors.New("no active window")
	ErrFeatureNotSupported = errors.New("picture-in-picture not supported")
	ErrPipUnknown          = errors.New("picture-in-picture failed")
)

// OK reports whether r is NoError.
func (r Result) OK() bool { return r == NoError }

// Err returns nil for NoError and a sentinel error otherwise. Codes outside
// the known set map to ErrPipUnknown.
func (r Result) Err() error {
	switch r {
	case NoError:
		return nil
	case OsVersionTooLow:
		return ErrOsVersionTooLow
	case PermissionDenied:
		return ErrPermissionDenied
	case ActivityDestroyed:
		return ErrActivityDestroyed
	case FeatureNotSupported:
		return ErrFeatureNotSupported
	default:
		return ErrPipUnknown
	}
}

// String returns the result name.
func (r Result) String() string {
	switch r {
	case NoError:
		return "NoError"
	case OsVersionTooLow:
		return "OsVersionTooLow"
	case PermissionDenied:
		return "PermissionDenied"
	case ActivityDestroyed:
		return "ActivityDestroyed"
	case FeatureNotSupported:
		return "FeatureNotSupported"
	default:
		return "Unknown"
	}
}
