package internal

import "github.com/pkg/errors"

// Threading errors through face walking and region selection would add a lot
// of plumbing for a condition that only malformed input can trigger. Instead,
// we panic with an ArrangementError, and the public API recovers to convert
// it to an error.

type ArrangementError struct {
	error
}

func (e ArrangementError) Unwrap() error {
	return e.error
}

// Panic with an ArrangementError.
func fatalf(format string, args ...interface{}) {
	panic(ArrangementError{errors.Errorf(format, args...)})
}

// Convert a recovered ArrangementError back into an error. Any other panic is
// re-raised, since it is a genuine bug.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if arrangementError, ok := r.(ArrangementError); ok {
			return arrangementError
		}
		panic(r)
	}
	return nil
}
