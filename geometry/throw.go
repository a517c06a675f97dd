package geometry

import "github.com/pkg/errors"

// Threading error returns through every step of the hull and walk
// algorithms would bury the geometry in plumbing. Instead the package
// panics with one of two typed errors, and the public facade recovers
// and converts them back to ordinary error values.

// PreconditionError reports that a caller violated a documented input
// requirement, such as building an outline from too few points.
type PreconditionError struct{ error }

// InvariantError reports that an internal invariant failed. This
// signals a bug in the algorithms themselves, not in caller input.
type InvariantError struct{ error }

// Panic with a PreconditionError.
func preconditionf(format string, args ...interface{}) {
	panic(PreconditionError{errors.Errorf(format, args...)})
}

// Panic with an InvariantError.
func invariantf(format string, args ...interface{}) {
	panic(InvariantError{errors.Errorf(format, args...)})
}

// RecoverError converts a recovered panic value into the error it
// carries, if it is one of this package's failure kinds. Foreign panics
// are re-raised, nil passes through.
func RecoverError(r interface{}) error {
	switch e := r.(type) {
	case nil:
		return nil
	case PreconditionError:
		return e
	case InvariantError:
		return e
	default:
		panic(r)
	}
}
