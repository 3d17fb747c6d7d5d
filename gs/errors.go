package gs

import "errors"

// Errors returned by the package's constructors and codecs. Verify itself
// never returns an error: it returns a bare bool, so that rejection never
// distinguishes its cause to a caller.
var (
	// ErrInvalidParameters is returned by BuildParams when the scalar
	// tensor produces a degenerate CRS subspace.
	ErrInvalidParameters = errors.New("gs: degenerate CRS parameters")

	// ErrShapeMismatch is returned when randomness, witness, or Gamma
	// matrix dimensions disagree with the instance's (m, n).
	ErrShapeMismatch = errors.New("gs: dimension mismatch against instance")

	// ErrUnmarshal is returned when encoded bytes cannot be decoded into a
	// value, either because they are too short or contain an invalid
	// encoded group element.
	ErrUnmarshal = errors.New("gs: failed to unmarshal value")
)
