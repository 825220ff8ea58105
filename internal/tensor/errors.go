package tensor

import "errors"

// Error kinds. Operations wrap these with detail via fmt.Errorf("...: %w", ErrX),
// so callers match with errors.Is rather than on message text.
var (
	// ErrShape reports a structurally invalid shape or axis operation: reshape
	// size mismatch, wrong ndims, out-of-range axis, non-permutation order,
	// zero-sized matrix builder, mismatched element counts.
	ErrShape = errors.New("tensor: invalid shape")

	// ErrIndex reports an index still outside [0, dim) after negative-index adjustment.
	ErrIndex = errors.New("tensor: index out of range")

	// ErrValue reports an invalid enumerated option, e.g. an unknown order marker.
	ErrValue = errors.New("tensor: invalid value")

	// ErrLiveViews is returned when releasing a root whose buffer is still
	// referenced by views.
	ErrLiveViews = errors.New("tensor: buffer still referenced by views")

	// ErrReleased is returned when releasing an array twice.
	ErrReleased = errors.New("tensor: array already released")
)
