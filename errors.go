package ffrs

import "errors"

// Sentinel errors returned by codec constructors and Encode/Decode calls.
// Callers should match against these with errors.Is; construction-time
// failures are wrapped with github.com/pkg/errors to attach the offending
// parameters.
var (
	// ErrInvalidConfig is returned when constructor parameters are
	// structurally invalid, e.g. ecc_len <= 0 or block_size not a power of two.
	ErrInvalidConfig = errors.New("ffrs: invalid configuration")

	// ErrInvalidField is returned when the requested field has no element
	// satisfying the constructor's requirements, e.g. no root of unity of
	// the requested order exists for the given prime and primitive.
	ErrInvalidField = errors.New("ffrs: invalid field parameters")

	// ErrUncorrectable is returned by Decode when the number of errors
	// exceeds ecc_len/2, or the located error count disagrees with the
	// root search, or a corrected position falls outside the codeword.
	ErrUncorrectable = errors.New("ffrs: uncorrectable block")

	// ErrDimensionMismatch is returned when an input/output/rem slice does
	// not match the size implied by the codec's configuration.
	ErrDimensionMismatch = errors.New("ffrs: dimension mismatch")

	// ErrShortBuffer reports a caller-supplied buffer too small to hold an
	// operation's output. No function in this package returns it.
	ErrShortBuffer = errors.New("ffrs: short buffer")

	// ErrTooManyErasures is returned by DecodeErasures when the number of
	// known error positions exceeds ecc_len.
	ErrTooManyErasures = errors.New("ffrs: too many erasure positions")
)
