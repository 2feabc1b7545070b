package ffrs

// Option configures an RS256 or RSi16 codec at construction time. The zero
// value of options always yields automatic, CPU-probed behavior; Options
// only ever narrow that default, mirroring the With* family in
// klauspost/reedsolomon's options.go.
type Option func(*options)

type options struct {
	// forceStride overrides the slicing encoder's chosen stride (bytes
	// consumed per XOR-fold step). 0 means auto-select from ecc_len.
	forceStride int

	// forceLaneWidth overrides the NTT-RS SIMD lane width (1, 4, 8 or 16).
	// 0 means auto-select from the probed Features.
	forceLaneWidth int

	// scalarOnly disables all SIMD lane paths, forcing laneWidthFor to 1
	// regardless of what the CPU supports. Useful for deterministic tests
	// and for environments where cpuid reports unreliable results.
	scalarOnly bool
}

func defaultOptions() options {
	return options{}
}

// WithStride forces the slicing RS256 encoder to use the given stride (in
// bytes) instead of the ecc_len-derived default. Any positive stride is
// used as given; the parity produced does not depend on the stride.
func WithStride(stride int) Option {
	return func(o *options) { o.forceStride = stride }
}

// WithLaneWidth forces the RSi16 NTT encoder to use the given SIMD lane
// width (1, 4, 8 or 16) instead of probing CPU features.
func WithLaneWidth(width int) Option {
	return func(o *options) { o.forceLaneWidth = width }
}

// WithScalarOnly disables SIMD lane dispatch entirely.
func WithScalarOnly() Option {
	return func(o *options) { o.scalarOnly = true }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
