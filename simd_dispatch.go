package ffrs

import "github.com/klauspost/cpuid/v2"

// Features records which of the SIMD instruction sets relevant to lane
// width selection the CPU reports; laneWidth maps it to a lane count.
type Features struct {
	AVX512 bool
	AVX2   bool
	SSE2   bool
}

// DetectFeatures probes the running CPU once via cpuid. Call sites that
// want a fixed lane width regardless of the host (tests, reproducing a
// recorded encode) should bypass this and pass WithScalarOnly or
// WithLaneWidth instead.
func DetectFeatures() Features {
	return Features{
		AVX512: cpuid.CPU.Supports(cpuid.AVX512F),
		AVX2:   cpuid.CPU.Supports(cpuid.AVX2),
		SSE2:   cpuid.CPU.Supports(cpuid.SSE2),
	}
}

// laneWidth picks the widest lane count the detected features support,
// falling back to 1 (scalar) if none apply.
func (feat Features) laneWidth() int {
	switch {
	case feat.AVX512:
		return 16
	case feat.AVX2:
		return 8
	case feat.SSE2:
		return 4
	default:
		return 1
	}
}

// laneWidthFor resolves the effective SIMD lane width for an RSi16Vector
// construction, honoring options overrides before falling back to the
// runtime probe.
func laneWidthFor(o options) int {
	if o.scalarOnly {
		return 1
	}
	if o.forceLaneWidth != 0 {
		return o.forceLaneWidth
	}
	return DetectFeatures().laneWidth()
}
