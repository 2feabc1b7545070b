package ffrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeaturesLaneWidthPicksWidestSupported(t *testing.T) {
	require.Equal(t, 16, Features{AVX512: true, AVX2: true, SSE2: true}.laneWidth())
	require.Equal(t, 8, Features{AVX2: true, SSE2: true}.laneWidth())
	require.Equal(t, 4, Features{SSE2: true}.laneWidth())
	require.Equal(t, 1, Features{}.laneWidth())
}

func TestLaneWidthForHonorsOverrides(t *testing.T) {
	require.Equal(t, 1, laneWidthFor(options{scalarOnly: true, forceLaneWidth: 8}))
	require.Equal(t, 8, laneWidthFor(options{forceLaneWidth: 8}))
}
