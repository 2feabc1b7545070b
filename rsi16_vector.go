package ffrs

import "github.com/pkg/errors"

// ctButterflyWide is the lane-parallel form of ctButterfly: block holds
// lanes independent NTT sequences interleaved position-major
// (block[pos*lanes+lane]), and every add/sub/mul touches all lanes at a
// given position together. The root at each step is a single scalar
// broadcast across lanes, since every lane shares the same transform.
func ctButterflyWide(f *Field65537, roots []uint32, block []uint32, blockSize, lanes int) {
	for stride, expF := 1, blockSize/2; stride < blockSize; stride, expF = stride*2, expF/2 {
		for start := 0; start < blockSize; start += stride * 2 {
			av := block[start*lanes : start*lanes+lanes]
			bv := block[(start+stride)*lanes : (start+stride)*lanes+lanes]
			for k := 0; k < lanes; k++ {
				a, b := av[k], bv[k]
				av[k] = f.Add(a, b)
				bv[k] = f.Sub(a, b)
			}

			for i := start + 1; i < start+stride; i++ {
				w := roots[expF*(i-start)]
				av := block[i*lanes : i*lanes+lanes]
				bv := block[(i+stride)*lanes : (i+stride)*lanes+lanes]
				for k := 0; k < lanes; k++ {
					a, b := av[k], bv[k]
					m := f.Mul(b, w)
					av[k] = f.Add(a, m)
					bv[k] = f.Sub(a, m)
				}
			}
		}
	}
}

// gsButterflyWide is the lane-parallel form of gsButterfly, pruned the
// same way (only the first end positions are computed).
func gsButterflyWide(f *Field65537, end int, roots []uint32, block []uint32, blockSize, lanes int) {
	for stride, expF := blockSize/2, 0; stride > 0; stride, expF = stride/2, expF+1 {
		for start := 0; start < end; start += stride * 2 {
			av := block[start*lanes : start*lanes+lanes]
			bv := block[(start+stride)*lanes : (start+stride)*lanes+lanes]
			for k := 0; k < lanes; k++ {
				a, b := av[k], bv[k]
				av[k] = f.Add(a, b)
				bv[k] = f.Sub(a, b)
			}

			for i := start + 1; i < start+stride; i++ {
				w := roots[(i-start)<<uint(expF)]
				av := block[i*lanes : i*lanes+lanes]
				bv := block[(i+stride)*lanes : (i+stride)*lanes+lanes]
				for k := 0; k < lanes; k++ {
					a, b := av[k], bv[k]
					av[k] = f.Add(a, b)
					bv[k] = f.Mul(f.Sub(a, b), w)
				}
			}
		}
	}
}

// RSi16Vector wraps an RSi16 encoder to process several message blocks at
// once, one per SIMD lane, sharing a single pass over the butterfly
// network instead of running it once per block.
type RSi16Vector struct {
	scalar *RSi16
	lanes  int
}

// NewRSi16Vector builds a lane-parallel encoder over r with the given lane
// width. lanes must be 4, 8, or 16, matching the widths a runtime feature
// probe (see simd_dispatch.go) would pick for SSE2/AVX2/AVX512.
func NewRSi16Vector(r *RSi16, lanes int) (*RSi16Vector, error) {
	switch lanes {
	case 4, 8, 16:
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "lanes=%d must be 4, 8, or 16", lanes)
	}
	return &RSi16Vector{scalar: r, lanes: lanes}, nil
}

// Lanes reports the configured SIMD width.
func (rv *RSi16Vector) Lanes() int { return rv.lanes }

// EncodeBlocks encodes blocks (each of length r.MessageLen()) lanes at a
// time. A final partial group, if any, is zero-padded to a full lane
// group and run through the same wide pipeline rather than falling back
// to the scalar path, matching how the source library pads a short tail.
func (rv *RSi16Vector) EncodeBlocks(blocks [][]uint32) ([][]uint32, error) {
	r := rv.scalar
	msgLen := r.MessageLen()
	out := make([][]uint32, len(blocks))

	for i := 0; i < len(blocks); i += rv.lanes {
		end := i + rv.lanes
		if end > len(blocks) {
			end = len(blocks)
		}
		group := blocks[i:end]

		wide := make([]uint32, r.blockSize*rv.lanes)
		for j, b := range group {
			if len(b) != msgLen {
				return nil, errors.Wrapf(ErrDimensionMismatch, "block %d len %d != message len %d", i+j, len(b), msgLen)
			}
			for pos, v := range b {
				wide[pos*rv.lanes+j] = v
			}
		}

		ctButterflyWide(r.field, r.rootsv, wide, r.blockSize, rv.lanes)

		for j := 0; j < r.eccLen; j++ {
			row := wide[j*rv.lanes : j*rv.lanes+rv.lanes]
			for k := range row {
				row[k] = r.field.Mul(row[k], r.mixv[j])
			}
		}
		for j := 1; j < r.blockSize/r.eccLen; j++ {
			copy(wide[j*r.eccLen*rv.lanes:(j+1)*r.eccLen*rv.lanes], wide[:r.eccLen*rv.lanes])
		}

		gsButterflyWide(r.field, r.eccLen, r.rootsIv, wide, r.blockSize, rv.lanes)

		for j := range group {
			ecc := make([]uint32, r.eccLen)
			for pos := 0; pos < r.eccLen; pos++ {
				ecc[pos] = wide[pos*rv.lanes+j]
			}
			out[i+j] = ecc
		}
	}
	return out, nil
}
