package navigator

import (
	"bytes"
	"image"
	_ "image/png"
)

const (
	// stuckDiffThreshold is the normalized pixel delta below which two
	// consecutive screenshots count as visually identical.
	stuckDiffThreshold = 0.002

	// stuckRunLength is how many identical frames in a row trigger the
	// stuck hint to the model.
	stuckRunLength = 3

	// diffSampleStride keeps the comparison cheap on large viewports by
	// sampling every Nth pixel on both axes.
	diffSampleStride = 4
)

// diffScore returns the mean absolute per-channel difference between two
// encoded screenshots, normalized to [0, 1]. It returns -1 when either image
// cannot be decoded or the dimensions differ, which callers must treat as
// "unknown", never as "identical".
func diffScore(prev, curr []byte) float64 {
	if len(prev) == 0 || len(curr) == 0 {
		return -1
	}
	prevImg, _, err := image.Decode(bytes.NewReader(prev))
	if err != nil {
		return -1
	}
	currImg, _, err := image.Decode(bytes.NewReader(curr))
	if err != nil {
		return -1
	}
	pb, cb := prevImg.Bounds(), currImg.Bounds()
	if pb.Dx() != cb.Dx() || pb.Dy() != cb.Dy() || pb.Dx() == 0 || pb.Dy() == 0 {
		return -1
	}

	var total, samples uint64
	for y := 0; y < pb.Dy(); y += diffSampleStride {
		for x := 0; x < pb.Dx(); x += diffSampleStride {
			pr, pg, pbl, _ := prevImg.At(pb.Min.X+x, pb.Min.Y+y).RGBA()
			cr, cg, cbl, _ := currImg.At(cb.Min.X+x, cb.Min.Y+y).RGBA()
			total += absDelta(pr, cr) + absDelta(pg, cg) + absDelta(pbl, cbl)
			samples += 3
		}
	}
	if samples == 0 {
		return -1
	}
	// RGBA() channels are 16-bit.
	return float64(total) / float64(samples) / 65535.0
}

func absDelta(a, b uint32) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// diffGuard watches consecutive screenshots for a page that stopped changing.
type diffGuard struct {
	prev     []byte
	nearZero int
}

// observe ingests the latest screenshot and reports whether the page has
// been visually static for stuckRunLength frames. Unknown diffs (decode
// failures) reset the counter rather than feeding it.
func (g *diffGuard) observe(screenshot []byte) bool {
	if g.prev == nil {
		g.prev = screenshot
		return false
	}
	score := diffScore(g.prev, screenshot)
	g.prev = screenshot
	if score < 0 {
		g.nearZero = 0
		return false
	}
	if score < stuckDiffThreshold {
		g.nearZero++
	} else {
		g.nearZero = 0
	}
	return g.nearZero >= stuckRunLength
}
