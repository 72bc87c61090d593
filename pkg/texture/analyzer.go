package texture

import (
	"tsteg/pkg/config"
	"tsteg/pkg/grid"
)

// ScoreMap holds the per-pixel texture score of an image. Scores are LBP
// transition counts in [0, LBPNeighbors]; border pixels without a full
// neighbor ring are pinned to 0 (minimum texture).
type ScoreMap struct {
	Width, Height int
	Scores        []uint8
}

func (m *ScoreMap) At(x, y int) uint8 {
	return m.Scores[y*m.Width+x]
}

// Analyze computes the texture score of every pixel. It is a pure function
// of the samples' bit-planes at or above cfg.KMax, so embedding payload
// bits into the planes below KMax never changes its output. That property
// is what lets the extractor recompute the exact capacity map the embedder
// planned with, from the stego image alone.
func Analyze(g *grid.Grid, cfg config.StegConfig) (*ScoreMap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	offsets := ringOffsets(cfg.LBPRadius, cfg.LBPNeighbors)
	ringRadius := cfg.LBPRadius * ringScale(cfg.LBPNeighbors)

	intensities := maskedIntensities(g, cfg.KMax)

	scoreMap := &ScoreMap{
		Width:  g.Width,
		Height: g.Height,
		Scores: make([]uint8, g.Width*g.Height),
	}

	for y := ringRadius; y < g.Height-ringRadius; y++ {
		for x := ringRadius; x < g.Width-ringRadius; x++ {
			center := intensities[y*g.Width+x]

			var prevBit, firstBit, transitions uint8
			for i, offset := range offsets {
				var bit uint8
				if intensities[(y+offset.dy)*g.Width+(x+offset.dx)] >= center {
					bit = 1
				}

				if i == 0 {
					firstBit = bit
				} else if bit != prevBit {
					transitions++
				}
				prevBit = bit
			}
			if prevBit != firstBit { // circular wrap
				transitions++
			}

			scoreMap.Scores[y*g.Width+x] = transitions
		}
	}

	return scoreMap, nil
}

// maskedIntensities derives one intensity per pixel from the bit-planes the
// embedder never touches: each data channel sample shifted right by kMax,
// summed across channels. Integer-only so results are identical on every
// platform.
func maskedIntensities(g *grid.Grid, kMax int) []int {
	intensities := make([]int, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			var intensity int
			for c := 0; c < g.Channels; c++ {
				if c == g.AlphaChannel {
					continue
				}
				intensity += int(g.Pix[g.SampleIdx(x, y, c)] >> kMax)
			}
			intensities[y*g.Width+x] = intensity
		}
	}
	return intensities
}

type ringOffset struct {
	dy, dx int
}

// ringScale widens the sampling ring for neighbor counts that do not fit on
// the radius-R square ring (which has 8R perimeter points).
func ringScale(neighbors int) int {
	if neighbors > 8 {
		return neighbors / 8
	}
	return 1
}

// ringOffsets samples `neighbors` points from the perimeter of the square
// ring of radius radius*ringScale, walking clockwise from the top-left
// corner. For 8 neighbors at radius 1 this yields the classic LBP
// neighborhood order: NW, N, NE, E, SE, S, SW, W.
func ringOffsets(radius, neighbors int) []ringOffset {
	r := radius * ringScale(neighbors)
	perimeter := ringPerimeter(r)
	stride := len(perimeter) / neighbors

	offsets := make([]ringOffset, 0, neighbors)
	for i := 0; i < neighbors; i++ {
		offsets = append(offsets, perimeter[i*stride])
	}
	return offsets
}

// ringPerimeter walks the 8r points of the square ring of radius r
// clockwise, starting at (-r, -r).
func ringPerimeter(r int) []ringOffset {
	perimeter := make([]ringOffset, 0, 8*r)
	for dx := -r; dx < r; dx++ { // top edge, left to right
		perimeter = append(perimeter, ringOffset{dy: -r, dx: dx})
	}
	for dy := -r; dy < r; dy++ { // right edge, top to bottom
		perimeter = append(perimeter, ringOffset{dy: dy, dx: r})
	}
	for dx := r; dx > -r; dx-- { // bottom edge, right to left
		perimeter = append(perimeter, ringOffset{dy: r, dx: dx})
	}
	for dy := r; dy > -r; dy-- { // left edge, bottom to top
		perimeter = append(perimeter, ringOffset{dy: dy, dx: -r})
	}
	return perimeter
}
