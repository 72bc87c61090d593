package capacity

import (
	"tsteg/pkg/config"
	"tsteg/pkg/grid"
	"tsteg/pkg/texture"
)

// Map is the per-pixel embedding budget of an image: how many low
// bit-planes of each data channel sample a pixel may carry. It is derived
// purely from texture scores and the alpha channel, both of which survive
// embedding untouched, so embed and extract always plan the same map.
type Map struct {
	Width, Height int

	// DataChannels is the number of channels per pixel that carry bits.
	DataChannels int

	// Budgets holds one bit-budget in [0, KMax] per pixel.
	Budgets []uint8

	// TotalBits is the image's full embedding capacity:
	// sum of budgets × DataChannels.
	TotalBits int
}

func (m *Map) At(x, y int) uint8 {
	return m.Budgets[y*m.Width+x]
}

// Plan maps every pixel's texture score to a bit budget: the number of
// threshold cut-points the score reaches, clamped to KMax. Budgets are
// monotone non-decreasing in score. Pixels that are not fully opaque get
// budget 0, since data hidden there does not survive alpha-premultiplying
// round trips.
func Plan(scores *texture.ScoreMap, g *grid.Grid, cfg config.StegConfig) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Map{
		Width:        scores.Width,
		Height:       scores.Height,
		DataChannels: g.DataChannels(),
		Budgets:      make([]uint8, scores.Width*scores.Height),
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !g.Opaque(x, y) {
				continue
			}
			budget := bucketFor(scores.At(x, y), cfg.Thresholds)
			m.Budgets[y*m.Width+x] = budget
			m.TotalBits += int(budget) * m.DataChannels
		}
	}

	return m, nil
}

func bucketFor(score uint8, thresholds []int) uint8 {
	var budget uint8
	for _, threshold := range thresholds {
		if int(score) < threshold {
			break
		}
		budget++
	}
	return budget
}
