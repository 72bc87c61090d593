package texture

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsteg/pkg/config"
	"tsteg/pkg/grid"
)

func grayGrid(width, height int, fill uint8) *grid.Grid {
	g := grid.New(width, height, 1, -1)
	for i := range g.Pix {
		g.Pix[i] = fill
	}
	return g
}

func defaultTestConfig() config.StegConfig {
	cfg := config.StegConfig{KMax: 1, Thresholds: []int{4}, LBPRadius: 1, LBPNeighbors: 8}
	return cfg
}

func TestUniformImageScoresZero(t *testing.T) {
	g := grayGrid(16, 16, 128)

	scores, err := Analyze(g, defaultTestConfig())
	require.NoError(t, err)

	for _, score := range scores.Scores {
		assert.Zero(t, score)
	}
}

func TestCheckerboardScoresAlternate(t *testing.T) {
	g := grayGrid(16, 16, 0)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x+y)%2 == 0 {
				g.Pix[y*16+x] = 100
			} else {
				g.Pix[y*16+x] = 200
			}
		}
	}

	scores, err := Analyze(g, defaultTestConfig())
	require.NoError(t, err)

	// In a checkerboard the ring around a bright pixel alternates between
	// same-color corners and darker edges, which is the maximum transition
	// count. Around a dark pixel every neighbor compares >= center, which
	// is zero transitions.
	for y := 1; y < 15; y++ {
		for x := 1; x < 15; x++ {
			if (x+y)%2 == 1 { // bright center
				assert.EqualValues(t, 8, scores.At(x, y), "pixel (%d,%d)", x, y)
			} else {
				assert.Zero(t, scores.At(x, y), "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestBorderPixelsScoreZero(t *testing.T) {
	g := grayGrid(8, 8, 0)
	for i := range g.Pix {
		g.Pix[i] = uint8(rand.Intn(256))
	}

	scores, err := Analyze(g, defaultTestConfig())
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		assert.Zero(t, scores.At(i, 0))
		assert.Zero(t, scores.At(i, 7))
		assert.Zero(t, scores.At(0, i))
		assert.Zero(t, scores.At(7, i))
	}
}

func TestScoresUnaffectedByEmbeddableBitPlanes(t *testing.T) {
	// Embedding only ever rewrites bit-planes below kMax; texture scores
	// must not move when those planes change, or the extractor would plan
	// a different capacity map than the embedder did.
	for _, kMax := range []int{1, 2, 3} {
		cfg := config.StegConfig{KMax: kMax, Thresholds: config.DefaultThresholds(kMax, 8), LBPRadius: 1, LBPNeighbors: 8}

		g := grayGrid(24, 24, 0)
		for i := range g.Pix {
			g.Pix[i] = uint8(rand.Intn(256))
		}

		before, err := Analyze(g, cfg)
		require.NoError(t, err)

		perturbed := g.Clone()
		for i := range perturbed.Pix {
			perturbed.Pix[i] ^= uint8(rand.Intn(1 << kMax))
		}

		after, err := Analyze(perturbed, cfg)
		require.NoError(t, err)

		assert.Equal(t, before.Scores, after.Scores, "kMax=%d", kMax)
	}
}

func TestFourNeighborSamplingUsesRingCorners(t *testing.T) {
	offsets := ringOffsets(1, 4)
	assert.Equal(t, []ringOffset{{-1, -1}, {-1, 1}, {1, 1}, {1, -1}}, offsets)

	// 5x5 flat field with one bright and one dark corner around the center
	// pixel: corner pattern 1,1,0,1 has two circular transitions.
	g := grayGrid(5, 5, 100)
	g.Pix[1*5+1] = 200
	g.Pix[3*5+3] = 50

	cfg := config.StegConfig{KMax: 1, Thresholds: []int{2}, LBPRadius: 1, LBPNeighbors: 4}
	scores, err := Analyze(g, cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 2, scores.At(2, 2))
}

func TestEightNeighborOrderMatchesClassicLBP(t *testing.T) {
	offsets := ringOffsets(1, 8)
	expected := []ringOffset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, 1},
		{1, 1}, {1, 0}, {1, -1},
		{0, -1},
	}
	assert.Equal(t, expected, offsets)
}

func TestSixteenNeighborScoresStayInRange(t *testing.T) {
	g := grayGrid(12, 12, 0)
	for i := range g.Pix {
		g.Pix[i] = uint8(rand.Intn(256))
	}

	cfg := config.StegConfig{KMax: 1, Thresholds: []int{8}, LBPRadius: 1, LBPNeighbors: 16}
	scores, err := Analyze(g, cfg)
	require.NoError(t, err)

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			score := scores.At(x, y)
			assert.LessOrEqual(t, score, uint8(16))
			assert.Zero(t, score%2, "transition counts are always even")
			if x < 2 || y < 2 || x >= 10 || y >= 10 {
				assert.Zero(t, score, "ring of radius 2 leaves the image at (%d,%d)", x, y)
			}
		}
	}
}

func TestAnalyzeRejectsInvalidConfig(t *testing.T) {
	g := grayGrid(4, 4, 0)
	_, err := Analyze(g, config.StegConfig{KMax: 0})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
