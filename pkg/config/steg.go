package config

import (
	"errors"
	"fmt"
)

const (
	DefaultKMax         = 2
	DefaultLBPRadius    = 1
	DefaultLBPNeighbors = 8

	// MaxKMax keeps at least one untouched bit-plane per sample, since
	// texture analysis reads the planes above KMax.
	MaxKMax = 7
)

var ErrInvalidConfig = errors.New("invalid steg config")

// StegConfig controls texture analysis and capacity planning. The same
// config must be supplied to both embed and extract; there are no hidden
// defaults once PopulateUnsetConfigVars has run.
type StegConfig struct {
	// KMax is the maximum number of bit-planes used per channel sample.
	KMax int
	// Thresholds are the ordered texture-score cut-points that partition
	// [0, LBPNeighbors] into KMax+1 capacity buckets. A pixel's budget is
	// the number of cut-points its score reaches. Empty means linear.
	Thresholds []int
	// LBPRadius is the neighborhood ring radius.
	LBPRadius int
	// LBPNeighbors is the number of sampled ring neighbors (4, 8 or 16).
	LBPNeighbors int
}

func (c *StegConfig) PopulateUnsetConfigVars() {
	if c.KMax == 0 {
		c.KMax = DefaultKMax
	}
	if c.LBPRadius == 0 {
		c.LBPRadius = DefaultLBPRadius
	}
	if c.LBPNeighbors == 0 {
		c.LBPNeighbors = DefaultLBPNeighbors
	}
	if len(c.Thresholds) == 0 {
		c.Thresholds = DefaultThresholds(c.KMax, c.LBPNeighbors)
	}
}

// DefaultThresholds spreads KMax cut-points linearly over the achievable
// score range [0, P].
func DefaultThresholds(kMax, p int) []int {
	thresholds := make([]int, kMax)
	for i := 0; i < kMax; i++ {
		thresholds[i] = (i + 1) * p / (kMax + 1)
	}
	return thresholds
}

func (c StegConfig) Validate() error {
	if c.KMax < 1 || c.KMax > MaxKMax {
		return fmt.Errorf("%w: kMax must be between 1 and %d, got %d", ErrInvalidConfig, MaxKMax, c.KMax)
	}
	if c.LBPRadius < 1 {
		return fmt.Errorf("%w: lbp radius must be at least 1, got %d", ErrInvalidConfig, c.LBPRadius)
	}
	if c.LBPNeighbors != 4 && c.LBPNeighbors != 8 && c.LBPNeighbors != 16 {
		return fmt.Errorf("%w: lbp neighbors must be 4, 8 or 16, got %d", ErrInvalidConfig, c.LBPNeighbors)
	}
	if len(c.Thresholds) != c.KMax {
		return fmt.Errorf("%w: need exactly %d thresholds, got %d", ErrInvalidConfig, c.KMax, len(c.Thresholds))
	}
	for i, threshold := range c.Thresholds {
		if threshold < 0 || threshold > c.LBPNeighbors {
			return fmt.Errorf("%w: threshold %d out of score range [0, %d]", ErrInvalidConfig, threshold, c.LBPNeighbors)
		}
		if i > 0 && threshold <= c.Thresholds[i-1] {
			return fmt.Errorf("%w: thresholds must be strictly increasing", ErrInvalidConfig)
		}
	}
	return nil
}
