// Package steg wires the texture analyzer, capacity planner, pseudorandom
// selector and payload codec into the two public pipelines: Embed and
// Extract. Both pipelines derive every intermediate structure (score map,
// capacity map, slot sequence) purely from pixel values and the key, which
// is what allows extraction without any stored side information.
package steg

import (
	"errors"
	"time"

	"tsteg/internal/bits"
	"tsteg/pkg/capacity"
	"tsteg/pkg/codec"
	"tsteg/pkg/config"
	"tsteg/pkg/grid"
	"tsteg/pkg/model"
	"tsteg/pkg/selector"
	"tsteg/pkg/texture"
)

var ErrBitstreamExceedsSlots = errors.New("bitstream longer than slot sequence")

type Embedder struct {
	cover  *grid.Grid
	config config.StegConfig
	stats  model.EmbedStats
}

func NewEmbedder(cover *grid.Grid, cfg config.StegConfig) (*Embedder, error) {
	cfg.PopulateUnsetConfigVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Embedder{cover: cover, config: cfg}, nil
}

func (e *Embedder) Stats() model.EmbedStats {
	return e.stats
}

// Embed hides payload in a copy of the cover grid; the cover itself is
// never mutated. The returned grid differs from the cover only in the
// bit-planes addressed by the keyed slot sequence.
func (e *Embedder) Embed(key, payload []byte) (*grid.Grid, error) {
	capMap, err := e.planCapacity(e.cover)
	if err != nil {
		return nil, err
	}

	framed := codec.Encode(payload)

	selectStart := time.Now()
	slots, err := selector.Select(capMap, key, len(framed)*8)
	e.stats.SlotSelection = time.Since(selectStart)
	if err != nil {
		return nil, err
	}

	embedStart := time.Now()
	defer func() {
		e.stats.BitEmbedding = time.Since(embedStart)
	}()
	return writeBits(e.cover, slots, framed)
}

// Capacity reports the cover's total adaptive capacity in bits under the
// embedder's config.
func (e *Embedder) Capacity() (int, error) {
	capMap, err := e.planCapacity(e.cover)
	if err != nil {
		return 0, err
	}
	return capMap.TotalBits, nil
}

func (e *Embedder) planCapacity(g *grid.Grid) (*capacity.Map, error) {
	analysisStart := time.Now()
	scores, err := texture.Analyze(g, e.config)
	e.stats.TextureAnalysis = time.Since(analysisStart)
	if err != nil {
		return nil, err
	}

	planStart := time.Now()
	capMap, err := capacity.Plan(scores, g, e.config)
	e.stats.CapacityPlanning = time.Since(planStart)
	if err != nil {
		return nil, err
	}
	return capMap, nil
}

// writeBits walks the slot sequence and the framed bitstream in lockstep,
// clearing then setting the addressed bit-plane and leaving every other
// bit of the sample untouched. The selector already sized the sequence to
// the bitstream; the length check is a defensive double-check.
func writeBits(cover *grid.Grid, slots []selector.Slot, framed []byte) (*grid.Grid, error) {
	br := bits.NewBitReader(framed)
	if br.BitsLeftToRead() > len(slots) {
		return nil, ErrBitstreamExceedsSlots
	}

	stego := cover.Clone()
	for _, slot := range slots {
		if br.BitsLeftToRead() == 0 {
			break
		}
		idx := stego.SampleIdx(slot.X, slot.Y, int(slot.Channel))
		stego.Pix[idx] = stego.Pix[idx]&^(1<<slot.Plane) | br.ReadBit()<<slot.Plane
	}
	return stego, nil
}

// Embed is the package-level convenience wrapper around Embedder.
func Embed(cover *grid.Grid, key, payload []byte, cfg config.StegConfig) (*grid.Grid, error) {
	embedder, err := NewEmbedder(cover, cfg)
	if err != nil {
		return nil, err
	}
	return embedder.Embed(key, payload)
}
