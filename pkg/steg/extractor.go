package steg

import (
	"fmt"
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

type Extractor struct {
	stego  *grid.Grid
	config config.StegConfig
	stats  model.ExtractStats
}

func NewExtractor(stego *grid.Grid, cfg config.StegConfig) (*Extractor, error) {
	cfg.PopulateUnsetConfigVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{stego: stego, config: cfg}, nil
}

func (e *Extractor) Stats() model.ExtractStats {
	return e.stats
}

// Extract re-runs texture analysis and capacity planning on the stego
// grid, re-derives the full keyed slot sequence, reads the 64-bit framing
// header from the first slots, then exactly the declared number of payload
// bits, and verifies integrity. The payload length is unknown up front, so
// the selector is asked for the image's entire capacity and the sequence
// is sliced after the header is parsed.
func (e *Extractor) Extract(key []byte) ([]byte, error) {
	capMap, err := e.planCapacity()
	if err != nil {
		return nil, err
	}

	if capMap.TotalBits < codec.HeaderBits {
		return nil, fmt.Errorf("%w: image capacity %d bits cannot hold a header", codec.ErrPayloadTruncated, capMap.TotalBits)
	}

	selectStart := time.Now()
	slots, err := selector.Select(capMap, key, capMap.TotalBits)
	e.stats.SlotSelection = time.Since(selectStart)
	if err != nil {
		return nil, err
	}

	extractStart := time.Now()
	defer func() {
		e.stats.BitExtraction = time.Since(extractStart)
	}()

	header := codec.ParseHeader(e.readHeader(slots))

	payloadBits := int(header.Length) * 8
	if codec.HeaderBits+payloadBits > len(slots) {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, capacity is %d bits", codec.ErrPayloadTruncated, header.Length, len(slots))
	}

	payload := e.readBytes(slots[codec.HeaderBits : codec.HeaderBits+payloadBits])
	if err := codec.Verify(header, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (e *Extractor) readHeader(slots []selector.Slot) [8]byte {
	var raw [8]byte
	copy(raw[:], e.readBytes(slots[:codec.HeaderBits]))
	return raw
}

// readBytes reads one bit per slot in sequence order and packs them
// MSB-first.
func (e *Extractor) readBytes(slots []selector.Slot) []byte {
	bw := bits.NewBitWriter(len(slots))
	for _, slot := range slots {
		sample := e.stego.Pix[e.stego.SampleIdx(slot.X, slot.Y, int(slot.Channel))]
		bw.WriteBit(sample >> slot.Plane & 1)
	}
	return bw.Bytes()
}

func (e *Extractor) planCapacity() (*capacity.Map, error) {
	analysisStart := time.Now()
	scores, err := texture.Analyze(e.stego, e.config)
	e.stats.TextureAnalysis = time.Since(analysisStart)
	if err != nil {
		return nil, err
	}

	planStart := time.Now()
	capMap, err := capacity.Plan(scores, e.stego, e.config)
	e.stats.CapacityPlanning = time.Since(planStart)
	if err != nil {
		return nil, err
	}
	return capMap, nil
}

// Extract is the package-level convenience wrapper around Extractor.
func Extract(stego *grid.Grid, key []byte, cfg config.StegConfig) ([]byte, error) {
	extractor, err := NewExtractor(stego, cfg)
	if err != nil {
		return nil, err
	}
	return extractor.Extract(key)
}
