package steg

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"tsteg/pkg/codec"
	"tsteg/pkg/config"
	"tsteg/pkg/grid"
	"tsteg/pkg/selector"
)

func noiseGray(width, height int, seed int64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := grid.New(width, height, 1, -1)
	for i := range g.Pix {
		g.Pix[i] = uint8(rng.Intn(256))
	}
	return g
}

func noiseRGBA(width, height int, seed int64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := grid.New(width, height, 4, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < 3; c++ {
				g.Pix[g.SampleIdx(x, y, c)] = uint8(rng.Intn(256))
			}
			g.Pix[g.SampleIdx(x, y, 3)] = 255
		}
	}
	return g
}

// texturedCover builds a gray cover that is busy in the top-left block and
// flat everywhere else, so embedding has capacity only where the texture is.
func texturedCover(size, blockSize int) *grid.Grid {
	g := grid.New(size, size, 1, -1)
	for i := range g.Pix {
		g.Pix[i] = 128
	}
	for y := 0; y < blockSize; y++ {
		for x := 0; x < blockSize; x++ {
			if (x+y)%2 == 0 {
				g.Pix[y*size+x] = 100
			} else {
				g.Pix[y*size+x] = 200
			}
		}
	}
	return g
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	payload := []byte("attack at dawn, bring the long ladders")
	key := []byte("hunter2")

	tests := []struct {
		name  string
		cover *grid.Grid
		cfg   config.StegConfig
	}{
		{"gray kMax=1", noiseGray(48, 48, 1), config.StegConfig{KMax: 1}},
		{"gray kMax=2", noiseGray(48, 48, 2), config.StegConfig{KMax: 2}},
		{"gray kMax=3", noiseGray(48, 48, 3), config.StegConfig{KMax: 3}},
		{"rgba kMax=1", noiseRGBA(32, 32, 4), config.StegConfig{KMax: 1}},
		{"rgba kMax=2", noiseRGBA(32, 32, 5), config.StegConfig{KMax: 2}},
		{"rgba 16 neighbors", noiseRGBA(32, 32, 6), config.StegConfig{KMax: 2, LBPNeighbors: 16, Thresholds: []int{4, 10}}},
		{"rgba radius 2", noiseRGBA(48, 48, 7), config.StegConfig{KMax: 2, LBPRadius: 2}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stego, err := Embed(test.cover, key, payload, test.cfg)
			if err != nil {
				t.Fatalf("embed: %v", err)
			}

			recovered, err := Extract(stego, key, test.cfg)
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if !bytes.Equal(recovered, payload) {
				t.Errorf("expected payload %q, got %q", payload, recovered)
			}
		})
	}
}

func TestEmbedConfinedToTexturedRegion(t *testing.T) {
	cover := texturedCover(32, 24)
	cfg := config.StegConfig{KMax: 1, Thresholds: []int{4}, LBPRadius: 1, LBPNeighbors: 8}
	key := []byte("hunter2")
	payload := []byte("Z")

	stego, err := Embed(cover, key, payload, cfg)
	if err != nil {
		t.Fatalf("embed: %v", err)
	}

	// Flat pixels one step past the block still see the checkerboard
	// through their sampling ring, so the writable area is the block plus
	// that boundary ring; nothing deeper into the flat region may change.
	for y := 0; y < cover.Height; y++ {
		for x := 0; x < cover.Width; x++ {
			changed := stego.Pix[y*32+x] != cover.Pix[y*32+x]
			if changed && (x > 24 || y > 24) {
				t.Errorf("flat pixel (%d,%d) was modified", x, y)
			}
		}
	}

	recovered, err := Extract(stego, key, cfg)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !bytes.Equal(recovered, payload) {
		t.Errorf("expected payload %q, got %q", payload, recovered)
	}
}

func TestEmbedOnlyTouchesBudgetedBitPlanes(t *testing.T) {
	for _, kMax := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("kMax=%d", kMax), func(t *testing.T) {
			cover := noiseRGBA(32, 32, int64(kMax))
			cfg := config.StegConfig{KMax: kMax}

			stego, err := Embed(cover, []byte("key"), []byte("some payload bytes"), cfg)
			if err != nil {
				t.Fatalf("embed: %v", err)
			}

			planeMask := uint8(1<<kMax - 1)
			for i := range cover.Pix {
				if diff := cover.Pix[i] ^ stego.Pix[i]; diff&^planeMask != 0 {
					t.Fatalf("sample %d changed outside the %d low bit-planes: %08b -> %08b",
						i, kMax, cover.Pix[i], stego.Pix[i])
				}
				if i%4 == 3 && cover.Pix[i] != stego.Pix[i] {
					t.Fatalf("alpha sample %d was modified", i)
				}
			}
		})
	}
}

func TestEmbedDoesNotMutateCover(t *testing.T) {
	cover := noiseGray(32, 32, 11)
	pristine := cover.Clone()

	if _, err := Embed(cover, []byte("key"), []byte("payload"), config.StegConfig{}); err != nil {
		t.Fatalf("embed: %v", err)
	}
	if !bytes.Equal(cover.Pix, pristine.Pix) {
		t.Error("embed mutated the cover grid")
	}
}

func TestEmbedIsDeterministic(t *testing.T) {
	cover := noiseRGBA(32, 32, 12)
	key := []byte("hunter2")
	payload := []byte("same input, same output")

	first, err := Embed(cover, key, payload, config.StegConfig{})
	if err != nil {
		t.Fatalf("first embed: %v", err)
	}
	second, err := Embed(cover, key, payload, config.StegConfig{})
	if err != nil {
		t.Fatalf("second embed: %v", err)
	}
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("two embeds of identical inputs produced different stego images")
	}
}

func TestExtractWithWrongKeyFails(t *testing.T) {
	cover := noiseGray(48, 48, 13)
	cfg := config.StegConfig{KMax: 2}

	stego, err := Embed(cover, []byte("right key"), []byte("the payload"), cfg)
	if err != nil {
		t.Fatalf("embed: %v", err)
	}

	_, err = Extract(stego, []byte("wrong key"), cfg)
	if err == nil {
		t.Fatal("extract with the wrong key succeeded")
	}
	// A wrong key yields garbage framing: either the checksum disagrees or
	// the garbage length field overruns the image's capacity.
	if !errors.Is(err, codec.ErrChecksumMismatch) && !errors.Is(err, codec.ErrPayloadTruncated) {
		t.Errorf("unexpected error kind: %v", err)
	}
}

func TestEmbedAtExactCapacityBoundary(t *testing.T) {
	cover := noiseGray(32, 32, 14)
	cfg := config.StegConfig{KMax: 2}
	key := []byte("hunter2")

	embedder, err := NewEmbedder(cover, cfg)
	if err != nil {
		t.Fatalf("new embedder: %v", err)
	}
	totalBits, err := embedder.Capacity()
	if err != nil {
		t.Fatalf("capacity: %v", err)
	}
	maxPayloadLen := (totalBits - codec.HeaderBits) / 8

	payload := bytes.Repeat([]byte{0xA5}, maxPayloadLen)
	stego, err := embedder.Embed(key, payload)
	if err != nil {
		t.Fatalf("embed at capacity: %v", err)
	}
	recovered, err := Extract(stego, key, cfg)
	if err != nil {
		t.Fatalf("extract at capacity: %v", err)
	}
	if !bytes.Equal(recovered, payload) {
		t.Error("payload at exact capacity did not round trip")
	}

	_, err = embedder.Embed(key, bytes.Repeat([]byte{0xA5}, maxPayloadLen+1))
	if !errors.Is(err, selector.ErrNotEnoughCapacity) {
		t.Errorf("expected ErrNotEnoughCapacity one byte over, got %v", err)
	}
}

func TestEmbedRejectsFlatCover(t *testing.T) {
	cover := grid.New(16, 16, 1, -1)
	for i := range cover.Pix {
		cover.Pix[i] = 128
	}

	_, err := Embed(cover, []byte("key"), []byte{}, config.StegConfig{})
	if !errors.Is(err, selector.ErrNotEnoughCapacity) {
		t.Errorf("expected ErrNotEnoughCapacity on a zero-texture cover, got %v", err)
	}

	_, err = Extract(cover, []byte("key"), config.StegConfig{})
	if !errors.Is(err, codec.ErrPayloadTruncated) {
		t.Errorf("expected ErrPayloadTruncated on a zero-capacity image, got %v", err)
	}
}

func TestTranslucentPixelsCarryNothing(t *testing.T) {
	cover := noiseRGBA(32, 32, 15)
	// knock out the alpha of a band of pixels
	for y := 8; y < 16; y++ {
		for x := 0; x < 32; x++ {
			cover.Pix[cover.SampleIdx(x, y, 3)] = 200
		}
	}
	cfg := config.StegConfig{KMax: 2}
	key := []byte("hunter2")
	payload := []byte("opaque pixels only")

	stego, err := Embed(cover, key, payload, cfg)
	if err != nil {
		t.Fatalf("embed: %v", err)
	}

	for y := 8; y < 16; y++ {
		for x := 0; x < 32; x++ {
			for c := 0; c < 4; c++ {
				idx := cover.SampleIdx(x, y, c)
				if cover.Pix[idx] != stego.Pix[idx] {
					t.Fatalf("translucent pixel (%d,%d) channel %d was modified", x, y, c)
				}
			}
		}
	}

	recovered, err := Extract(stego, key, cfg)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !bytes.Equal(recovered, payload) {
		t.Errorf("expected payload %q, got %q", payload, recovered)
	}
}

func TestMismatchedConfigFailsExtraction(t *testing.T) {
	cover := noiseGray(48, 48, 16)
	key := []byte("hunter2")

	stego, err := Embed(cover, key, []byte("embedded with kMax=2"), config.StegConfig{KMax: 2})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}

	_, err = Extract(stego, key, config.StegConfig{KMax: 1})
	if err == nil {
		t.Fatal("extracting with a different kMax succeeded")
	}
	if !errors.Is(err, codec.ErrChecksumMismatch) && !errors.Is(err, codec.ErrPayloadTruncated) {
		t.Errorf("unexpected error kind: %v", err)
	}
}

func TestNewEmbedderRejectsInvalidConfig(t *testing.T) {
	cover := noiseGray(8, 8, 17)
	_, err := NewEmbedder(cover, config.StegConfig{KMax: 2, Thresholds: []int{5, 2}})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
