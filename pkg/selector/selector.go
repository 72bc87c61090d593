package selector

import (
	"errors"
	"fmt"

	"tsteg/pkg/capacity"
)

var (
	ErrNotEnoughCapacity = errors.New("payload does not fit in the image's adaptive capacity, choose a busier image or raise kMax")
	ErrEmptyKey          = errors.New("secret key must not be empty")
)

// Slot addresses one embeddable bit: a bit-plane of one channel sample of
// one pixel.
type Slot struct {
	X, Y           int
	Channel, Plane uint8
}

// Select derives the keyed slot order for an image. It enumerates every
// slot the capacity map allows, permutes the list with a Fisher–Yates
// shuffle driven by the key-seeded generator, and returns the first
// requiredBits entries. The result is fully determined by (capacity map,
// key, requiredBits): embed and extract run this independently and must
// arrive at the identical sequence.
func Select(capMap *capacity.Map, key []byte, requiredBits int) ([]Slot, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if requiredBits > capMap.TotalBits {
		return nil, fmt.Errorf("%w: need %d bits, image holds %d", ErrNotEnoughCapacity, requiredBits, capMap.TotalBits)
	}

	slots := enumerateSlots(capMap)

	ks, err := newKeystream(key)
	if err != nil {
		return nil, err
	}
	for i := len(slots) - 1; i > 0; i-- {
		j := ks.uint64n(uint64(i + 1))
		slots[i], slots[j] = slots[j], slots[i]
	}

	return slots[:requiredBits], nil
}

// enumerateSlots lists all slots in fixed scan order: row-major pixels,
// then channels, then bit-planes from least significant up to the pixel's
// budget. The order is part of the determinism contract; the shuffle
// operates on exactly this list.
func enumerateSlots(capMap *capacity.Map) []Slot {
	slots := make([]Slot, 0, capMap.TotalBits)
	for y := 0; y < capMap.Height; y++ {
		for x := 0; x < capMap.Width; x++ {
			budget := capMap.At(x, y)
			for c := 0; c < capMap.DataChannels; c++ {
				for plane := uint8(0); plane < budget; plane++ {
					slots = append(slots, Slot{X: x, Y: y, Channel: uint8(c), Plane: plane})
				}
			}
		}
	}
	return slots
}
