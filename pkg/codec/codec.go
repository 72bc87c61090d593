// Package codec frames secret payloads as self-describing bitstreams:
// a 32-bit big-endian length, a 32-bit CRC-32 (IEEE) checksum over the raw
// payload bytes, then the payload itself, consumed MSB-first. The checksum
// algorithm and field layout are pinned: they are the only way the
// extractor can tell a successful recovery from a wrong key or a damaged
// carrier.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"tsteg/internal/bits"
)

const (
	// HeaderBits is the fixed bit length of the length + checksum fields.
	HeaderBits = 64

	headerBytes = HeaderBits / 8
)

var (
	ErrPayloadTruncated = errors.New("bitstream ends before the declared payload length")
	ErrChecksumMismatch = errors.New("payload checksum mismatch, wrong key or damaged carrier")
)

// Header is the decoded framing prefix.
type Header struct {
	Length   uint32
	Checksum uint32
}

// Encode frames payload bytes for embedding. The returned slice is
// byte-aligned; its bit length is HeaderBits + 8×len(payload).
func Encode(payload []byte) []byte {
	framed := make([]byte, headerBytes+len(payload))
	binary.BigEndian.PutUint32(framed[0:4], uint32(len(payload)))
	binary.BigEndian.PutUint32(framed[4:8], crc32.ChecksumIEEE(payload))
	copy(framed[headerBytes:], payload)
	return framed
}

// ParseHeader decodes the first 8 recovered bytes into a Header.
func ParseHeader(raw [headerBytes]byte) Header {
	return Header{
		Length:   binary.BigEndian.Uint32(raw[0:4]),
		Checksum: binary.BigEndian.Uint32(raw[4:8]),
	}
}

// Verify recomputes the checksum over the recovered payload and compares
// it against the header.
func Verify(h Header, payload []byte) error {
	if recomputed := crc32.ChecksumIEEE(payload); recomputed != h.Checksum {
		return fmt.Errorf("%w: header says %08x, payload hashes to %08x", ErrChecksumMismatch, h.Checksum, recomputed)
	}
	return nil
}

// Decode parses a recovered bitstream. It reads the header, then exactly
// Length×8 payload bits, never consuming trailing garbage from unused
// slots, and verifies integrity before returning the payload.
func Decode(br *bits.BitReader) ([]byte, error) {
	if br.BitsLeftToRead() < HeaderBits {
		return nil, fmt.Errorf("%w: fewer than %d header bits available", ErrPayloadTruncated, HeaderBits)
	}

	var raw [headerBytes]byte
	for i := range raw {
		raw[i] = br.ReadBits(8)
	}
	header := ParseHeader(raw)

	if br.BitsLeftToRead() < int(header.Length)*8 {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, %d bits available", ErrPayloadTruncated, header.Length, br.BitsLeftToRead())
	}

	payload := make([]byte, header.Length)
	for i := range payload {
		payload[i] = br.ReadBits(8)
	}

	if err := Verify(header, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
