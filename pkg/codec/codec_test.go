package codec

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsteg/internal/bits"
)

func TestEncodeLaysOutLengthChecksumPayload(t *testing.T) {
	payload := []byte("secret")
	framed := Encode(payload)

	require.Len(t, framed, 8+len(payload))
	assert.Equal(t, []byte{0, 0, 0, 6}, framed[0:4])

	checksum := crc32.ChecksumIEEE(payload)
	assert.Equal(t, []byte{
		byte(checksum >> 24), byte(checksum >> 16), byte(checksum >> 8), byte(checksum),
	}, framed[4:8])
	assert.Equal(t, payload, framed[8:])
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, payload := range [][]byte{
		[]byte{},
		[]byte{0x42},
		[]byte("the quick brown fox"),
	} {
		framed := Encode(payload)
		decoded, err := Decode(bits.NewBitReader(framed))
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	}
}

func TestDecodeIgnoresTrailingGarbage(t *testing.T) {
	framed := Encode([]byte("payload"))
	framed = append(framed, 0xFF, 0xFF, 0xFF)

	decoded, err := Decode(bits.NewBitReader(framed))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), decoded)
}

func TestDecodeShortHeaderIsTruncation(t *testing.T) {
	_, err := Decode(bits.NewBitReader([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ErrPayloadTruncated)
}

func TestDecodeShortPayloadIsTruncation(t *testing.T) {
	framed := Encode([]byte("this will be cut"))
	_, err := Decode(bits.NewBitReader(framed[:len(framed)-4]))
	assert.ErrorIs(t, err, ErrPayloadTruncated)
}

func TestDecodeCorruptedPayloadIsChecksumMismatch(t *testing.T) {
	framed := Encode([]byte("pristine"))
	framed[len(framed)-1] ^= 0x01

	_, err := Decode(bits.NewBitReader(framed))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestVerifyMatchesHeaderChecksum(t *testing.T) {
	payload := []byte("payload")
	h := Header{Length: uint32(len(payload)), Checksum: crc32.ChecksumIEEE(payload)}

	assert.NoError(t, Verify(h, payload))
	assert.ErrorIs(t, Verify(h, []byte("tampered")), ErrChecksumMismatch)
}
