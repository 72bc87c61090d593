package bits

// BitWriter accumulates bits most significant first into a byte array,
// mirroring BitReader. It is used by the extractor to reassemble the
// recovered bitstream from individual slot reads.
type BitWriter struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitWriter(bitCapacity int) *BitWriter {
	return &BitWriter{
		bytes: make([]byte, 0, (bitCapacity+7)/8),
	}
}

func (bw *BitWriter) WriteBit(bit byte) {
	if bw.currentBitIdx == 0 {
		bw.bytes = append(bw.bytes, 0)
	}
	if bit != 0 {
		bw.bytes[len(bw.bytes)-1] |= 1 << (7 - bw.currentBitIdx)
	}
	bw.currentBitIdx = (bw.currentBitIdx + 1) % 8
}

func (bw *BitWriter) BitsWritten() int {
	if bw.currentBitIdx == 0 {
		return len(bw.bytes) * 8
	}
	return (len(bw.bytes)-1)*8 + int(bw.currentBitIdx)
}

// Bytes returns the written bits packed MSB-first, with any trailing
// partial byte zero-padded.
func (bw *BitWriter) Bytes() []byte {
	return bw.bytes
}
