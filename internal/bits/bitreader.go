package bits

// BitReader implements methods to help with reading bits from an array of
// bytes. Bits are read from most significant to least significant, which is
// the order the payload codec frames them in.
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

// ReadBit returns the next bit as 0 or 1. Reading past the end returns 0;
// callers are expected to check BitsLeftToRead first.
func (br *BitReader) ReadBit() byte {
	if len(br.bytes) == 0 {
		return 0
	}
	bit := (br.bytes[0] >> (7 - br.currentBitIdx)) & 1
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit
}

// ReadBits reads up to 8 bits and returns them right-aligned in a byte.
func (br *BitReader) ReadBits(bitsToRead uint) (byteWithRequestedBits byte) {
	for numOfBitsRead := uint(0); numOfBitsRead < bitsToRead; numOfBitsRead++ {
		byteWithRequestedBits = byteWithRequestedBits<<1 | br.ReadBit()
	}
	return byteWithRequestedBits
}
