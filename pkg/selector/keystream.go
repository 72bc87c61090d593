package selector

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// keystream is the pinned deterministic generator behind slot selection:
// a ChaCha20 keystream keyed with SHA-256(secret key) and an all-zero
// nonce. Both sides of the channel must use exactly this construction, or
// they will derive different permutations; it is part of the wire
// contract, alongside the CRC-32 checksum in the codec.
type keystream struct {
	cipher *chacha20.Cipher
}

func newKeystream(key []byte) (*keystream, error) {
	seed := sha256.Sum256(key)
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &keystream{cipher: cipher}, nil
}

func (ks *keystream) uint64() uint64 {
	var word [8]byte
	ks.cipher.XORKeyStream(word[:], word[:])
	return binary.BigEndian.Uint64(word[:])
}

// uint64n draws uniformly from [0, n) using rejection sampling, so the
// permutation has no modulo bias.
func (ks *keystream) uint64n(n uint64) uint64 {
	if n == 0 {
		panic("selector: uint64n called with n == 0")
	}
	limit := -n % n // (2^64 - n) % n == 2^64 mod n
	for {
		v := ks.uint64()
		if v >= limit {
			return v % n
		}
	}
}
