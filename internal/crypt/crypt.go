// Package crypt provides optional AES-GCM pre-processing of payload bytes
// before they enter the steg core. The steg engine itself offers no
// confidentiality of payload content, only keyed placement; callers who
// want both enable this layer in the CLI.
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
)

// gcmKey derives a 256-bit AES key from the shared steg secret. The domain
// prefix keeps it distinct from the selector's SHA-256(key) seed.
func gcmKey(stegKey []byte) []byte {
	sum := sha256.Sum256(append([]byte("tsteg/payload-encryption:"), stegKey...))
	return sum[:]
}

// Encrypt seals plaintext with AES-GCM. Output layout: [Nonce | Ciphertext | Tag].
func Encrypt(plaintext, stegKey []byte) ([]byte, error) {
	block, err := aes.NewCipher(gcmKey(stegKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher block: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a payload produced by Encrypt, failing if authentication
// does not check out.
func Decrypt(sealed, stegKey []byte) ([]byte, error) {
	block, err := aes.NewCipher(gcmKey(stegKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher block: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("encrypted payload too short")
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption/authentication failed: %w", err)
	}
	return plaintext, nil
}
