package crypt

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("meet me behind the old mill")
	key := []byte("hunter2")

	sealed, err := Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Contains(sealed, plaintext) {
		t.Error("sealed payload contains the plaintext")
	}

	opened, err := Decrypt(sealed, key)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("expected %q, got %q", plaintext, opened)
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	sealed, err := Encrypt([]byte("plaintext"), []byte("right key"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if _, err := Decrypt(sealed, []byte("wrong key")); err == nil {
		t.Error("decryption with the wrong key succeeded")
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	key := []byte("hunter2")
	sealed, err := Encrypt([]byte("plaintext"), key)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	sealed[len(sealed)-1] ^= 0x01

	if _, err := Decrypt(sealed, key); err == nil {
		t.Error("decryption of tampered ciphertext succeeded")
	}
}

func TestDecryptRejectsShortInput(t *testing.T) {
	if _, err := Decrypt([]byte{1, 2, 3}, []byte("key")); err == nil {
		t.Error("decryption of a too-short payload succeeded")
	}
}
