package cli

import (
	"bytes"
	"testing"
)

func TestPreparePayloadRoundTrips(t *testing.T) {
	payload := bytes.Repeat([]byte("highly compressible payload "), 64)
	key := []byte("hunter2")

	tests := []struct {
		name              string
		compress, encrypt bool
	}{
		{"plain", false, false},
		{"compressed", true, false},
		{"encrypted", false, true},
		{"compressed and encrypted", true, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prepared, err := preparePayload(payload, key, test.compress, test.encrypt)
			if err != nil {
				t.Fatalf("prepare: %v", err)
			}
			if test.compress && len(prepared) >= len(payload) {
				t.Errorf("compressed payload is not smaller: %d >= %d", len(prepared), len(payload))
			}

			restored, err := restorePayload(prepared, key, test.compress, test.encrypt)
			if err != nil {
				t.Fatalf("restore: %v", err)
			}
			if !bytes.Equal(restored, payload) {
				t.Error("restored payload differs from the original")
			}
		})
	}
}

func TestRestorePayloadWithWrongKeyFails(t *testing.T) {
	prepared, err := preparePayload([]byte("payload"), []byte("right key"), false, true)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	if _, err := restorePayload(prepared, []byte("wrong key"), false, true); err == nil {
		t.Error("restore with the wrong key succeeded")
	}
}
