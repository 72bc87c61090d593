package cli

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"

	"tsteg/internal/crypt"
)

// preparePayload applies the optional pre-processing steps before the
// payload enters the steg core: compress first (ciphertext does not
// compress), then encrypt.
func preparePayload(payload, key []byte, compress, encrypt bool) ([]byte, error) {
	var err error
	if compress {
		if payload, err = zstdCompress(payload); err != nil {
			return nil, err
		}
	}
	if encrypt {
		if payload, err = crypt.Encrypt(payload, key); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// restorePayload undoes preparePayload in reverse order.
func restorePayload(payload, key []byte, decompress, decrypt bool) ([]byte, error) {
	var err error
	if decrypt {
		if payload, err = crypt.Decrypt(payload, key); err != nil {
			return nil, err
		}
	}
	if decompress {
		if payload, err = zstdDecompress(payload); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

func zstdCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err = enc.Write(data); err != nil {
		return nil, err
	}
	if err = enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func zstdDecompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}
