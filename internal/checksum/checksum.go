// Package checksum writes SHA-256 sidecars for emitted result files, so
// downstream proof-publication steps can reference the artifact by hash.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
)

// Sum returns the hex SHA-256 digest of the file at path.
func Sum(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = fh.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, fh); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Write hashes the file at path and writes "<hex>  <basename>" in sha256sum
// format to path+".sha256". It returns the hex digest.
func Write(path string) (string, error) {
	sum, err := Sum(path)
	if err != nil {
		return "", err
	}
	line := sum + "  " + filepath.Base(path) + "\n"
	if err := os.WriteFile(path+".sha256", []byte(line), 0644); err != nil {
		return "", err
	}
	return sum, nil
}
