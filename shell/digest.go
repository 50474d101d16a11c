package shell

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

type SHA256Digest struct{}

func NewSHA256Digest() *SHA256Digest {
	return &SHA256Digest{}
}

func (this *SHA256Digest) FileDigest(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
