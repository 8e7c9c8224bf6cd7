package keysmith

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// Sealing errors.
var (
	ErrInvalidKeySize  = errors.New("invalid key size")
	ErrCiphertextShort = errors.New("ciphertext too short")
)

// sealedEncoder implements AES-GCM token sealing. Unlike XOR, a sealed token
// reveals nothing about the name without the key, and tampering is detected
// on Decode.
type sealedEncoder struct {
	gcm cipher.AEAD
}

// Sealed returns an AES-GCM encoder.
// Key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
//
// Each call to Encode draws a fresh nonce, so the same name yields a
// different token every time. Check decodes tokens before comparing, so
// sealed tokens verify normally.
func Sealed(key []byte) (Encoder, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &sealedEncoder{gcm: gcm}, nil
}

func (e *sealedEncoder) Encode(plaintext []byte) string {
	nonce := make([]byte, e.gcm.NonceSize())
	// crypto/rand.Read never returns an error as of Go 1.24.
	_, _ = rand.Read(nonce)

	// Prepend nonce to ciphertext
	return base64.StdEncoding.EncodeToString(e.gcm.Seal(nonce, nonce, plaintext, nil))
}

func (e *sealedEncoder) Decode(token string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	nonceSize := e.gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrCiphertextShort)
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return plaintext, nil
}
