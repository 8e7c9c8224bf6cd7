package keysmith

import (
	"encoding/base64"
	"fmt"
)

// DefaultXORKey is the byte every name byte is XORed with before encoding.
const DefaultXORKey byte = 0x5A

// Encoder produces a text-safe token from a name and recovers the name from it.
type Encoder interface {
	// Encode returns the token for plaintext.
	Encode(plaintext []byte) string

	// Decode recovers the plaintext from a token produced by Encode.
	Decode(token string) ([]byte, error)
}

// xorEncoder XORs every byte with a single key byte, then applies standard
// Base64 with padding.
type xorEncoder struct {
	key byte
}

// XOR returns the encoder keyed with DefaultXORKey.
func XOR() Encoder {
	return XORWithKey(DefaultXORKey)
}

// XORWithKey returns an XOR encoder using key.
func XORWithKey(key byte) Encoder {
	return &xorEncoder{key: key}
}

func (e *xorEncoder) Encode(plaintext []byte) string {
	return base64.StdEncoding.EncodeToString(e.xor(plaintext))
}

func (e *xorEncoder) Decode(token string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return e.xor(raw), nil
}

// xor applies the key to a copy of p; XOR with a fixed key is its own inverse.
func (e *xorEncoder) xor(p []byte) []byte {
	out := make([]byte, len(p))
	for i, b := range p {
		out[i] = b ^ e.key
	}
	return out
}

var defaultEncoder = XOR()

// Encode maps name to its XOR/Base64 token using DefaultXORKey.
// It accepts any byte sequence, including the empty string.
func Encode(name string) string {
	return defaultEncoder.Encode([]byte(name))
}

// Decode reverses Encode.
func Decode(token string) (string, error) {
	raw, err := defaultEncoder.Decode(token)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
