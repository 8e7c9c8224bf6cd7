// Package testing provides fixtures and helpers for keysmith tests.
package testing

import (
	"testing"

	"github.com/zoobzio/keysmith"
)

// KnownSerials maps licensee names to the serials Derive must produce for them.
var KnownSerials = map[string]string{
	"alim":        "AXDXEE-EDB0-55B4-0D04",
	"abcdef":      "DXCZBA-CC28-0E32-4203",
	"JohnDoe":     "AXVZ2A-659C-11F2-CB0A",
	"test":        "DYAXE7-B4C2-A42C-1107",
	"aaaa":        "DXDXFF-0000-0000-0000",
	"Alice Smith": "BWDX0C-916F-7961-D71C",
}

// SealingKey returns a valid 32-byte AES key for testing.
func SealingKey() []byte {
	return []byte("32-byte-key-for-license-tokens!!")
}

// SealedEncoder returns an AES-GCM token encoder configured for testing.
func SealedEncoder(tb testing.TB) keysmith.Encoder {
	tb.Helper()
	enc, err := keysmith.Sealed(SealingKey())
	if err != nil {
		tb.Fatalf("Sealed() error: %v", err)
	}
	return enc
}

// SimpleLicense is a test type with no transformation tags.
type SimpleLicense struct {
	Name string `json:"name" xml:"name" yaml:"name" bson:"name"`
}

// Clone implements Cloner[SimpleLicense].
func (l SimpleLicense) Clone() SimpleLicense { return l }

// License is a test type carrying every context tag.
// Uses the compound tag syntax: {context}.{action}:"{argument}"
type License struct {
	Name   string `json:"name" xml:"name" yaml:"name" bson:"name"`
	Email  string `json:"email" xml:"email" yaml:"email" bson:"email" send.mask:"email"`
	Serial string `json:"serial" xml:"serial" yaml:"serial" bson:"serial" issue.serial:"Name" check.serial:"Name" store.hash:"sha256" send.mask:"serial"`
	Token  string `json:"token" xml:"token" yaml:"token" bson:"token" issue.encode:"Name" check.encode:"Name" send.redact:"[REDACTED]"`
}

// Clone implements Cloner[License].
func (l License) Clone() License { return l }

// NewLicenseProcessor builds a License processor, failing tb on error.
func NewLicenseProcessor(tb testing.TB, codec keysmith.Codec) *keysmith.Processor[License] {
	tb.Helper()
	proc, err := keysmith.NewProcessor[License](codec)
	if err != nil {
		tb.Fatalf("NewProcessor() error: %v", err)
	}
	return proc
}

// MustDerive derives the serial for name, failing tb on error.
func MustDerive(tb testing.TB, name string) string {
	tb.Helper()
	serial, err := keysmith.Derive(name)
	if err != nil {
		tb.Fatalf("Derive(%q) error: %v", name, err)
	}
	return serial
}

// Tamper returns serial with the first digit of group 1 changed.
// The result is well formed but no longer matches the name it was derived for.
func Tamper(serial string) string {
	const pos = 7
	if len(serial) <= pos {
		return serial
	}
	b := []byte(serial)
	if b[pos] == '0' {
		b[pos] = '1'
	} else {
		b[pos] = '0'
	}
	return string(b)
}
