package keysmith

import (
	"testing"
)

func FuzzEncodeDecode(f *testing.F) {
	for _, seed := range []string{"", "abcd", "alim", "\x00\xff", "Hello, World!"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, err := Decode(Encode(s))
		if err != nil {
			t.Fatalf("Decode(Encode(%q)) error: %v", s, err)
		}
		if got != s {
			t.Fatalf("Decode(Encode(%q)) = %q", s, got)
		}
	})
}

func FuzzDeriveVerify(f *testing.F) {
	for _, tt := range derivedVectors {
		f.Add(tt.name)
	}
	f.Add("abc")
	f.Fuzz(func(t *testing.T, name string) {
		serial, err := Derive(name)
		if len(name) <= minNameLen {
			if err == nil {
				t.Fatalf("Derive(%q) should fail", name)
			}
			return
		}
		if err != nil {
			t.Fatalf("Derive(%q) error: %v", name, err)
		}
		if !Verify(name, serial) {
			t.Fatalf("Verify(%q, %q) = false", name, serial)
		}
	})
}

// Verify must report false, never panic, for arbitrary input.
func FuzzVerify(f *testing.F) {
	f.Add("alim", alimSerial)
	f.Add("alim", "BADFORMAT")
	f.Add("", "----")
	f.Add("alim", "\xff\xff\xff\xff\xff\xff-ZZZZ-0000-0000")
	f.Fuzz(func(_ *testing.T, name, serial string) {
		_ = Verify(name, serial)
	})
}
