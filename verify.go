package keysmith

import (
	"encoding/hex"
	"strings"
)

// segment lengths of LLLLHH-XXXX-XXXX-XXXX.
var segmentLens = [4]int{6, 4, 4, 4}

// ParseSerial splits s into its segments. Hex segments are accepted in
// either case; letters are kept as supplied.
func ParseSerial(s string) (Serial, error) {
	parts := strings.Split(s, "-")
	if len(parts) != len(segmentLens) {
		return Serial{}, newMalformed("format", s)
	}
	for i, part := range parts {
		if len(part) != segmentLens[i] {
			return Serial{}, newMalformed("format", s)
		}
	}

	var out Serial
	copy(out.Letters[:], parts[0][:4])

	var tail [1]byte
	if err := decodeHex(tail[:], parts[0][4:], "tail"); err != nil {
		return Serial{}, err
	}
	out.Tail = tail[0]

	groups := []struct {
		dst  *[2]byte
		name string
	}{
		{&out.Group1, "group1"},
		{&out.Group2, "group2"},
		{&out.Group3, "group3"},
	}
	for i, g := range groups {
		if err := decodeHex(g.dst[:], parts[i+1], g.name); err != nil {
			return Serial{}, err
		}
	}
	return out, nil
}

func decodeHex(dst []byte, src, segment string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return newMalformed(segment, src)
	}
	return nil
}

// Check verifies serial against name and reports why it was rejected.
//
// The working bytes are read from Group 3 and trusted: Group 3 itself is
// never compared against bytes derived from the name. Every other segment
// is recomputed from the name and those working bytes.
func Check(name, serial string) error {
	got, err := ParseSerial(serial)
	if err != nil {
		return err
	}
	b0, b1 := got.WorkingBytes()

	n, err := readName(name)
	if err != nil {
		return err
	}
	want := n.serial(b0, b1)

	if got.Letters != want.Letters {
		return newMismatch("letters", string(got.Letters[:]))
	}
	if got.Tail != want.Tail {
		return newMismatch("tail", hexUpper(got.Tail))
	}
	if got.Group1 != want.Group1 {
		return newMismatch("group1", hexUpper(got.Group1[:]...))
	}
	if got.Group2 != want.Group2 {
		return newMismatch("group2", hexUpper(got.Group2[:]...))
	}
	return nil
}

// Verify reports whether serial is valid for name. Malformed serials and
// short names yield false.
func Verify(name, serial string) bool {
	return Check(name, serial) == nil
}

func hexUpper(bs ...byte) string {
	return strings.ToUpper(hex.EncodeToString(bs))
}
