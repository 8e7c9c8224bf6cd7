package keysmith

import "strings"

const (
	// minNameLen is the longest name that is still rejected.
	minNameLen = 3

	letterMin  byte = 'A'
	letterMax  byte = 'Z'
	letterStep      = 4

	// letterWalkLimit covers one full residue class mod letterStep,
	// which always contains values in [letterMin, letterMax].
	letterWalkLimit = 256 / letterStep
)

// Serial is the structured form of LLLLHH-XXXX-XXXX-XXXX.
type Serial struct {
	Letters [4]byte // Uppercase ASCII letters of the header
	Tail    byte    // Last two hex digits of the header
	Group1  [2]byte
	Group2  [2]byte
	Group3  [2]byte // The working bytes b0, b1
}

// String renders the serial in canonical uppercase form.
func (s Serial) String() string {
	var sb strings.Builder
	sb.Grow(21)
	sb.Write(s.Letters[:])
	sb.WriteString(hexUpper(s.Tail))
	sb.WriteByte('-')
	sb.WriteString(hexUpper(s.Group1[:]...))
	sb.WriteByte('-')
	sb.WriteString(hexUpper(s.Group2[:]...))
	sb.WriteByte('-')
	sb.WriteString(hexUpper(s.Group3[:]...))
	return sb.String()
}

// WorkingBytes returns b0 and b1 as carried by Group 3.
func (s Serial) WorkingBytes() (b0, b1 byte) {
	return s.Group3[0], s.Group3[1]
}

// nameBytes holds the values a serial is computed from: the checksum over
// the leading bytes and the last three bytes of the name.
type nameBytes struct {
	s, a, b, c byte
}

// readName extracts the checksum and trailing bytes of name.
func readName(name string) (nameBytes, error) {
	n := len(name)
	if n <= minNameLen {
		return nameBytes{}, &InputError{Length: n}
	}
	return nameBytes{
		s: checksum(name[:n-3]),
		a: name[n-3],
		b: name[n-2],
		c: name[n-1],
	}, nil
}

// checksum sums the bytes of p as signed 8-bit values and reduces the total
// mod 256. Bytes >= 0x80 count as negative; an unsigned sum gives a
// different result for names containing them.
func checksum(p string) byte {
	var sum int
	for i := 0; i < len(p); i++ {
		sum += int(int8(p[i]))
	}
	return byte(sum)
}

// workingBytes derives b0 and b1 from the name.
func (n nameBytes) workingBytes() (b0, b1 byte) {
	return n.s ^ n.a, n.b ^ n.c
}

// letters computes the four header letters.
func (n nameBytes) letters(b0, b1 byte) [4]byte {
	return [4]byte{
		walkUp(n.s * b0),
		walkDown(n.a * b0),
		walkUp(n.b * b1),
		walkDown(n.c * b1),
	}
}

func tail(b0, b1 byte) byte {
	return ^(b0 + b1)
}

func (n nameBytes) group1(b0, b1 byte) [2]byte {
	return [2]byte{n.s*b0 - b1>>4, n.a*b1 - b0>>4}
}

func (n nameBytes) group2(b0, b1 byte) [2]byte {
	return [2]byte{b0*n.b + b0>>4, b1*n.c + b1>>4}
}

// serial assembles every segment from the name and the working bytes.
func (n nameBytes) serial(b0, b1 byte) Serial {
	return Serial{
		Letters: n.letters(b0, b1),
		Tail:    tail(b0, b1),
		Group1:  n.group1(b0, b1),
		Group2:  n.group2(b0, b1),
		Group3:  [2]byte{b0, b1},
	}
}

func walkUp(v byte) byte {
	return walk(v, letterStep)
}

func walkDown(v byte) byte {
	return walk(v, -letterStep)
}

func walk(v byte, step int) byte {
	v, _ = walkSteps(v, step)
	return v
}

// walkSteps steps v by step (mod 256) until it is an uppercase letter and
// reports how many steps that took. Starting just past 'Z' and walking up
// wraps around through 0xFF and takes 58 steps.
func walkSteps(v byte, step int) (byte, int) {
	n := 0
	for ; n < letterWalkLimit && (v < letterMin || v > letterMax); n++ {
		v = byte(int(v) + step)
	}
	return v, n
}

// DeriveSerial computes the structured serial for name.
func DeriveSerial(name string) (Serial, error) {
	n, err := readName(name)
	if err != nil {
		return Serial{}, err
	}
	b0, b1 := n.workingBytes()
	return n.serial(b0, b1), nil
}

// Derive computes the serial for name in LLLLHH-XXXX-XXXX-XXXX form.
// Names of three bytes or fewer fail with ErrInvalidInput.
func Derive(name string) (string, error) {
	s, err := DeriveSerial(name)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}
