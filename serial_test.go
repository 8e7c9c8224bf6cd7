package keysmith

import (
	"errors"
	"testing"
)

// derivedVectors are serials produced by the reference keygen.
var derivedVectors = []struct {
	name   string
	serial string
}{
	{"alim", "AXDXEE-EDB0-55B4-0D04"},
	{"abcdef", "DXCZBA-CC28-0E32-4203"},
	{"JohnDoe", "AXVZ2A-659C-11F2-CB0A"},
	{"zoobzio", "DXBZ39-80D0-CC9A-C006"},
	{"test", "DYAXE7-B4C2-A42C-1107"},
	{"aaaa", "DXDXFF-0000-0000-0000"},
	{"Hello, World!", "DXDYA6-5C1B-D1E9-1445"},
	{"Alice Smith", "BWDX0C-916F-7961-D71C"},
	{"longer name with spaces 1234", "DXAXD2-F85C-946C-2607"},
	{"\x80\x81\x82abc", "BZBW1C-A653-9263-E201"},
}

func TestDerive(t *testing.T) {
	for _, tt := range derivedVectors {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.name)
			if err != nil {
				t.Fatalf("Derive() error: %v", err)
			}
			if got != tt.serial {
				t.Errorf("Derive(%q) = %q, want %q", tt.name, got, tt.serial)
			}
		})
	}
}

func TestDerive_Alim(t *testing.T) {
	n, err := readName("alim")
	if err != nil {
		t.Fatalf("readName() error: %v", err)
	}
	if n.s != 'a' {
		t.Errorf("checksum = %#x, want %#x", n.s, 'a')
	}
	if n.a != 'l' || n.b != 'i' || n.c != 'm' {
		t.Errorf("trailing bytes = %q%q%q, want 'l' 'i' 'm'", n.a, n.b, n.c)
	}

	b0, b1 := n.workingBytes()
	if b0 != 0x61^0x6C {
		t.Errorf("b0 = %#x, want %#x", b0, 0x61^0x6C)
	}
	if b1 != 0x69^0x6D {
		t.Errorf("b1 = %#x, want %#x", b1, 0x69^0x6D)
	}
}

func TestDerive_ShortName(t *testing.T) {
	for _, name := range []string{"", "a", "ab", "abc"} {
		t.Run(name, func(t *testing.T) {
			got, err := Derive(name)
			if err == nil {
				t.Fatalf("Derive(%q) = %q, want error", name, got)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Derive(%q) error = %v, want ErrInvalidInput", name, err)
			}
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("Derive(%q) error should be *InputError, got %T", name, err)
			}
			if inputErr.Length != len(name) {
				t.Errorf("InputError.Length = %d, want %d", inputErr.Length, len(name))
			}
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	first, _ := Derive("deterministic")
	for i := 0; i < 10; i++ {
		again, _ := Derive("deterministic")
		if again != first {
			t.Fatalf("Derive() = %q, then %q", first, again)
		}
	}
}

func TestDerive_Group3DiffersByTrailingBytes(t *testing.T) {
	a, _ := DeriveSerial("alim")
	b, _ := DeriveSerial("alix")
	if a.Group3 == b.Group3 {
		t.Errorf("Group3 should differ: both %X", a.Group3)
	}
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		in   string
		want byte
	}{
		{"", 0},
		{"a", 0x61},
		{"ab", 0xC3},
		{"\xff", 0xFF},
		{"\x80\x81\x82", 0x83},
		{"\x7f\x01", 0x80},
	}

	for _, tt := range tests {
		if got := checksum(tt.in); got != tt.want {
			t.Errorf("checksum(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestWalk(t *testing.T) {
	tests := []struct {
		seed byte
		up   bool
		want byte
	}{
		{0x00, true, 'D'},
		{0x00, false, 'X'},
		{0x41, true, 'A'},
		{0x5A, false, 'Z'},
		{0x5B, true, 'C'},
		{0x5B, false, 'W'},
		{0x40, false, 'X'},
		{0xFF, true, 'C'},
		{0xFF, false, 'W'},
	}

	for _, tt := range tests {
		var got byte
		if tt.up {
			got = walkUp(tt.seed)
		} else {
			got = walkDown(tt.seed)
		}
		if got != tt.want {
			t.Errorf("walk(%#x, up=%v) = %q, want %q", tt.seed, tt.up, got, tt.want)
		}
	}
}

func TestWalkSteps(t *testing.T) {
	tests := []struct {
		seed  byte
		step  int
		want  byte
		steps int
	}{
		{0x41, letterStep, 'A', 0},
		{0x00, letterStep, 'D', 17},
		{0x5B, letterStep, 'C', 58},
		{0x5B, -letterStep, 'W', 1},
		{0x00, -letterStep, 'X', 42},
	}

	for _, tt := range tests {
		got, steps := walkSteps(tt.seed, tt.step)
		if got != tt.want || steps != tt.steps {
			t.Errorf("walkSteps(%#x, %d) = %q, %d, want %q, %d", tt.seed, tt.step, got, steps, tt.want, tt.steps)
		}
	}
}

func TestWalkSteps_WorstCase(t *testing.T) {
	worst := 0
	for v := 0; v < 256; v++ {
		for _, step := range []int{letterStep, -letterStep} {
			if _, n := walkSteps(byte(v), step); n > worst {
				worst = n
			}
		}
	}
	if worst != 58 {
		t.Errorf("worst case = %d steps, want 58", worst)
	}
	if worst >= letterWalkLimit {
		t.Errorf("worst case %d reaches the %d step limit", worst, letterWalkLimit)
	}
}

func TestWalk_AlwaysLands(t *testing.T) {
	for v := 0; v < 256; v++ {
		for _, got := range []byte{walkUp(byte(v)), walkDown(byte(v))} {
			if got < 'A' || got > 'Z' {
				t.Fatalf("walk(%#x) = %#x, outside A-Z", v, got)
			}
		}
	}
}

func TestSerial_String(t *testing.T) {
	s := Serial{
		Letters: [4]byte{'A', 'X', 'D', 'X'},
		Tail:    0xEE,
		Group1:  [2]byte{0xED, 0xB0},
		Group2:  [2]byte{0x55, 0xB4},
		Group3:  [2]byte{0x0D, 0x04},
	}
	if got := s.String(); got != "AXDXEE-EDB0-55B4-0D04" {
		t.Errorf("String() = %q, want %q", got, "AXDXEE-EDB0-55B4-0D04")
	}

	b0, b1 := s.WorkingBytes()
	if b0 != 0x0D || b1 != 0x04 {
		t.Errorf("WorkingBytes() = %#x, %#x, want 0x0d, 0x04", b0, b1)
	}
}
