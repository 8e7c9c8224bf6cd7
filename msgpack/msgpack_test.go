package msgpack

import (
	"testing"
)

type license struct {
	Name   string `json:"name"`
	Serial string `json:"serial"`
	Seats  int    `json:"seats,omitempty"`
}

func TestNew(t *testing.T) {
	if New() == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	original := license{Name: "alim", Serial: "AXDXEE-EDB0-55B4-0D04", Seats: 3}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored license
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshal_UsesJSONTags(t *testing.T) {
	c := New()

	data, err := c.Marshal(license{Name: "alim", Serial: "AXDXEE-EDB0-55B4-0D04"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var fields map[string]any
	if err := c.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if fields["serial"] != "AXDXEE-EDB0-55B4-0D04" {
		t.Errorf("fields[serial] = %v, want the serial", fields["serial"])
	}
	if _, ok := fields["Serial"]; ok {
		t.Error("field names should come from json tags")
	}
	if _, ok := fields["seats"]; ok {
		t.Error("omitempty from json tag should be honored")
	}
}

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	// 0xc0 is the MessagePack nil marker
	if len(data) != 1 || data[0] != 0xc0 {
		t.Errorf("Marshal(nil) = %x, want c0", data)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var v license
	if err := New().Unmarshal([]byte{0xc1}, &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
