// Package json provides a JSON codec for license records.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/keysmith"
)

// jsonCodec implements keysmith.Codec for JSON.
type jsonCodec struct {
	strict bool
}

// New returns a JSON codec.
func New() keysmith.Codec {
	return &jsonCodec{}
}

// Strict returns a JSON codec that rejects records carrying fields the
// target type does not declare.
func Strict() keysmith.Codec {
	return &jsonCodec{strict: true}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return json.Unmarshal(data, v)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
