// Package yaml provides a YAML codec for license records.
package yaml

import (
	"bytes"

	"github.com/zoobzio/keysmith"
	"gopkg.in/yaml.v3"
)

const defaultIndent = 2

// yamlCodec implements keysmith.Codec for YAML.
type yamlCodec struct {
	strict bool
}

// New returns a YAML codec.
func New() keysmith.Codec {
	return &yamlCodec{}
}

// Strict returns a YAML codec that rejects mapping keys the target type
// does not declare.
func Strict() keysmith.Codec {
	return &yamlCodec{strict: true}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(defaultIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return yaml.Unmarshal(data, v)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}
