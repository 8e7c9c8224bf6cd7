// Package xml provides an XML codec for license records.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/keysmith"
)

// xmlCodec implements keysmith.Codec for XML.
type xmlCodec struct {
	indent string
}

// New returns a compact XML codec.
func New() keysmith.Codec {
	return &xmlCodec{}
}

// Indented returns an XML codec that writes one element per line,
// indented by indent. License files handed to people read better this way.
func Indented(indent string) keysmith.Codec {
	return &xmlCodec{indent: indent}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	if c.indent == "" {
		return xml.Marshal(v)
	}
	return xml.MarshalIndent(v, "", c.indent)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
