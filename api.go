// Package keysmith derives and verifies name-bound license serials.
//
// The package provides three stateless transforms over a licensee name,
// plus a generic Processor that applies them to struct fields at the
// boundaries where license records are issued, checked, stored and sent.
//
// # Transforms
//
// Encode produces a text token by XORing every byte with 0x5A and applying
// standard Base64:
//
//	keysmith.Encode("abcd") // "Ozg5Pg=="
//
// Derive produces a serial of the form LLLLHH-XXXX-XXXX-XXXX: four
// uppercase letters, two hex digits, then three groups of four hex digits.
// Names must be longer than three bytes:
//
//	serial, err := keysmith.Derive("alim") // "AXDXEE-EDB0-55B4-0D04"
//
// Verify recomputes the serial from the name and the working bytes carried
// in the last group, and reports whether they agree. Check does the same but
// returns the reason for rejection:
//
//	keysmith.Verify("alim", serial)      // true
//	keysmith.Verify("alim", "BADFORMAT") // false
//
// # Contexts
//
// The Processor operates on four contexts:
//
//   - issue: Egress to a licensee (serials and tokens are filled in)
//   - check: Ingress from a licensee (serials and tokens are verified)
//   - store: Egress to storage (serials are hashed)
//   - send:  Egress to logs, dashboards, support tooling (masked, redacted)
//
// # Tag Syntax
//
// Field behavior is declared via struct tags:
//
//	{context}.{action}:"{value}"
//
// Valid combinations:
//
//	issue.serial:"Name"    - Set to Derive(Name) on issue
//	issue.encode:"Name"    - Set to the encoded token of Name on issue
//	check.serial:"Name"    - Verify against Name on check
//	check.encode:"Name"    - Decode and compare with Name on check
//	store.hash:"sha256"    - Hash on store
//	send.mask:"serial"     - Mask on send
//	send.redact:"***"      - Redact on send
//
// For issue and check tags the value names the source field, which must be
// a string field of the same struct.
//
// # Basic Usage
//
//	type License struct {
//	    Name   string `json:"name"`
//	    Email  string `json:"email" send.mask:"email"`
//	    Serial string `json:"serial" issue.serial:"Name" check.serial:"Name" store.hash:"sha256" send.mask:"serial"`
//	    Token  string `json:"token" issue.encode:"Name" check.encode:"Name" send.redact:"***"`
//	}
//
//	func (l License) Clone() License { return l }
//
//	proc, _ := keysmith.NewProcessor[License](json.New())
//
//	issued, _ := proc.Issue(ctx, &License{Name: "alim"})
//	lic, err := proc.Check(ctx, issued)
//	row, _ := proc.Store(ctx, lic)
//	view, _ := proc.Send(ctx, lic)
//
// # Codec Providers
//
// The following codec implementations are available as submodules:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Observability
//
// Processor operations emit capitan signals (keysmith.issue.start,
// keysmith.check.complete, ...) carrying the content type, type name,
// duration, field counts and error.
package keysmith

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For simple value types Clone can return
// the receiver:
//
//	func (l License) Clone() License { return l }
type Cloner[T any] interface {
	Clone() T
}

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Override interfaces allow types to bypass reflection-based processing.
// When a type implements one of these interfaces, the Processor calls the
// interface method instead of walking tagged fields.

// Issuable bypasses reflection for issue actions.
type Issuable interface {
	// Issue fills the receiver's serial and token fields.
	// The receiver is a clone, so mutations are safe.
	Issue(enc Encoder) error
}

// Checkable bypasses reflection for check actions.
type Checkable interface {
	// Check verifies the receiver's serial and token fields.
	// Called on freshly unmarshaled data.
	Check(enc Encoder) error
}

// Hashable bypasses reflection for store.hash actions.
type Hashable interface {
	// Hash transforms the receiver's fields that require hashing.
	// The receiver is a clone, so mutations are safe.
	Hash(hashers map[HashAlgo]Hasher) error
}

// Maskable bypasses reflection for send.mask actions.
type Maskable interface {
	// Mask transforms the receiver's fields that require masking.
	// The receiver is a clone, so mutations are safe.
	Mask(maskers map[MaskType]Masker) error
}

// Redactable bypasses reflection for send.redact actions.
type Redactable interface {
	// Redact transforms the receiver's fields that require redaction.
	// The receiver is a clone, so mutations are safe.
	Redact() error
}
