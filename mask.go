package keysmith

import (
	"strings"
)

// MaskType represents a known data format with masking rules.
type MaskType string

const (
	MaskSerial MaskType = "serial" // AXDXEE-EDB0-55B4-0D04 -> AXDXEE-****-****-****
	MaskToken  MaskType = "token"  // OzYzNw== -> OzYz****
	MaskEmail  MaskType = "email"  // alice@example.com -> a***@example.com
	MaskName   MaskType = "name"   // John Smith -> J*** S****
)

// Masker applies content-aware masking.
type Masker interface {
	// Mask applies masking to the value.
	Mask(value string) string
}

// serialMasker masks serials: AXDXEE-EDB0-55B4-0D04 -> AXDXEE-****-****-****
type serialMasker struct{}

// SerialMasker returns a masker for license serials.
// Preserves the header, masks every group after it. The header alone
// cannot be checked against a name, so the masked form is safe to display.
func SerialMasker() Masker {
	return &serialMasker{}
}

func (m *serialMasker) Mask(value string) string {
	parts := strings.Split(value, "-")
	if len(parts) < 2 {
		return strings.Repeat("*", len(value))
	}
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.Repeat("*", len(parts[i]))
	}
	return strings.Join(parts, "-")
}

// tokenMasker masks encoded tokens: OzYzNw== -> OzYz****
type tokenMasker struct{}

// TokenMasker returns a masker for encoded tokens.
// Preserves the first Base64 quantum (4 characters).
func TokenMasker() Masker {
	return &tokenMasker{}
}

func (m *tokenMasker) Mask(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-4)
}

// emailMasker masks email format: alice@example.com -> a***@example.com
type emailMasker struct{}

// EmailMasker returns a masker for email addresses.
// Preserves first character of local part and full domain.
func EmailMasker() Masker {
	return &emailMasker{}
}

func (m *emailMasker) Mask(value string) string {
	atIdx := strings.LastIndex(value, "@")
	if atIdx < 1 {
		// No @ or @ at start, mask everything
		return strings.Repeat("*", len(value))
	}

	local := value[:atIdx]
	domain := value[atIdx:]

	return string(local[0]) + "***" + domain
}

// nameMasker masks names: John Smith -> J*** S****
type nameMasker struct{}

// NameMasker returns a masker for licensee names.
// Preserves first letter of each word, masks the rest.
func NameMasker() Masker {
	return &nameMasker{}
}

func (m *nameMasker) Mask(value string) string {
	words := strings.Fields(value)
	masked := make([]string, len(words))

	for i, word := range words {
		runes := []rune(word)
		masked[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}

	return strings.Join(masked, " ")
}

// builtinMaskers returns the default masker registry.
func builtinMaskers() map[MaskType]Masker {
	return map[MaskType]Masker{
		MaskSerial: SerialMasker(),
		MaskToken:  TokenMasker(),
		MaskEmail:  EmailMasker(),
		MaskName:   NameMasker(),
	}
}
