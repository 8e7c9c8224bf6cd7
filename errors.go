package keysmith

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidInput indicates a name too short to derive a serial from.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedSerial indicates a serial with the wrong segment count,
	// segment lengths, or non-hex content in a hex position.
	ErrMalformedSerial = errors.New("malformed serial")

	// ErrSerialMismatch indicates a well-formed serial that does not belong to the name.
	ErrSerialMismatch = errors.New("serial mismatch")

	// ErrDecode indicates encoded text could not be decoded.
	ErrDecode = errors.New("decode failed")

	// ErrMissingEncoder indicates a required encoder was not registered.
	ErrMissingEncoder = errors.New("missing encoder")

	// ErrMissingHasher indicates a required hasher was not registered.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrMissingMasker indicates a required masker was not registered.
	ErrMissingMasker = errors.New("missing masker")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrIssue indicates issuing a field failed.
	ErrIssue = errors.New("issue failed")

	// ErrCheck indicates a field failed verification.
	ErrCheck = errors.New("check failed")

	// ErrHash indicates hashing of a field failed.
	ErrHash = errors.New("hash failed")

	// ErrMask indicates masking of a field failed.
	ErrMask = errors.New("mask failed")

	// ErrRedact indicates redaction of a field failed.
	ErrRedact = errors.New("redact failed")
)

// InputError reports a name that cannot seed a serial.
type InputError struct {
	Length int // Length of the rejected name in bytes
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: name must be longer than %d bytes, got %d", ErrInvalidInput.Error(), minNameLen, e.Length)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// SerialError reports which part of a serial failed verification.
// It never carries the expected segment: a rejected serial is reported
// by what was supplied, so the error cannot be used to build a valid one.
type SerialError struct {
	Err     error  // Underlying sentinel error (ErrMalformedSerial, ErrSerialMismatch)
	Segment string // Segment that failed (format, letters, tail, group1, group2, token)
	Got     string // Segment as supplied
}

func (e *SerialError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%s in %s: %q", e.Err.Error(), e.Segment, e.Got)
	}
	return fmt.Sprintf("%s in %s", e.Err.Error(), e.Segment)
}

func (e *SerialError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with additional context about the field and capability.
type ConfigError struct {
	Err        error  // Underlying sentinel error (ErrMissingHasher, ErrInvalidTag, etc.)
	Field      string // Field name that triggered the error
	Capability string // Capability that was missing or invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Capability != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Capability, e.Field)
	}
	if e.Capability != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Capability)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents an error during field transformation.
// It wraps a sentinel error with context about which field and operation failed.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrIssue, ErrCheck, etc.)
	Field     string // Field name that failed
	Operation string // Operation that failed (issue, check, hash, mask, redact)
	Cause     error  // Original error from the underlying operation
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

// Unwrap exposes both the operation sentinel and the cause, so callers can
// match ErrCheck as well as ErrSerialMismatch on the same error.
func (e *TransformError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for missing or invalid capabilities.
func newConfigError(sentinel error, capability, field string) error {
	return &ConfigError{
		Err:        sentinel,
		Capability: capability,
		Field:      field,
	}
}

// newTransformError creates a TransformError for field transformation failures.
func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}

// newMalformed creates a SerialError for a serial that cannot be parsed.
func newMalformed(segment, got string) error {
	return &SerialError{Err: ErrMalformedSerial, Segment: segment, Got: got}
}

// newMismatch creates a SerialError for a segment that disagrees with the name.
func newMismatch(segment, got string) error {
	return &SerialError{Err: ErrSerialMismatch, Segment: segment, Got: got}
}
