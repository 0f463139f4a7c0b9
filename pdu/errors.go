package pdu

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a decode failure so callers can react without parsing
// error strings.
type Kind int

// Decode failure kinds. Unknown-but-representable enum codes are never an
// error: they round-trip through an Other(u) catch-all instead.
const (
	// KindUnexpectedEOF means the decoder ran out of bytes mid-field.
	KindUnexpectedEOF Kind = iota
	// KindTooFewBytes means a string/value was shorter than its minimum;
	// it is also reported when a C-octet string reaches its maximum
	// length without a NUL terminator.
	KindTooFewBytes
	// KindTooManyBytes means an octet string exceeded its maximum.
	KindTooManyBytes
	// KindNotAscii means a C-octet string held a non 7-bit-ASCII byte.
	KindNotAscii
	// KindNotNullTerminated means EOF was hit before a NUL terminator.
	KindNotNullTerminated
	// KindUnsupportedKey means a discriminant fell outside a closed set
	// where Other(u) is not a legal fallback (DestAddress flag, SingleTlv
	// tag).
	KindUnsupportedKey
	// KindMinLength means a frame's command_length was under 16.
	KindMinLength
	// KindMaxLength means a frame's command_length exceeded the configured
	// maximum.
	KindMaxLength
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "unexpected_eof"
	case KindTooFewBytes:
		return "too_few_bytes"
	case KindTooManyBytes:
		return "too_many_bytes"
	case KindNotAscii:
		return "not_ascii"
	case KindNotNullTerminated:
		return "not_null_terminated"
	case KindUnsupportedKey:
		return "unsupported_key"
	case KindMinLength:
		return "min_length"
	case KindMaxLength:
		return "max_length"
	default:
		return "unknown"
	}
}

// DecodeError carries the Kind of failure plus the chain of field names
// from outermost to innermost, e.g. "command.pdu" wrapping
// "short_message". Each layer of the codec wraps the error it received
// with its own field name via WrapField, so the chain can be walked with
// errors.Unwrap/errors.As without needing to parse a formatted string.
type DecodeError struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("smpp/pdu: %s: %s", e.Field, e.Kind)
	}
	return fmt.Sprintf("smpp/pdu: %s: %s", e.Field, e.Err)
}

// Unwrap lets errors.Is/errors.As/errors.Unwrap walk the chain.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError builds a leaf DecodeError (no wrapped cause).
func NewDecodeError(field string, kind Kind) error {
	return &DecodeError{Kind: kind, Field: field}
}

// WrapField tags err with field, preserving err's Kind if it was itself a
// *DecodeError, otherwise defaulting to KindUnexpectedEOF. This is how a
// struct decoder attributes an inner primitive's failure to the outer
// field name it was read for, building up a chain such as
// command.pdu → short_message.
func WrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	kind := KindUnexpectedEOF
	var de *DecodeError
	if errors.As(err, &de) {
		kind = de.Kind
	}
	return &DecodeError{
		Kind:  kind,
		Field: field,
		Err:   errors.WithMessage(err, field),
	}
}

// UnsupportedKey builds the error used when a discriminant is outside a
// closed set that has no Other(u) fallback.
func UnsupportedKey(field string, key interface{}) error {
	return &DecodeError{
		Kind:  KindUnsupportedKey,
		Field: field,
		Err:   errors.Errorf("unsupported key %v", key),
	}
}
