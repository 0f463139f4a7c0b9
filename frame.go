package smpp

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"

	"github.com/smppcodec/smpp/pdu"
)

// Unlimited disables Framer's upper command_length bound when passed to
// WithMaxLength's max, or returned from MaxLength on a Framer built with
// WithUnlimitedLength.
const Unlimited = -1

// Framer decodes and encodes the length-prefixed SMPP command stream: a
// 4-byte big-endian command_length followed by that many bytes of
// Command. It holds no buffer of its own — callers own the byte slice
// and advance it by the consumed count Decode reports.
type Framer struct {
	maxLength int
	log       logrus.FieldLogger
}

type framerOpts struct {
	maxLength int
	log       logrus.FieldLogger
}

// FramerOption configures a Framer built by NewFramer.
type FramerOption func(*framerOpts)

// WithMaxLength overrides the default 8192-byte maximum command_length.
func WithMaxLength(max int) FramerOption {
	return func(o *framerOpts) {
		o.maxLength = max
	}
}

// WithUnlimitedLength disables the upper command_length bound entirely.
func WithUnlimitedLength() FramerOption {
	return func(o *framerOpts) {
		o.maxLength = Unlimited
	}
}

// WithLogger attaches a logger that receives one structured entry per
// frame discarded for a bounds violation (command_length, max). A nil
// logger, the default, disables this diagnostic entirely — Decode still
// returns the error either way.
func WithLogger(log logrus.FieldLogger) FramerOption {
	return func(o *framerOpts) {
		o.log = log
	}
}

// NewFramer builds a Framer with the given options, defaulting to
// pdu.MaxCommandLength and no diagnostic logger.
func NewFramer(opts ...FramerOption) *Framer {
	o := framerOpts{maxLength: pdu.MaxCommandLength}
	for _, opt := range opts {
		opt(&o)
	}
	return &Framer{maxLength: o.maxLength, log: o.log}
}

// MaxLength returns the configured maximum command_length, or Unlimited.
func (f *Framer) MaxLength() int {
	return f.maxLength
}

// Encode appends cmd's wire encoding to dst and returns the result.
func (f *Framer) Encode(dst []byte, cmd Command) ([]byte, error) {
	total := cmd.Length()
	start := len(dst)
	dst = append(dst, make([]byte, total)...)
	if _, err := cmd.Encode(dst[start:]); err != nil {
		return dst[:start], err
	}
	return dst, nil
}

// Decode attempts to decode exactly one Command from the front of buf.
// ok is false with a nil err when buf doesn't yet hold a full frame
// ("need more"); consumed is always the number of bytes to advance buf
// by on success. A bounds violation (command_length < 16, or above the
// configured maximum) is a terminal error for that frame — the caller
// should discard and resync rather than retry with more bytes.
func (f *Framer) Decode(buf []byte) (cmd Command, consumed int, ok bool, err error) {
	if len(buf) < 4 {
		return Command{}, 0, false, nil
	}
	length := int(binary.BigEndian.Uint32(buf[0:4]))
	if length < 16 {
		f.logDiscard(length)
		return Command{}, 0, false, pdu.NewDecodeError("command_length", pdu.KindMinLength)
	}
	if f.maxLength != Unlimited && length > f.maxLength {
		f.logDiscard(length)
		return Command{}, 0, false, pdu.NewDecodeError("command_length", pdu.KindMaxLength)
	}
	if len(buf) < length {
		return Command{}, 0, false, nil
	}
	c, err := decodeCommand(buf[4:length])
	if err != nil {
		return Command{}, 0, false, err
	}
	return c, length, true, nil
}

func (f *Framer) logDiscard(length int) {
	if f.log == nil {
		return
	}
	f.log.WithFields(logrus.Fields{
		"command_length": length,
		"max":            f.maxLength,
	}).Warn("smpp: discarding frame outside command_length bounds")
}
