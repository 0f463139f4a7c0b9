package pdu

import "github.com/pkg/errors"

// UDH8 builds an 8-bit reference concatenated-SMS User Data Header:
// [0x05, 0x00, 0x03, ref, total, part] (6 bytes), for embedding at the
// front of a segment's short_message/message_payload content.
func UDH8(ref uint8, total, part uint8) ([]byte, error) {
	if err := validateConcat(int(total), int(part)); err != nil {
		return nil, err
	}
	return []byte{0x05, 0x00, 0x03, ref, total, part}, nil
}

// UDH16 builds a 16-bit reference concatenated-SMS User Data Header:
// [0x06, 0x08, 0x04, ref_hi, ref_lo, total, part] (7 bytes).
func UDH16(ref uint16, total, part uint8) ([]byte, error) {
	if err := validateConcat(int(total), int(part)); err != nil {
		return nil, err
	}
	return []byte{0x06, 0x08, 0x04, byte(ref >> 8), byte(ref), total, part}, nil
}

func validateConcat(total, part int) error {
	if total == 0 {
		return errors.New("smpp/pdu: udh total segments must be > 0")
	}
	if part == 0 {
		return errors.New("smpp/pdu: udh part number must be > 0")
	}
	if part > total {
		return errors.Errorf("smpp/pdu: udh part %d exceeds total %d", part, total)
	}
	return nil
}
