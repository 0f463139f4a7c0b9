// Package pdu implements the SMPP v5.0 wire codec: PDU bodies, their
// bit-packed sub-structures, the TLV optional-parameter model, and the
// strict-length string primitives the wire format is built from. The
// root smpp package layers Command framing (the 16-byte header plus
// length-prefixed stream codec) on top of this package.
package pdu

import "errors"

// PDU is the body of one SMPP command. Every command variant implements
// it; CommandID reports which one. Decode receives the command body
// only (header already stripped) — several PDUs (SubmitSm, DeliverSm,
// DataSm, SubmitMulti, BroadcastSm, bind responses carrying a non-zero
// status) rely on the slice's length alone to decide whether a trailing
// TLV vector or optional body is present at all.
type PDU interface {
	CommandID() CommandID
	// Length returns the encoded byte length of the PDU body (header
	// excluded).
	Length() int
	// Encode writes the PDU body into dst, which must be at least
	// Length() bytes, and returns the number of bytes written.
	Encode(dst []byte) (int, error)
	// Decode reads the PDU body from src and returns the number of bytes
	// consumed.
	Decode(src []byte) (int, error)
}

// NewPDU returns a zero-valued PDU body for id, ready to Decode into, or
// an Other body preserving id if it is outside the known command set.
func NewPDU(id CommandID) PDU {
	switch id {
	case GenericNackID:
		return &GenericNack{}
	case BindReceiverID:
		return &BindReceiver{}
	case BindReceiverRespID:
		return &BindReceiverResp{}
	case BindTransmitterID:
		return &BindTransmitter{}
	case BindTransmitterRespID:
		return &BindTransmitterResp{}
	case BindTransceiverID:
		return &BindTransceiver{}
	case BindTransceiverRespID:
		return &BindTransceiverResp{}
	case OutbindID:
		return &Outbind{}
	case EnquireLinkID:
		return &EnquireLink{}
	case EnquireLinkRespID:
		return &EnquireLinkResp{}
	case UnbindID:
		return &Unbind{}
	case UnbindRespID:
		return &UnbindResp{}
	case QuerySmID:
		return &QuerySm{}
	case QuerySmRespID:
		return &QuerySmResp{}
	case SubmitSmID:
		return &SubmitSm{}
	case SubmitSmRespID:
		return &SubmitSmResp{}
	case DeliverSmID:
		return &DeliverSm{}
	case DeliverSmRespID:
		return &DeliverSmResp{}
	case DataSmID:
		return &DataSm{}
	case DataSmRespID:
		return &DataSmResp{}
	case SubmitMultiID:
		return &SubmitMulti{}
	case SubmitMultiRespID:
		return &SubmitMultiResp{}
	case CancelSmID:
		return &CancelSm{}
	case CancelSmRespID:
		return &CancelSmResp{}
	case ReplaceSmID:
		return &ReplaceSm{}
	case ReplaceSmRespID:
		return &ReplaceSmResp{}
	case BroadcastSmID:
		return &BroadcastSm{}
	case BroadcastSmRespID:
		return &BroadcastSmResp{}
	case QueryBroadcastSmID:
		return &QueryBroadcastSm{}
	case QueryBroadcastSmRespID:
		return &QueryBroadcastSmResp{}
	case CancelBroadcastSmID:
		return &CancelBroadcastSm{}
	case CancelBroadcastSmRespID:
		return &CancelBroadcastSmResp{}
	case AlertNotificationID:
		return &AlertNotification{}
	default:
		return &Other{ID: id}
	}
}

// Other is the PDU body for a command_id outside the known set. Its raw
// bytes are preserved verbatim so an unrecognized command still frames
// without losing data.
type Other struct {
	ID   CommandID
	Body AnyOctetString
}

// CommandID implements PDU.
func (o *Other) CommandID() CommandID { return o.ID }

// Length implements PDU.
func (o *Other) Length() int { return len(o.Body) }

// Encode implements PDU.
func (o *Other) Encode(dst []byte) (int, error) {
	return copy(dst, o.Body), nil
}

// Decode implements PDU.
func (o *Other) Decode(src []byte) (int, error) {
	o.Body = append(AnyOctetString(nil), src...)
	return len(src), nil
}

// SeparateUDH splits content into its leading User Data Header and the
// remaining message text, per the UDHL byte (content[0]) giving the
// header's length excluding itself.
func SeparateUDH(content []byte) (udh, rest []byte, err error) {
	if len(content) == 0 {
		return nil, content, errors.New("smpp/pdu: empty content has no udh")
	}
	l := int(content[0])
	if l >= len(content) {
		return nil, content, errors.New("smpp/pdu: udh length exceeds content")
	}
	return content[:l+1], content[l+1:], nil
}
