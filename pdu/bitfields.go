package pdu

// This file models the SMPP wire format's bit-packed single-byte and
// multi-byte composites: esm_class, registered_delivery, and the TLV
// sub-structures whose bits each carry independent meaning. Each is
// modeled the way the teacher's EsmClass/RegisteredDelivery already are —
// a small record of plain int sub-fields plus Byte()/ParseXxx(byte)
// conversions — generalized here to also preserve unknown bit patterns
// instead of silently masking them away, matching the distilled spec's
// "Other(u) catch-all, round-trip is total" requirement for bit-packed
// composites.

// EsmClass carries the esm_class byte's three independent sub-fields.
// Bits 5 and 2 are read twice, once as Type (GSM/ANSI-41 message type)
// and once as Ansi41Specific, because the SMPP v5.0 spec overlaps their
// definitions — see the "Open Question decisions" in DESIGN.md: both
// readings are kept, and re-encoding must reproduce the original byte.
type EsmClass struct {
	Mode           int
	Type           int
	Ansi41Specific int
	GsmFeatures    int
}

// Byte packs EsmClass back into its wire byte. Mode occupies bits 1-0,
// Type/Ansi41Specific share bits 5-2 (kept equal on any value this package
// produces), and GsmFeatures occupies bits 7-6.
func (e EsmClass) Byte() byte {
	b := byte(e.Mode) & 0x03
	b |= byte(e.Ansi41Specific&0x0F) << 2
	b |= byte(e.GsmFeatures&0x03) << 6
	return b
}

// ParseEsmClass splits a wire byte into its overlapping sub-fields.
func ParseEsmClass(b byte) EsmClass {
	return EsmClass{
		Mode:           int(b & 0x03),
		Type:           int((b >> 2) & 0x0F),
		Ansi41Specific: int((b >> 2) & 0x0F),
		GsmFeatures:    int((b >> 6) & 0x03),
	}
}

// esm_class messaging mode values (bits 1-0).
const (
	ModeDefault         = 0x0
	ModeDatagram        = 0x1
	ModeForward         = 0x2
	ModeStoreAndForward = 0x3
)

// esm_class message type values (bits 5-2).
const (
	TypeDefault            = 0x00
	TypeDeliveryReceipt    = 0x01
	TypeDeliveryAck        = 0x02
	TypeManualUserAck      = 0x04
	TypeConversationAbort  = 0x06 // GSM only
	TypeIntermediateNotify = 0x08
)

// esm_class GSM network-specific feature values (bits 7-6).
const (
	FeatureNone              = 0x0
	FeatureUDHI              = 0x1
	FeatureReplyPath         = 0x2
	FeatureUDHIAndReplyPath  = 0x3
)

// RegisteredDelivery requests an SMSC delivery receipt and/or SME
// originated acknowledgements. Reserved carries bits 7-5 verbatim so
// decode/encode round-trips even when an SMSC sets them.
type RegisteredDelivery struct {
	Receipt           int
	SMEAck            int
	InterNotification int
	Reserved          byte
}

// Byte packs RegisteredDelivery back into its wire byte: Receipt in bits
// 1-0, SMEAck in bits 3-2, InterNotification in bit 4, Reserved in bits
// 7-5.
func (rd RegisteredDelivery) Byte() byte {
	b := byte(rd.Receipt) & 0x03
	b |= (byte(rd.SMEAck) & 0x03) << 2
	b |= (byte(rd.InterNotification) & 0x01) << 4
	b |= rd.Reserved & 0xE0
	return b
}

// ParseRegisteredDelivery splits a wire byte into its sub-fields.
func ParseRegisteredDelivery(b byte) RegisteredDelivery {
	return RegisteredDelivery{
		Receipt:           int(b & 0x03),
		SMEAck:            int((b >> 2) & 0x03),
		InterNotification: int((b >> 4) & 0x01),
		Reserved:          b & 0xE0,
	}
}

// registered_delivery receipt request values (bits 1-0).
const (
	ReceiptNone            = 0x0
	ReceiptOnSuccessOrFail = 0x1
	ReceiptOnFailure       = 0x2
)

// registered_delivery SME originated acknowledgement values (bits 3-2).
const (
	SMEAckNone   = 0x0
	SMEAckDelivery = 0x1
	SMEAckManual = 0x2
	SMEAckBoth   = 0x3
)

// ItsSessionInfo (tag 0x1383) carries an 8-bit session number in its
// first byte; the second byte holds a 7-bit sequence number in bits 7-1
// and the end-of-session indicator in bit 0.
type ItsSessionInfo struct {
	SessionNumber int
	SequenceNumber int
	EndOfSession  bool
}

// Bytes packs ItsSessionInfo into its two-byte wire form.
func (i ItsSessionInfo) Bytes() [2]byte {
	var out [2]byte
	out[0] = byte(i.SessionNumber)
	seq := byte(i.SequenceNumber&0x7F) << 1
	if i.EndOfSession {
		seq |= 0x01
	}
	out[1] = seq
	return out
}

// ParseItsSessionInfo splits the two wire bytes of an its_session_info
// TLV value.
func ParseItsSessionInfo(b [2]byte) ItsSessionInfo {
	return ItsSessionInfo{
		SessionNumber:  int(b[0]),
		SequenceNumber: int(b[1] >> 1),
		EndOfSession:   b[1]&0x01 != 0,
	}
}

// CallbackNumPresInd (tag 0x0302) describes presentation and screening
// indicators for a callback number.
type CallbackNumPresInd struct {
	Presentation int  // bits 1-0
	Screening    int  // bits 3-2
	Reserved     byte // bits 7-4, carried verbatim
}

// Byte packs CallbackNumPresInd into its wire byte.
func (c CallbackNumPresInd) Byte() byte {
	b := byte(c.Presentation) & 0x03
	b |= (byte(c.Screening) & 0x03) << 2
	b |= c.Reserved & 0xF0
	return b
}

// ParseCallbackNumPresInd splits the wire byte.
func ParseCallbackNumPresInd(b byte) CallbackNumPresInd {
	return CallbackNumPresInd{
		Presentation: int(b & 0x03),
		Screening:    int((b >> 2) & 0x03),
		Reserved:     b & 0xF0,
	}
}

// MsMsgWaitFacilities (tag 0x0030) indicates a message-waiting indicator
// setting on an MS.
type MsMsgWaitFacilities struct {
	Active     bool // bit 7
	IndicatorType int // bits 1-0
	Reserved   byte // bits 6-2, carried verbatim
}

// Byte packs MsMsgWaitFacilities into its wire byte.
func (m MsMsgWaitFacilities) Byte() byte {
	b := byte(m.IndicatorType) & 0x03
	if m.Active {
		b |= 0x80
	}
	b |= m.Reserved & 0x7C
	return b
}

// ParseMsMsgWaitFacilities splits the wire byte.
func ParseMsMsgWaitFacilities(b byte) MsMsgWaitFacilities {
	return MsMsgWaitFacilities{
		Active:        b&0x80 != 0,
		IndicatorType: int(b & 0x03),
		Reserved:      b & 0x7C,
	}
}

// BroadcastContentType (tag 0x0601, part of broadcast PDUs) names a
// network type plus a service-specific content type.
type BroadcastContentType struct {
	NetworkType int // byte 0
	ContentType int // bytes 1-2, big-endian
}

// Bytes packs BroadcastContentType into its 3-byte wire form.
func (b BroadcastContentType) Bytes() [3]byte {
	var out [3]byte
	out[0] = byte(b.NetworkType)
	out[1] = byte(b.ContentType >> 8)
	out[2] = byte(b.ContentType)
	return out
}

// ParseBroadcastContentType splits the 3 wire bytes.
func ParseBroadcastContentType(b [3]byte) BroadcastContentType {
	return BroadcastContentType{
		NetworkType: int(b[0]),
		ContentType: int(b[1])<<8 | int(b[2]),
	}
}

// BroadcastFrequencyInterval (tag 0x0605) names a unit plus a count of
// units between broadcast repetitions.
type BroadcastFrequencyInterval struct {
	Unit  int // byte 0
	Value int // bytes 1-2, big-endian
}

// Bytes packs BroadcastFrequencyInterval into its 3-byte wire form.
func (f BroadcastFrequencyInterval) Bytes() [3]byte {
	var out [3]byte
	out[0] = byte(f.Unit)
	out[1] = byte(f.Value >> 8)
	out[2] = byte(f.Value)
	return out
}

// ParseBroadcastFrequencyInterval splits the 3 wire bytes.
func ParseBroadcastFrequencyInterval(b [3]byte) BroadcastFrequencyInterval {
	return BroadcastFrequencyInterval{
		Unit:  int(b[0]),
		Value: int(b[1])<<8 | int(b[2]),
	}
}

// broadcast_frequency_interval unit values.
const (
	FreqUnitSeconds = 0x00
	FreqUnitMinutes = 0x01
	FreqUnitHours   = 0x02
	FreqUnitDays    = 0x03
	FreqUnitWeeks   = 0x04
	FreqUnitMonths  = 0x05
	FreqUnitYears   = 0x06
)

// BroadcastRepNum (tag 0x0604) is a plain big-endian uint16 count of
// broadcast repetitions; it is not bit-packed but is included here
// alongside its broadcast-family siblings for discoverability.
type BroadcastRepNum uint16

// NetworkErrorCode (tag 0x0423) names the network type that generated an
// error plus that network's own error code.
type NetworkErrorCode struct {
	NetworkType int // byte 0
	ErrorCode   int // bytes 1-2, big-endian
}

// Bytes packs NetworkErrorCode into its 3-byte wire form.
func (n NetworkErrorCode) Bytes() [3]byte {
	var out [3]byte
	out[0] = byte(n.NetworkType)
	out[1] = byte(n.ErrorCode >> 8)
	out[2] = byte(n.ErrorCode)
	return out
}

// ParseNetworkErrorCode splits the 3 wire bytes.
func ParseNetworkErrorCode(b [3]byte) NetworkErrorCode {
	return NetworkErrorCode{
		NetworkType: int(b[0]),
		ErrorCode:   int(b[1])<<8 | int(b[2]),
	}
}

// network_error_code network type values.
const (
	NetworkTypeAnsi136  = 0x01
	NetworkTypeIS95     = 0x02
	NetworkTypeGSM      = 0x03
	NetworkTypeANSI136G = 0x04
	NetworkTypeCodeError = 0x05
)

// UserMessageReference (tag 0x0204) is a plain big-endian uint16, not a
// bit-packed composite — the underlying SMPP spec defines no internal
// bit structure for it, unlike its neighbors in this file.
type UserMessageReference uint16
