package pdu

import "github.com/pkg/errors"

// Tag is the two-byte TLV tag identifier. The set of tags SMPP v5.0
// defines is closed but not exhaustively typed below — only tags this
// package gives dedicated Go types to are named; every other tag value
// still frames correctly, decoding to an OtherValue that preserves its
// raw bytes (see DecodeTlv).
type Tag uint16

// SMPP v5.0 optional parameter tags.
const (
	TagDestAddrSubunit        Tag = 0x0005
	TagDestNetworkType        Tag = 0x0006
	TagDestBearerType         Tag = 0x0007
	TagDestTelematicsID       Tag = 0x0008
	TagSourceAddrSubunit      Tag = 0x000D
	TagSourceNetworkType      Tag = 0x000E
	TagSourceBearerType       Tag = 0x000F
	TagSourceTelematicsID     Tag = 0x0010
	TagQosTimeToLive          Tag = 0x0017
	TagPayloadType            Tag = 0x0019
	TagAdditionalStatusInfo   Tag = 0x001D
	TagReceiptedMessageID     Tag = 0x001E
	TagMsMsgWaitFacilities    Tag = 0x0030
	TagPrivacyIndicator       Tag = 0x0201
	TagSourceSubaddress       Tag = 0x0202
	TagDestSubaddress         Tag = 0x0203
	TagUserMessageReference   Tag = 0x0204
	TagUserResponseCode       Tag = 0x0205
	TagSourcePort             Tag = 0x020A
	TagDestinationPort        Tag = 0x020B
	TagSarMsgRefNum           Tag = 0x020C
	TagLanguageIndicator      Tag = 0x020D
	TagSarTotalSegments       Tag = 0x020E
	TagSarSegmentSeqnum       Tag = 0x020F
	TagScInterfaceVersion     Tag = 0x0210
	TagCallbackNumPresInd     Tag = 0x0302
	TagCallbackNumAtag        Tag = 0x0303
	TagNumberOfMessages       Tag = 0x0304
	TagCallbackNum            Tag = 0x0381
	TagDpfResult              Tag = 0x0420
	TagSetDpf                 Tag = 0x0421
	TagMsAvailabilityStatus   Tag = 0x0422
	TagNetworkErrorCode       Tag = 0x0423
	TagMessagePayload         Tag = 0x0424
	TagDeliveryFailureReason  Tag = 0x0425
	TagMoreMessagesToSend     Tag = 0x0426
	TagMessageState           Tag = 0x0427
	TagCongestionState        Tag = 0x0428
	TagUssdServiceOp          Tag = 0x0501
	TagBroadcastChannelInd    Tag = 0x0600
	TagBroadcastContentType   Tag = 0x0601
	TagBroadcastContentTypeInfo Tag = 0x0602
	TagBroadcastMessageClass  Tag = 0x0603
	TagBroadcastRepNum        Tag = 0x0604
	TagBroadcastFrequencyInterval Tag = 0x0605
	TagBroadcastAreaIdentifier Tag = 0x0606
	TagBroadcastErrorStatus   Tag = 0x0607
	TagBroadcastAreaSuccess   Tag = 0x0608
	TagBroadcastEndTime       Tag = 0x0609
	TagBroadcastServiceGroup  Tag = 0x060A
	TagBillingIdentification  Tag = 0x060B
	TagDisplayTime            Tag = 0x1201
	TagSmsSignal              Tag = 0x1203
	TagMsValidity             Tag = 0x1204
	TagAlertOnMessageDelivery Tag = 0x130C
	TagItsReplyType           Tag = 0x1380
	TagItsSessionInfo         Tag = 0x1383
)

var tagNames = map[Tag]string{
	TagDestAddrSubunit:            "dest_addr_subunit",
	TagDestNetworkType:            "dest_network_type",
	TagDestBearerType:             "dest_bearer_type",
	TagDestTelematicsID:           "dest_telematics_id",
	TagSourceAddrSubunit:          "source_addr_subunit",
	TagSourceNetworkType:          "source_network_type",
	TagSourceBearerType:           "source_bearer_type",
	TagSourceTelematicsID:         "source_telematics_id",
	TagQosTimeToLive:              "qos_time_to_live",
	TagPayloadType:                "payload_type",
	TagAdditionalStatusInfo:       "additional_status_info_text",
	TagReceiptedMessageID:         "receipted_message_id",
	TagMsMsgWaitFacilities:        "ms_msg_wait_facilities",
	TagPrivacyIndicator:           "privacy_indicator",
	TagSourceSubaddress:           "source_subaddress",
	TagDestSubaddress:             "dest_subaddress",
	TagUserMessageReference:       "user_message_reference",
	TagUserResponseCode:           "user_response_code",
	TagSourcePort:                 "source_port",
	TagDestinationPort:            "destination_port",
	TagSarMsgRefNum:               "sar_msg_ref_num",
	TagLanguageIndicator:          "language_indicator",
	TagSarTotalSegments:           "sar_total_segments",
	TagSarSegmentSeqnum:           "sar_segment_seqnum",
	TagScInterfaceVersion:         "sc_interface_version",
	TagCallbackNumPresInd:         "callback_num_pres_ind",
	TagCallbackNumAtag:            "callback_num_atag",
	TagNumberOfMessages:           "number_of_messages",
	TagCallbackNum:                "callback_num",
	TagDpfResult:                  "dpf_result",
	TagSetDpf:                     "set_dpf",
	TagMsAvailabilityStatus:       "ms_availability_status",
	TagNetworkErrorCode:           "network_error_code",
	TagMessagePayload:             "message_payload",
	TagDeliveryFailureReason:      "delivery_failure_reason",
	TagMoreMessagesToSend:         "more_messages_to_send",
	TagMessageState:               "message_state",
	TagCongestionState:            "congestion_state",
	TagUssdServiceOp:              "ussd_service_op",
	TagBroadcastChannelInd:        "broadcast_channel_indicator",
	TagBroadcastContentType:       "broadcast_content_type",
	TagBroadcastContentTypeInfo:   "broadcast_content_type_info",
	TagBroadcastMessageClass:      "broadcast_message_class",
	TagBroadcastRepNum:            "broadcast_rep_num",
	TagBroadcastFrequencyInterval: "broadcast_frequency_interval",
	TagBroadcastAreaIdentifier:    "broadcast_area_identifier",
	TagBroadcastErrorStatus:       "broadcast_error_status",
	TagBroadcastAreaSuccess:       "broadcast_area_success",
	TagBroadcastEndTime:           "broadcast_end_time",
	TagBroadcastServiceGroup:      "broadcast_service_group",
	TagBillingIdentification:      "billing_identification",
	TagDisplayTime:                "display_time",
	TagSmsSignal:                  "sms_signal",
	TagMsValidity:                 "ms_validity",
	TagAlertOnMessageDelivery:     "alert_on_message_delivery",
	TagItsReplyType:               "its_reply_type",
	TagItsSessionInfo:             "its_session_info",
}

// String renders the known mnemonic, or Other(0x...) for an unrecognized
// tag.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "Other(0x" + hex16(uint16(t)) + ")"
}

func hex16(v uint16) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{
		digits[(v>>12)&0xF], digits[(v>>8)&0xF],
		digits[(v>>4)&0xF], digits[v&0xF],
	})
}

// TlvValue is the sum type of all TLV payload kinds. Decoding dispatches
// on Tag; a tag this package doesn't give a dedicated Go type decodes
// into OtherValue, preserving its bytes losslessly.
type TlvValue interface {
	// Length returns the encoded byte length of the value (equal to the
	// TLV's value_length field).
	Length() int
	// Encode writes the value's bytes (not the tag/length header) into
	// dst, which must be at least Length() bytes.
	Encode(dst []byte) (int, error)
}

// OtherValue is the catch-all for tags without a dedicated Go type.
type OtherValue struct {
	RawTag Tag
	Value  AnyOctetString
}

func (o OtherValue) Length() int                      { return len(o.Value) }
func (o OtherValue) Encode(dst []byte) (int, error)    { return o.Value.Encode(dst) }

// Uint8Value is a single-byte TLV payload (ms_availability_status,
// sar_total_segments, sar_segment_seqnum, dpf_result, set_dpf, ...).
type Uint8Value uint8

func (v Uint8Value) Length() int { return 1 }
func (v Uint8Value) Encode(dst []byte) (int, error) {
	dst[0] = byte(v)
	return 1, nil
}

// Uint16Value is a two-byte big-endian TLV payload (user_message_reference,
// sar_msg_ref_num, source_port, destination_port, ...).
type Uint16Value uint16

func (v Uint16Value) Length() int { return 2 }
func (v Uint16Value) Encode(dst []byte) (int, error) {
	dst[0] = byte(v >> 8)
	dst[1] = byte(v)
	return 2, nil
}

// Uint32Value is a four-byte big-endian TLV payload (qos_time_to_live).
type Uint32Value uint32

func (v Uint32Value) Length() int { return 4 }
func (v Uint32Value) Encode(dst []byte) (int, error) {
	dst[0] = byte(v >> 24)
	dst[1] = byte(v >> 16)
	dst[2] = byte(v >> 8)
	dst[3] = byte(v)
	return 4, nil
}

// BytesValue is a raw byte payload whose internal length, if any, comes
// entirely from the enclosing TLV's value_length (message_payload,
// callback_num_atag, broadcast_area_identifier, ...).
type BytesValue []byte

func (v BytesValue) Length() int { return len(v) }
func (v BytesValue) Encode(dst []byte) (int, error) {
	return copy(dst, v), nil
}

// CStringValue is a NUL-terminated string TLV payload (receipted_message_id,
// additional_status_info_text) — unlike mandatory C-octet strings it carries no
// independent min/max, since value_length already bounds it.
type CStringValue string

func (v CStringValue) Length() int { return len(v) + 1 }
func (v CStringValue) Encode(dst []byte) (int, error) {
	n := copy(dst, []byte(v))
	dst[n] = 0x00
	return n + 1, nil
}

// MsMsgWaitFacilitiesValue, CallbackNumPresIndValue,
// NetworkErrorCodeValue, ItsSessionInfoValue, BroadcastContentTypeValue,
// and BroadcastFrequencyIntervalValue wrap the bit-packed composites from
// bitfields.go for their corresponding TLV tags.

type MsMsgWaitFacilitiesValue struct{ MsMsgWaitFacilities }

func (v MsMsgWaitFacilitiesValue) Length() int { return 1 }
func (v MsMsgWaitFacilitiesValue) Encode(dst []byte) (int, error) {
	dst[0] = v.Byte()
	return 1, nil
}

type CallbackNumPresIndValue struct{ CallbackNumPresInd }

func (v CallbackNumPresIndValue) Length() int { return 1 }
func (v CallbackNumPresIndValue) Encode(dst []byte) (int, error) {
	dst[0] = v.Byte()
	return 1, nil
}

type NetworkErrorCodeValue struct{ NetworkErrorCode }

func (v NetworkErrorCodeValue) Length() int { return 3 }
func (v NetworkErrorCodeValue) Encode(dst []byte) (int, error) {
	b := v.Bytes()
	return copy(dst, b[:]), nil
}

type ItsSessionInfoValue struct{ ItsSessionInfo }

func (v ItsSessionInfoValue) Length() int { return 2 }
func (v ItsSessionInfoValue) Encode(dst []byte) (int, error) {
	b := v.Bytes()
	return copy(dst, b[:]), nil
}

type BroadcastContentTypeValue struct{ BroadcastContentType }

func (v BroadcastContentTypeValue) Length() int { return 3 }
func (v BroadcastContentTypeValue) Encode(dst []byte) (int, error) {
	b := v.Bytes()
	return copy(dst, b[:]), nil
}

type BroadcastFrequencyIntervalValue struct{ BroadcastFrequencyInterval }

func (v BroadcastFrequencyIntervalValue) Length() int { return 3 }
func (v BroadcastFrequencyIntervalValue) Encode(dst []byte) (int, error) {
	b := v.Bytes()
	return copy(dst, b[:]), nil
}

// tlvDecoder decodes a TLV's raw value bytes (already sliced to
// value_length) into its typed TlvValue.
type tlvDecoder func(raw []byte) (TlvValue, error)

func decodeUint8(raw []byte) (TlvValue, error) {
	if len(raw) != 1 {
		return nil, errors.Errorf("expected 1 byte, got %d", len(raw))
	}
	return Uint8Value(raw[0]), nil
}

func decodeUint16(raw []byte) (TlvValue, error) {
	if len(raw) != 2 {
		return nil, errors.Errorf("expected 2 bytes, got %d", len(raw))
	}
	return Uint16Value(uint16(raw[0])<<8 | uint16(raw[1])), nil
}

func decodeUint32(raw []byte) (TlvValue, error) {
	if len(raw) != 4 {
		return nil, errors.Errorf("expected 4 bytes, got %d", len(raw))
	}
	return Uint32Value(uint32(raw[0])<<24 | uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3])), nil
}

func decodeBytes(raw []byte) (TlvValue, error) {
	out := make([]byte, len(raw))
	copy(out, raw)
	return BytesValue(out), nil
}

func decodeCString(raw []byte) (TlvValue, error) {
	if len(raw) == 0 || raw[len(raw)-1] != 0 {
		// Tolerate TLVs without a trailing NUL: some SMSCs omit it.
		return CStringValue(string(raw)), nil
	}
	return CStringValue(string(raw[:len(raw)-1])), nil
}

func decodeMsMsgWaitFacilities(raw []byte) (TlvValue, error) {
	if len(raw) != 1 {
		return nil, errors.Errorf("expected 1 byte, got %d", len(raw))
	}
	return MsMsgWaitFacilitiesValue{ParseMsMsgWaitFacilities(raw[0])}, nil
}

func decodeCallbackNumPresInd(raw []byte) (TlvValue, error) {
	if len(raw) != 1 {
		return nil, errors.Errorf("expected 1 byte, got %d", len(raw))
	}
	return CallbackNumPresIndValue{ParseCallbackNumPresInd(raw[0])}, nil
}

func decodeNetworkErrorCode(raw []byte) (TlvValue, error) {
	if len(raw) != 3 {
		return nil, errors.Errorf("expected 3 bytes, got %d", len(raw))
	}
	return NetworkErrorCodeValue{ParseNetworkErrorCode([3]byte{raw[0], raw[1], raw[2]})}, nil
}

func decodeItsSessionInfo(raw []byte) (TlvValue, error) {
	if len(raw) != 2 {
		return nil, errors.Errorf("expected 2 bytes, got %d", len(raw))
	}
	return ItsSessionInfoValue{ParseItsSessionInfo([2]byte{raw[0], raw[1]})}, nil
}

func decodeBroadcastContentType(raw []byte) (TlvValue, error) {
	if len(raw) != 3 {
		return nil, errors.Errorf("expected 3 bytes, got %d", len(raw))
	}
	return BroadcastContentTypeValue{ParseBroadcastContentType([3]byte{raw[0], raw[1], raw[2]})}, nil
}

func decodeBroadcastFrequencyInterval(raw []byte) (TlvValue, error) {
	if len(raw) != 3 {
		return nil, errors.Errorf("expected 3 bytes, got %d", len(raw))
	}
	return BroadcastFrequencyIntervalValue{ParseBroadcastFrequencyInterval([3]byte{raw[0], raw[1], raw[2]})}, nil
}

// tlvDispatch maps known tags to their payload decoder. Tags absent from
// this table decode to OtherValue.
var tlvDispatch = map[Tag]tlvDecoder{
	TagDestAddrSubunit:            decodeUint8,
	TagDestNetworkType:            decodeUint8,
	TagDestBearerType:             decodeUint8,
	TagDestTelematicsID:           decodeUint16,
	TagSourceAddrSubunit:          decodeUint8,
	TagSourceNetworkType:          decodeUint8,
	TagSourceBearerType:           decodeUint8,
	TagSourceTelematicsID:         decodeUint16,
	TagQosTimeToLive:              decodeUint32,
	TagPayloadType:                decodeUint8,
	TagAdditionalStatusInfo:       decodeCString,
	TagReceiptedMessageID:         decodeCString,
	TagMsMsgWaitFacilities:        decodeMsMsgWaitFacilities,
	TagPrivacyIndicator:           decodeUint8,
	TagSourceSubaddress:           decodeBytes,
	TagDestSubaddress:             decodeBytes,
	TagUserMessageReference:       decodeUint16,
	TagUserResponseCode:           decodeUint8,
	TagSourcePort:                 decodeUint16,
	TagDestinationPort:            decodeUint16,
	TagSarMsgRefNum:               decodeUint16,
	TagLanguageIndicator:          decodeUint8,
	TagSarTotalSegments:           decodeUint8,
	TagSarSegmentSeqnum:           decodeUint8,
	TagScInterfaceVersion:         decodeUint8,
	TagCallbackNumPresInd:         decodeCallbackNumPresInd,
	TagCallbackNumAtag:            decodeBytes,
	TagNumberOfMessages:           decodeUint8,
	TagCallbackNum:                decodeBytes,
	TagDpfResult:                  decodeUint8,
	TagSetDpf:                     decodeUint8,
	TagMsAvailabilityStatus:       decodeUint8,
	TagNetworkErrorCode:           decodeNetworkErrorCode,
	TagMessagePayload:             decodeBytes,
	TagDeliveryFailureReason:      decodeUint8,
	TagMoreMessagesToSend:         decodeUint8,
	TagMessageState:               decodeUint8,
	TagCongestionState:            decodeUint8,
	TagUssdServiceOp:              decodeUint8,
	TagBroadcastChannelInd:        decodeUint8,
	TagBroadcastContentType:       decodeBroadcastContentType,
	TagBroadcastContentTypeInfo:   decodeBytes,
	TagBroadcastMessageClass:      decodeUint8,
	TagBroadcastRepNum:            decodeUint16,
	TagBroadcastFrequencyInterval: decodeBroadcastFrequencyInterval,
	TagBroadcastAreaIdentifier:    decodeBytes,
	TagBroadcastErrorStatus:       decodeUint32,
	TagBroadcastAreaSuccess:       decodeUint8,
	TagBroadcastEndTime:           decodeBytes,
	TagBroadcastServiceGroup:      decodeBytes,
	TagBillingIdentification:     decodeBytes,
	TagDisplayTime:                decodeUint8,
	TagSmsSignal:                  decodeUint16,
	TagMsValidity:                 decodeUint8,
	TagAlertOnMessageDelivery:     decodeUint8,
	TagItsReplyType:               decodeUint8,
	TagItsSessionInfo:             decodeItsSessionInfo,
}

func decodeTlvValue(tag Tag, raw []byte) (TlvValue, error) {
	if dec, ok := tlvDispatch[tag]; ok {
		v, err := dec(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "tlv %s", tag)
		}
		return v, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return OtherValue{RawTag: tag, Value: out}, nil
}

// Tlv is one Tag-Length-Value optional parameter.
type Tlv struct {
	Tag         Tag
	ValueLength uint16
	Value       TlvValue // nil iff ValueLength == 0
}

// NewTlv builds a Tlv from a tag and a pre-built value.
func NewTlv(tag Tag, value TlvValue) Tlv {
	t := Tlv{Tag: tag, Value: value}
	if value != nil {
		t.ValueLength = uint16(value.Length())
	}
	return t
}

// Length returns the total encoded length of the TLV, header included.
func (t Tlv) Length() int {
	return 4 + int(t.ValueLength)
}

// Encode writes the tag, length, and value into dst.
func (t Tlv) Encode(dst []byte) (int, error) {
	dst[0] = byte(t.Tag >> 8)
	dst[1] = byte(t.Tag)
	dst[2] = byte(t.ValueLength >> 8)
	dst[3] = byte(t.ValueLength)
	if t.Value == nil {
		return 4, nil
	}
	n, err := t.Value.Encode(dst[4:])
	return 4 + n, err
}

// DecodeTlv reads one TLV from c, dispatching its value decode on tag.
func DecodeTlv(c *cursor) (Tlv, error) {
	tagRaw, err := c.Uint16("tag")
	if err != nil {
		return Tlv{}, WrapField("tlv", err)
	}
	tag := Tag(tagRaw)
	length, err := c.Uint16("value_length")
	if err != nil {
		return Tlv{}, WrapField("tlv."+tag.String(), err)
	}
	if length == 0 {
		return Tlv{Tag: tag}, nil
	}
	raw, err := c.Exactly("tlv."+tag.String()+".value", int(length))
	if err != nil {
		return Tlv{}, err
	}
	value, err := decodeTlvValue(tag, raw)
	if err != nil {
		return Tlv{}, WrapField("tlv."+tag.String()+".value", err)
	}
	return Tlv{Tag: tag, ValueLength: length, Value: value}, nil
}

// DecodeTlvs reads TLVs from c until it is exhausted, preserving order
// and duplicate tags exactly as received.
func DecodeTlvs(c *cursor) ([]Tlv, error) {
	var out []Tlv
	for c.Len() > 0 {
		tlv, err := DecodeTlv(c)
		if err != nil {
			return out, err
		}
		out = append(out, tlv)
	}
	return out, nil
}

// EncodeTlvs appends the wire encoding of every TLV in order to dst.
func EncodeTlvs(dst []byte, tlvs []Tlv) []byte {
	for _, t := range tlvs {
		buf := make([]byte, t.Length())
		t.Encode(buf) //nolint:errcheck // fixed-size buffer, Encode cannot fail here
		dst = append(dst, buf...)
	}
	return dst
}

// TlvsLength returns the total encoded byte length of tlvs.
func TlvsLength(tlvs []Tlv) int {
	n := 0
	for _, t := range tlvs {
		n += t.Length()
	}
	return n
}

// Get returns the first TLV in tlvs matching tag, if any.
func Get(tlvs []Tlv, tag Tag) (Tlv, bool) {
	for _, t := range tlvs {
		if t.Tag == tag {
			return t, true
		}
	}
	return Tlv{}, false
}

// SingleTlv models a PDU field that is exactly one optional TLV of a
// fixed, known tag (AlertNotification.ms_availability_status,
// BindTransmitterResp.sc_interface_version,
// QueryBroadcastSm.user_message_reference, ...). DecodeSingleTlv enforces
// the tag; a mismatched tag is a KindUnsupportedKey error rather than
// silently accepting any tag, since a single-TLV field has no Other(u)
// fallback in the distilled spec.
func DecodeSingleTlv(c *cursor, field string, want Tag) (Tlv, bool, error) {
	if c.Len() == 0 {
		return Tlv{}, false, nil
	}
	tlv, err := DecodeTlv(c)
	if err != nil {
		return Tlv{}, false, err
	}
	if tlv.Tag != want {
		return Tlv{}, false, UnsupportedKey(field, tlv.Tag)
	}
	return tlv, true, nil
}
