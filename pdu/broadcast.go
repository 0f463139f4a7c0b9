package pdu

import "time"

// BroadcastSm submits a message for broadcast distribution over one or
// more broadcast areas. The area, content-type, repetition, and
// frequency parameters are carried as TLVs (see
// BroadcastContentTypeValue, BroadcastFrequencyIntervalValue,
// BroadcastRepNum's Uint16Value) rather than mandatory fields, matching
// how SMPP v5.0 layers the broadcast operations on top of the submit_sm
// mandatory-field shape.
type BroadcastSm struct {
	ServiceType          string
	SourceAddrTon        uint8
	SourceAddrNpi        uint8
	SourceAddr           string
	MessageID            string
	PriorityFlag         uint8
	ScheduleDeliveryTime time.Time
	ValidityPeriod       time.Time
	ReplaceIfPresentFlag uint8
	DataCoding           uint8
	SmDefaultMsgID       uint8
	Tlvs                 []Tlv
}

// CommandID implements PDU.
func (p *BroadcastSm) CommandID() CommandID { return BroadcastSmID }

// Length implements PDU.
func (p *BroadcastSm) Length() int {
	return COctetStringLength(p.ServiceType) + 2 + COctetStringLength(p.SourceAddr) +
		COctetStringLength(p.MessageID) + 1 +
		finalDateLength(p.ScheduleDeliveryTime) + finalDateLength(p.ValidityPeriod) +
		1 + 1 + 1 + TlvsLength(p.Tlvs)
}

// Encode implements PDU.
func (p *BroadcastSm) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.ServiceType))
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	n += copy(dst[n:], EncodeCOctetString(nil, p.MessageID))
	dst[n] = p.PriorityFlag
	n++
	n += copy(dst[n:], encodeSmppTime(p.ScheduleDeliveryTime))
	n += copy(dst[n:], encodeSmppTime(p.ValidityPeriod))
	dst[n] = p.ReplaceIfPresentFlag
	dst[n+1] = p.DataCoding
	dst[n+2] = p.SmDefaultMsgID
	n += 3
	tail := EncodeTlvs(dst[n:n], p.Tlvs)
	n += copy(dst[n:], tail)
	return n, nil
}

// Decode implements PDU.
func (p *BroadcastSm) Decode(src []byte) (int, error) {
	c := newCursor(src)
	var err error
	if p.ServiceType, err = c.COctetString("service_type", 1, 6); err != nil {
		return c.Pos(), err
	}
	v, err := c.Uint8("source_addr_ton")
	if err != nil {
		return c.Pos(), err
	}
	p.SourceAddrTon = v
	if v, err = c.Uint8("source_addr_npi"); err != nil {
		return c.Pos(), err
	}
	p.SourceAddrNpi = v
	if p.SourceAddr, err = c.COctetString("source_addr", 1, 21); err != nil {
		return c.Pos(), err
	}
	if p.MessageID, err = c.COctetString("message_id", 1, 65); err != nil {
		return c.Pos(), err
	}
	if v, err = c.Uint8("priority_flag"); err != nil {
		return c.Pos(), err
	}
	p.PriorityFlag = v
	raw, err := c.COctetString("schedule_delivery_time", 1, 17)
	if err != nil {
		return c.Pos(), err
	}
	if p.ScheduleDeliveryTime, err = parseSmppTime("schedule_delivery_time", raw); err != nil {
		return c.Pos(), err
	}
	if raw, err = c.COctetString("validity_period", 1, 17); err != nil {
		return c.Pos(), err
	}
	if p.ValidityPeriod, err = parseSmppTime("validity_period", raw); err != nil {
		return c.Pos(), err
	}
	if v, err = c.Uint8("replace_if_present_flag"); err != nil {
		return c.Pos(), err
	}
	p.ReplaceIfPresentFlag = v
	if v, err = c.Uint8("data_coding"); err != nil {
		return c.Pos(), err
	}
	p.DataCoding = v
	if v, err = c.Uint8("sm_default_msg_id"); err != nil {
		return c.Pos(), err
	}
	p.SmDefaultMsgID = v
	tlvs, err := DecodeTlvs(c)
	if err != nil {
		return c.Pos(), err
	}
	p.Tlvs = tlvs
	return c.Pos(), nil
}

// Response builds the matching broadcast_sm_resp.
func (p *BroadcastSm) Response(msgID string) *BroadcastSmResp {
	return &BroadcastSmResp{MessageID: msgID}
}

// BroadcastSmResp reports the MC-assigned message_id for an accepted
// broadcast_sm.
type BroadcastSmResp struct {
	MessageID string
}

// CommandID implements PDU.
func (p *BroadcastSmResp) CommandID() CommandID { return BroadcastSmRespID }

// Length implements PDU.
func (p *BroadcastSmResp) Length() int { return COctetStringLength(p.MessageID) }

// Encode implements PDU.
func (p *BroadcastSmResp) Encode(dst []byte) (int, error) {
	return copy(dst, EncodeCOctetString(nil, p.MessageID)), nil
}

// Decode implements PDU.
func (p *BroadcastSmResp) Decode(src []byte) (int, error) {
	c := newCursor(src)
	if c.Len() == 0 {
		return 0, nil
	}
	id, err := c.COctetString("message_id", 1, 65)
	if err != nil {
		return c.Pos(), err
	}
	p.MessageID = id
	return c.Pos(), nil
}

// QueryBroadcastSm requests the current state of a previously submitted
// broadcast message. UserMessageReference, when present, is the single
// TLV of that tag and no other — a mismatched tag is a decode error
// (see DecodeSingleTlv).
type QueryBroadcastSm struct {
	MessageID            string
	SourceAddrTon        uint8
	SourceAddrNpi        uint8
	SourceAddr           string
	UserMessageReference *uint16
}

// CommandID implements PDU.
func (p *QueryBroadcastSm) CommandID() CommandID { return QueryBroadcastSmID }

// Length implements PDU.
func (p *QueryBroadcastSm) Length() int {
	n := COctetStringLength(p.MessageID) + 2 + COctetStringLength(p.SourceAddr)
	if p.UserMessageReference != nil {
		n += 6 // tag(2) + length(2) + value(2)
	}
	return n
}

// Encode implements PDU.
func (p *QueryBroadcastSm) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.MessageID))
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	if p.UserMessageReference != nil {
		tlv := NewTlv(TagUserMessageReference, Uint16Value(*p.UserMessageReference))
		m, err := tlv.Encode(dst[n:])
		if err != nil {
			return n, err
		}
		n += m
	}
	return n, nil
}

// Decode implements PDU.
func (p *QueryBroadcastSm) Decode(src []byte) (int, error) {
	c := newCursor(src)
	var err error
	if p.MessageID, err = c.COctetString("message_id", 1, 65); err != nil {
		return c.Pos(), err
	}
	v, err := c.Uint8("source_addr_ton")
	if err != nil {
		return c.Pos(), err
	}
	p.SourceAddrTon = v
	if v, err = c.Uint8("source_addr_npi"); err != nil {
		return c.Pos(), err
	}
	p.SourceAddrNpi = v
	if p.SourceAddr, err = c.COctetString("source_addr", 1, 21); err != nil {
		return c.Pos(), err
	}
	tlv, present, err := DecodeSingleTlv(c, "user_message_reference", TagUserMessageReference)
	if err != nil {
		return c.Pos(), err
	}
	if present {
		if val, ok := tlv.Value.(Uint16Value); ok {
			u := uint16(val)
			p.UserMessageReference = &u
		}
	}
	return c.Pos(), nil
}

// Response builds the matching query_broadcast_sm_resp.
func (p *QueryBroadcastSm) Response(msgID string) *QueryBroadcastSmResp {
	return &QueryBroadcastSmResp{MessageID: msgID}
}

// QueryBroadcastSmResp reports a broadcast message's current state and
// per-area delivery success, carried entirely as TLVs
// (message_state, broadcast_area_identifier, broadcast_area_success).
type QueryBroadcastSmResp struct {
	MessageID string
	Tlvs      []Tlv
}

// CommandID implements PDU.
func (p *QueryBroadcastSmResp) CommandID() CommandID { return QueryBroadcastSmRespID }

// Length implements PDU.
func (p *QueryBroadcastSmResp) Length() int {
	return COctetStringLength(p.MessageID) + TlvsLength(p.Tlvs)
}

// Encode implements PDU.
func (p *QueryBroadcastSmResp) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.MessageID))
	tail := EncodeTlvs(dst[n:n], p.Tlvs)
	n += copy(dst[n:], tail)
	return n, nil
}

// Decode implements PDU.
func (p *QueryBroadcastSmResp) Decode(src []byte) (int, error) {
	c := newCursor(src)
	id, err := c.COctetString("message_id", 1, 65)
	if err != nil {
		return c.Pos(), err
	}
	p.MessageID = id
	tlvs, err := DecodeTlvs(c)
	if err != nil {
		return c.Pos(), err
	}
	p.Tlvs = tlvs
	return c.Pos(), nil
}

// CancelBroadcastSm requests cancellation of a previously submitted
// broadcast message that has not yet expired.
type CancelBroadcastSm struct {
	ServiceType   string
	MessageID     string
	SourceAddrTon uint8
	SourceAddrNpi uint8
	SourceAddr    string
	Tlvs          []Tlv
}

// CommandID implements PDU.
func (p *CancelBroadcastSm) CommandID() CommandID { return CancelBroadcastSmID }

// Length implements PDU.
func (p *CancelBroadcastSm) Length() int {
	return COctetStringLength(p.ServiceType) + COctetStringLength(p.MessageID) +
		2 + COctetStringLength(p.SourceAddr) + TlvsLength(p.Tlvs)
}

// Encode implements PDU.
func (p *CancelBroadcastSm) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.ServiceType))
	n += copy(dst[n:], EncodeCOctetString(nil, p.MessageID))
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	tail := EncodeTlvs(dst[n:n], p.Tlvs)
	n += copy(dst[n:], tail)
	return n, nil
}

// Decode implements PDU.
func (p *CancelBroadcastSm) Decode(src []byte) (int, error) {
	c := newCursor(src)
	var err error
	if p.ServiceType, err = c.COctetString("service_type", 1, 6); err != nil {
		return c.Pos(), err
	}
	if p.MessageID, err = c.COctetString("message_id", 1, 65); err != nil {
		return c.Pos(), err
	}
	v, err := c.Uint8("source_addr_ton")
	if err != nil {
		return c.Pos(), err
	}
	p.SourceAddrTon = v
	if v, err = c.Uint8("source_addr_npi"); err != nil {
		return c.Pos(), err
	}
	p.SourceAddrNpi = v
	if p.SourceAddr, err = c.COctetString("source_addr", 1, 21); err != nil {
		return c.Pos(), err
	}
	tlvs, err := DecodeTlvs(c)
	if err != nil {
		return c.Pos(), err
	}
	p.Tlvs = tlvs
	return c.Pos(), nil
}

// Response builds the matching cancel_broadcast_sm_resp.
func (p *CancelBroadcastSm) Response() *CancelBroadcastSmResp { return &CancelBroadcastSmResp{} }

// CancelBroadcastSmResp is the (empty-bodied) cancel_broadcast_sm_resp.
type CancelBroadcastSmResp struct{}

// CommandID implements PDU.
func (p *CancelBroadcastSmResp) CommandID() CommandID { return CancelBroadcastSmRespID }

// Length implements PDU.
func (p *CancelBroadcastSmResp) Length() int { return 0 }

// Encode implements PDU.
func (p *CancelBroadcastSmResp) Encode(dst []byte) (int, error) { return 0, nil }

// Decode implements PDU.
func (p *CancelBroadcastSmResp) Decode(src []byte) (int, error) { return 0, nil }
