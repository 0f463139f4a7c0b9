package pdu

import (
	"time"
)

// CancelSm requests cancellation of a previously submitted message that
// has not yet been delivered.
type CancelSm struct {
	ServiceType     string
	MessageID       string
	SourceAddrTon   uint8
	SourceAddrNpi   uint8
	SourceAddr      string
	DestAddrTon     uint8
	DestAddrNpi     uint8
	DestinationAddr string
}

// CommandID implements PDU.
func (p *CancelSm) CommandID() CommandID { return CancelSmID }

// Length implements PDU.
func (p *CancelSm) Length() int {
	return COctetStringLength(p.ServiceType) + COctetStringLength(p.MessageID) +
		2 + COctetStringLength(p.SourceAddr) +
		2 + COctetStringLength(p.DestinationAddr)
}

// Encode implements PDU.
func (p *CancelSm) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.ServiceType))
	n += copy(dst[n:], EncodeCOctetString(nil, p.MessageID))
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	dst[n] = p.DestAddrTon
	dst[n+1] = p.DestAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.DestinationAddr))
	return n, nil
}

// Decode implements PDU.
func (p *CancelSm) Decode(src []byte) (int, error) {
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
	if v, err = c.Uint8("dest_addr_ton"); err != nil {
		return c.Pos(), err
	}
	p.DestAddrTon = v
	if v, err = c.Uint8("dest_addr_npi"); err != nil {
		return c.Pos(), err
	}
	p.DestAddrNpi = v
	if p.DestinationAddr, err = c.COctetString("destination_addr", 1, 21); err != nil {
		return c.Pos(), err
	}
	return c.Pos(), nil
}

// Response builds the matching cancel_sm_resp.
func (p *CancelSm) Response() *CancelSmResp { return &CancelSmResp{} }

// CancelSmResp is the (empty-bodied) cancel_sm_resp.
type CancelSmResp struct{}

// CommandID implements PDU.
func (p *CancelSmResp) CommandID() CommandID { return CancelSmRespID }

// Length implements PDU.
func (p *CancelSmResp) Length() int { return 0 }

// Encode implements PDU.
func (p *CancelSmResp) Encode(dst []byte) (int, error) { return 0, nil }

// Decode implements PDU.
func (p *CancelSmResp) Decode(src []byte) (int, error) { return 0, nil }

// ReplaceSm requests replacement of a previously submitted message's
// content and delivery parameters before it has been delivered.
type ReplaceSm struct {
	MessageID            string
	SourceAddrTon        uint8
	SourceAddrNpi        uint8
	SourceAddr           string
	ScheduleDeliveryTime time.Time
	ValidityPeriod       time.Time
	RegisteredDelivery   RegisteredDelivery
	SmDefaultMsgID       uint8
	ShortMessage         []byte
}

// CommandID implements PDU.
func (p *ReplaceSm) CommandID() CommandID { return ReplaceSmID }

// Length implements PDU.
func (p *ReplaceSm) Length() int {
	return COctetStringLength(p.MessageID) + 2 + COctetStringLength(p.SourceAddr) +
		finalDateLength(p.ScheduleDeliveryTime) + finalDateLength(p.ValidityPeriod) +
		1 + 1 + 1 + len(p.ShortMessage)
}

// Encode implements PDU.
func (p *ReplaceSm) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.MessageID))
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	n += copy(dst[n:], encodeSmppTime(p.ScheduleDeliveryTime))
	n += copy(dst[n:], encodeSmppTime(p.ValidityPeriod))
	dst[n] = p.RegisteredDelivery.Byte()
	dst[n+1] = p.SmDefaultMsgID
	dst[n+2] = byte(len(p.ShortMessage))
	n += 3
	n += copy(dst[n:], p.ShortMessage)
	return n, nil
}

// Decode implements PDU.
func (p *ReplaceSm) Decode(src []byte) (int, error) {
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
	b, err := c.Uint8("registered_delivery")
	if err != nil {
		return c.Pos(), err
	}
	p.RegisteredDelivery = ParseRegisteredDelivery(b)
	if v, err = c.Uint8("sm_default_msg_id"); err != nil {
		return c.Pos(), err
	}
	p.SmDefaultMsgID = v
	l, err := c.Uint8("sm_length")
	if err != nil {
		return c.Pos(), err
	}
	sm, err := c.OctetString("short_message", int(l), 0, 255)
	if err != nil {
		return c.Pos(), err
	}
	p.ShortMessage = append([]byte(nil), sm...)
	return c.Pos(), nil
}

// Response builds the matching replace_sm_resp.
func (p *ReplaceSm) Response() *ReplaceSmResp { return &ReplaceSmResp{} }

// ReplaceSmResp is the (empty-bodied) replace_sm_resp.
type ReplaceSmResp struct{}

// CommandID implements PDU.
func (p *ReplaceSmResp) CommandID() CommandID { return ReplaceSmRespID }

// Length implements PDU.
func (p *ReplaceSmResp) Length() int { return 0 }

// Encode implements PDU.
func (p *ReplaceSmResp) Encode(dst []byte) (int, error) { return 0, nil }

// Decode implements PDU.
func (p *ReplaceSmResp) Decode(src []byte) (int, error) { return 0, nil }
