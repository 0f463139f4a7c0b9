package pdu

import "time"

// DeliverSm carries a mobile-originated message or a delivery receipt
// from the MC to an ESME. Its body layout mirrors SubmitSm; ShortMessage
// holds raw content bytes, which ParseDeliveryReceipt can decode when
// EsmClass.Type indicates a delivery receipt.
type DeliverSm struct {
	ServiceType          string
	SourceAddrTon        uint8
	SourceAddrNpi        uint8
	SourceAddr           string
	DestAddrTon          uint8
	DestAddrNpi          uint8
	DestinationAddr      string
	EsmClass             EsmClass
	ProtocolID           uint8
	PriorityFlag         uint8
	ScheduleDeliveryTime time.Time
	ValidityPeriod       time.Time
	RegisteredDelivery   RegisteredDelivery
	ReplaceIfPresentFlag uint8
	DataCoding           uint8
	SmDefaultMsgID       uint8
	ShortMessage         []byte
	Tlvs                 []Tlv
}

func (p *DeliverSm) hasMessagePayload() bool {
	_, ok := Get(p.Tlvs, TagMessagePayload)
	return ok
}

func (p *DeliverSm) effectiveShortMessage() []byte {
	if p.hasMessagePayload() {
		return nil
	}
	return p.ShortMessage
}

// CommandID implements PDU.
func (p *DeliverSm) CommandID() CommandID { return DeliverSmID }

// Length implements PDU.
func (p *DeliverSm) Length() int {
	sm := p.effectiveShortMessage()
	return COctetStringLength(p.ServiceType) + 2 + COctetStringLength(p.SourceAddr) +
		2 + COctetStringLength(p.DestinationAddr) + 3 +
		finalDateLength(p.ScheduleDeliveryTime) + finalDateLength(p.ValidityPeriod) +
		4 + 1 + len(sm) + TlvsLength(p.Tlvs)
}

// Encode implements PDU.
func (p *DeliverSm) Encode(dst []byte) (int, error) {
	sm := p.effectiveShortMessage()
	n := copy(dst, EncodeCOctetString(nil, p.ServiceType))
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	dst[n] = p.DestAddrTon
	dst[n+1] = p.DestAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.DestinationAddr))
	dst[n] = p.EsmClass.Byte()
	dst[n+1] = p.ProtocolID
	dst[n+2] = p.PriorityFlag
	n += 3
	n += copy(dst[n:], encodeSmppTime(p.ScheduleDeliveryTime))
	n += copy(dst[n:], encodeSmppTime(p.ValidityPeriod))
	dst[n] = p.RegisteredDelivery.Byte()
	dst[n+1] = p.ReplaceIfPresentFlag
	dst[n+2] = p.DataCoding
	dst[n+3] = p.SmDefaultMsgID
	dst[n+4] = byte(len(sm))
	n += 5
	n += copy(dst[n:], sm)
	tail := EncodeTlvs(dst[n:n], p.Tlvs)
	n += copy(dst[n:], tail)
	return n, nil
}

// Decode implements PDU.
func (p *DeliverSm) Decode(src []byte) (int, error) {
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
	b, err := c.Uint8("esm_class")
	if err != nil {
		return c.Pos(), err
	}
	p.EsmClass = ParseEsmClass(b)
	if v, err = c.Uint8("protocol_id"); err != nil {
		return c.Pos(), err
	}
	p.ProtocolID = v
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
	b, err = c.Uint8("registered_delivery")
	if err != nil {
		return c.Pos(), err
	}
	p.RegisteredDelivery = ParseRegisteredDelivery(b)
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
	l, err := c.Uint8("sm_length")
	if err != nil {
		return c.Pos(), err
	}
	sm, err := c.OctetString("short_message", int(l), 0, 255)
	if err != nil {
		return c.Pos(), err
	}
	p.ShortMessage = append([]byte(nil), sm...)
	tlvs, err := DecodeTlvs(c)
	if err != nil {
		return c.Pos(), err
	}
	p.Tlvs = tlvs
	return c.Pos(), nil
}

// Response builds the matching deliver_sm_resp.
func (p *DeliverSm) Response(msgID string) *DeliverSmResp {
	return &DeliverSmResp{MessageID: msgID}
}

// DeliverSmResp acknowledges a deliver_sm.
type DeliverSmResp struct {
	MessageID string
}

// CommandID implements PDU.
func (p *DeliverSmResp) CommandID() CommandID { return DeliverSmRespID }

// Length implements PDU.
func (p *DeliverSmResp) Length() int { return COctetStringLength(p.MessageID) }

// Encode implements PDU.
func (p *DeliverSmResp) Encode(dst []byte) (int, error) {
	return copy(dst, EncodeCOctetString(nil, p.MessageID)), nil
}

// Decode implements PDU.
func (p *DeliverSmResp) Decode(src []byte) (int, error) {
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
