package pdu

// Empty-bodied PDUs: enquire_link, enquire_link_resp, unbind,
// unbind_resp, generic_nack, cancel_sm_resp, replace_sm_resp, and
// cancel_broadcast_sm_resp (the latter three defined alongside their
// request bodies). Each is a zero-size struct; Encode/Decode are no-ops.

// Unbind requests termination of an SMPP session.
type Unbind struct{}

// CommandID implements PDU.
func (p *Unbind) CommandID() CommandID { return UnbindID }

// Length implements PDU.
func (p *Unbind) Length() int { return 0 }

// Encode implements PDU.
func (p *Unbind) Encode(dst []byte) (int, error) { return 0, nil }

// Decode implements PDU.
func (p *Unbind) Decode(src []byte) (int, error) { return 0, nil }

// Response builds the matching unbind_resp.
func (p *Unbind) Response() *UnbindResp { return &UnbindResp{} }

// UnbindResp is the unbind_resp body.
type UnbindResp struct{}

// CommandID implements PDU.
func (p *UnbindResp) CommandID() CommandID { return UnbindRespID }

// Length implements PDU.
func (p *UnbindResp) Length() int { return 0 }

// Encode implements PDU.
func (p *UnbindResp) Encode(dst []byte) (int, error) { return 0, nil }

// Decode implements PDU.
func (p *UnbindResp) Decode(src []byte) (int, error) { return 0, nil }

// EnquireLink is a session keepalive probe.
type EnquireLink struct{}

// CommandID implements PDU.
func (p *EnquireLink) CommandID() CommandID { return EnquireLinkID }

// Length implements PDU.
func (p *EnquireLink) Length() int { return 0 }

// Encode implements PDU.
func (p *EnquireLink) Encode(dst []byte) (int, error) { return 0, nil }

// Decode implements PDU.
func (p *EnquireLink) Decode(src []byte) (int, error) { return 0, nil }

// Response builds the matching enquire_link_resp.
func (p *EnquireLink) Response() *EnquireLinkResp { return &EnquireLinkResp{} }

// EnquireLinkResp is the enquire_link_resp body.
type EnquireLinkResp struct{}

// CommandID implements PDU.
func (p *EnquireLinkResp) CommandID() CommandID { return EnquireLinkRespID }

// Length implements PDU.
func (p *EnquireLinkResp) Length() int { return 0 }

// Encode implements PDU.
func (p *EnquireLinkResp) Encode(dst []byte) (int, error) { return 0, nil }

// Decode implements PDU.
func (p *EnquireLinkResp) Decode(src []byte) (int, error) { return 0, nil }

// GenericNack is returned when a command cannot be identified or parsed
// at all; its command_status carries the reason.
type GenericNack struct{}

// CommandID implements PDU.
func (p *GenericNack) CommandID() CommandID { return GenericNackID }

// Length implements PDU.
func (p *GenericNack) Length() int { return 0 }

// Encode implements PDU.
func (p *GenericNack) Encode(dst []byte) (int, error) { return 0, nil }

// Decode implements PDU.
func (p *GenericNack) Decode(src []byte) (int, error) { return 0, nil }

// AlertNotification informs an ESME that a mobile subscriber has become
// available, carrying source and destination addresses plus an optional
// single ms_availability_status TLV.
type AlertNotification struct {
	SourceAddrTon      uint8
	SourceAddrNpi      uint8
	SourceAddr         string
	EsmeAddrTon        uint8
	EsmeAddrNpi        uint8
	EsmeAddr           string
	MsAvailabilityStatus *uint8
}

// CommandID implements PDU.
func (p *AlertNotification) CommandID() CommandID { return AlertNotificationID }

// Length implements PDU.
func (p *AlertNotification) Length() int {
	n := 2 + COctetStringLength(p.SourceAddr) + 2 + COctetStringLength(p.EsmeAddr)
	if p.MsAvailabilityStatus != nil {
		n += 5
	}
	return n
}

// Encode implements PDU.
func (p *AlertNotification) Encode(dst []byte) (int, error) {
	n := 0
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	dst[n] = p.EsmeAddrTon
	dst[n+1] = p.EsmeAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.EsmeAddr))
	if p.MsAvailabilityStatus != nil {
		tlv := NewTlv(TagMsAvailabilityStatus, Uint8Value(*p.MsAvailabilityStatus))
		m, err := tlv.Encode(dst[n:])
		if err != nil {
			return n, err
		}
		n += m
	}
	return n, nil
}

// Decode implements PDU.
func (p *AlertNotification) Decode(src []byte) (int, error) {
	c := newCursor(src)
	v, err := c.Uint8("source_addr_ton")
	if err != nil {
		return c.Pos(), err
	}
	p.SourceAddrTon = v
	if v, err = c.Uint8("source_addr_npi"); err != nil {
		return c.Pos(), err
	}
	p.SourceAddrNpi = v
	addr, err := c.COctetString("source_addr", 1, 65)
	if err != nil {
		return c.Pos(), err
	}
	p.SourceAddr = addr
	if v, err = c.Uint8("esme_addr_ton"); err != nil {
		return c.Pos(), err
	}
	p.EsmeAddrTon = v
	if v, err = c.Uint8("esme_addr_npi"); err != nil {
		return c.Pos(), err
	}
	p.EsmeAddrNpi = v
	addr, err = c.COctetString("esme_addr", 1, 65)
	if err != nil {
		return c.Pos(), err
	}
	p.EsmeAddr = addr
	if c.Len() == 0 {
		return c.Pos(), nil
	}
	tlv, present, err := DecodeSingleTlv(c, "ms_availability_status", TagMsAvailabilityStatus)
	if err != nil {
		return c.Pos(), err
	}
	if present {
		if val, ok := tlv.Value.(Uint8Value); ok {
			u := uint8(val)
			p.MsAvailabilityStatus = &u
		}
	}
	return c.Pos(), nil
}
