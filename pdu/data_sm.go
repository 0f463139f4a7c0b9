package pdu

// DataSm transfers data between an ESME and the MC over an interactive
// session, carrying no short_message field of its own — any content
// rides in the message_payload TLV within Tlvs.
type DataSm struct {
	ServiceType        string
	SourceAddrTon      uint8
	SourceAddrNpi      uint8
	SourceAddr         string
	DestAddrTon        uint8
	DestAddrNpi        uint8
	DestinationAddr    string
	EsmClass           EsmClass
	RegisteredDelivery RegisteredDelivery
	DataCoding         uint8
	Tlvs               []Tlv
}

// CommandID implements PDU.
func (p *DataSm) CommandID() CommandID { return DataSmID }

// Length implements PDU.
func (p *DataSm) Length() int {
	return COctetStringLength(p.ServiceType) + 2 + COctetStringLength(p.SourceAddr) +
		2 + COctetStringLength(p.DestinationAddr) + 1 + 1 + 1 + TlvsLength(p.Tlvs)
}

// Encode implements PDU.
func (p *DataSm) Encode(dst []byte) (int, error) {
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
	dst[n+1] = p.RegisteredDelivery.Byte()
	dst[n+2] = p.DataCoding
	n += 3
	tail := EncodeTlvs(dst[n:n], p.Tlvs)
	n += copy(dst[n:], tail)
	return n, nil
}

// Decode implements PDU.
func (p *DataSm) Decode(src []byte) (int, error) {
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
	if b, err = c.Uint8("registered_delivery"); err != nil {
		return c.Pos(), err
	}
	p.RegisteredDelivery = ParseRegisteredDelivery(b)
	if v, err = c.Uint8("data_coding"); err != nil {
		return c.Pos(), err
	}
	p.DataCoding = v
	tlvs, err := DecodeTlvs(c)
	if err != nil {
		return c.Pos(), err
	}
	p.Tlvs = tlvs
	return c.Pos(), nil
}

// Response builds the matching data_sm_resp.
func (p *DataSm) Response(msgID string) *DataSmResp {
	return &DataSmResp{MessageID: msgID}
}

// DataSmResp acknowledges a data_sm, optionally carrying delivery-related
// TLVs (e.g. message_state, network_error_code) when the exchange
// completes synchronously.
type DataSmResp struct {
	MessageID string
	Tlvs      []Tlv
}

// CommandID implements PDU.
func (p *DataSmResp) CommandID() CommandID { return DataSmRespID }

// Length implements PDU.
func (p *DataSmResp) Length() int {
	return COctetStringLength(p.MessageID) + TlvsLength(p.Tlvs)
}

// Encode implements PDU.
func (p *DataSmResp) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.MessageID))
	tail := EncodeTlvs(dst[n:n], p.Tlvs)
	n += copy(dst[n:], tail)
	return n, nil
}

// Decode implements PDU.
func (p *DataSmResp) Decode(src []byte) (int, error) {
	c := newCursor(src)
	if c.Len() == 0 {
		return 0, nil
	}
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
