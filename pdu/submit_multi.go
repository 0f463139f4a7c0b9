package pdu

import "time"

// DestAddressFlag discriminates a SubmitMulti destination entry. It is a
// closed set per SMPP v5.0: any other byte is a decode error
// (KindUnsupportedKey), not an Other(u) catch-all, since a destination
// address with an unrecognized shape can't be framed at all.
type DestAddressFlag uint8

// Destination address flag values.
const (
	DestFlagSME              DestAddressFlag = 0x01
	DestFlagDistributionList DestAddressFlag = 0x02
)

// DestAddress is one entry of a SubmitMulti destination list: either an
// SME address (ton, npi, destination_addr) or a distribution list name.
// Which fields apply is governed entirely by Flag.
type DestAddress struct {
	Flag            DestAddressFlag
	AddrTon         uint8
	AddrNpi         uint8
	DestinationAddr string // SME destination_addr, or the dl_name for a distribution list
}

func (d DestAddress) length() int {
	switch d.Flag {
	case DestFlagSME:
		return 1 + 2 + COctetStringLength(d.DestinationAddr)
	case DestFlagDistributionList:
		return 1 + COctetStringLength(d.DestinationAddr)
	default:
		return 1
	}
}

func (d DestAddress) encode(dst []byte) (int, error) {
	dst[0] = byte(d.Flag)
	n := 1
	switch d.Flag {
	case DestFlagSME:
		dst[n] = d.AddrTon
		dst[n+1] = d.AddrNpi
		n += 2
		n += copy(dst[n:], EncodeCOctetString(nil, d.DestinationAddr))
	case DestFlagDistributionList:
		n += copy(dst[n:], EncodeCOctetString(nil, d.DestinationAddr))
	}
	return n, nil
}

func decodeDestAddress(c *cursor) (DestAddress, error) {
	flagByte, err := c.Uint8("dest_address.dest_flag")
	if err != nil {
		return DestAddress{}, err
	}
	flag := DestAddressFlag(flagByte)
	switch flag {
	case DestFlagSME:
		ton, err := c.Uint8("dest_address.dest_addr_ton")
		if err != nil {
			return DestAddress{}, err
		}
		npi, err := c.Uint8("dest_address.dest_addr_npi")
		if err != nil {
			return DestAddress{}, err
		}
		addr, err := c.COctetString("dest_address.destination_addr", 1, 21)
		if err != nil {
			return DestAddress{}, err
		}
		return DestAddress{Flag: flag, AddrTon: ton, AddrNpi: npi, DestinationAddr: addr}, nil
	case DestFlagDistributionList:
		name, err := c.COctetString("dest_address.dl_name", 1, 21)
		if err != nil {
			return DestAddress{}, err
		}
		return DestAddress{Flag: flag, DestinationAddr: name}, nil
	default:
		return DestAddress{}, UnsupportedKey("dest_address.dest_flag", flagByte)
	}
}

// UnsuccessSme is one entry of a SubmitMultiResp's failure list: a
// destination that could not be queued, with the status code explaining
// why.
type UnsuccessSme struct {
	DestAddrTon     uint8
	DestAddrNpi     uint8
	DestinationAddr string
	ErrorStatusCode CommandStatus
}

func (u UnsuccessSme) length() int {
	return 2 + COctetStringLength(u.DestinationAddr) + 4
}

func (u UnsuccessSme) encode(dst []byte) (int, error) {
	dst[0] = u.DestAddrTon
	dst[1] = u.DestAddrNpi
	n := 2
	n += copy(dst[n:], EncodeCOctetString(nil, u.DestinationAddr))
	v := uint32(u.ErrorStatusCode)
	dst[n] = byte(v >> 24)
	dst[n+1] = byte(v >> 16)
	dst[n+2] = byte(v >> 8)
	dst[n+3] = byte(v)
	return n + 4, nil
}

func decodeUnsuccessSme(c *cursor) (UnsuccessSme, error) {
	ton, err := c.Uint8("unsuccess_sme.dest_addr_ton")
	if err != nil {
		return UnsuccessSme{}, err
	}
	npi, err := c.Uint8("unsuccess_sme.dest_addr_npi")
	if err != nil {
		return UnsuccessSme{}, err
	}
	addr, err := c.COctetString("unsuccess_sme.destination_addr", 1, 21)
	if err != nil {
		return UnsuccessSme{}, err
	}
	status, err := c.Uint32("unsuccess_sme.error_status_code")
	if err != nil {
		return UnsuccessSme{}, err
	}
	return UnsuccessSme{DestAddrTon: ton, DestAddrNpi: npi, DestinationAddr: addr, ErrorStatusCode: CommandStatus(status)}, nil
}

// SubmitMulti submits a short message to a list of destinations, SME
// addresses and distribution list names freely mixed. ShortMessage and a
// message_payload TLV are mutually exclusive on the wire, same as
// SubmitSm: Encode prefers MessagePayload when one is present in Tlvs,
// zeroing sm_length and omitting short_message.
type SubmitMulti struct {
	ServiceType          string
	SourceAddrTon        uint8
	SourceAddrNpi        uint8
	SourceAddr           string
	DestAddresses        []DestAddress
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

// hasMessagePayload reports whether Tlvs carries a message_payload entry,
// in which case short_message/sm_length are encoded empty per spec.
func (p *SubmitMulti) hasMessagePayload() bool {
	_, ok := Get(p.Tlvs, TagMessagePayload)
	return ok
}

// effectiveShortMessage returns the bytes Encode writes into the
// short_message field: empty whenever a message_payload TLV is present.
func (p *SubmitMulti) effectiveShortMessage() []byte {
	if p.hasMessagePayload() {
		return nil
	}
	return p.ShortMessage
}

// CommandID implements PDU.
func (p *SubmitMulti) CommandID() CommandID { return SubmitMultiID }

// Length implements PDU.
func (p *SubmitMulti) Length() int {
	sm := p.effectiveShortMessage()
	n := COctetStringLength(p.ServiceType) + 2 + COctetStringLength(p.SourceAddr) + 1
	for _, d := range p.DestAddresses {
		n += d.length()
	}
	n += 3 + finalDateLength(p.ScheduleDeliveryTime) + finalDateLength(p.ValidityPeriod) +
		4 + 1 + len(sm) + TlvsLength(p.Tlvs)
	return n
}

// Encode implements PDU.
func (p *SubmitMulti) Encode(dst []byte) (int, error) {
	sm := p.effectiveShortMessage()
	n := copy(dst, EncodeCOctetString(nil, p.ServiceType))
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	dst[n] = byte(len(p.DestAddresses))
	n++
	for _, d := range p.DestAddresses {
		m, err := d.encode(dst[n:])
		if err != nil {
			return n, err
		}
		n += m
	}
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
func (p *SubmitMulti) Decode(src []byte) (int, error) {
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
	count, err := c.Uint8("number_of_dests")
	if err != nil {
		return c.Pos(), err
	}
	p.DestAddresses = make([]DestAddress, 0, count)
	for i := 0; i < int(count); i++ {
		d, err := decodeDestAddress(c)
		if err != nil {
			return c.Pos(), err
		}
		p.DestAddresses = append(p.DestAddresses, d)
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

// Response builds the matching submit_multi_resp.
func (p *SubmitMulti) Response(msgID string, unsuccess []UnsuccessSme) *SubmitMultiResp {
	return &SubmitMultiResp{MessageID: msgID, UnsuccessSmes: unsuccess}
}

// SubmitMultiResp reports the MC-assigned message_id plus the list of
// destinations that could not be queued.
type SubmitMultiResp struct {
	MessageID     string
	UnsuccessSmes []UnsuccessSme
}

// CommandID implements PDU.
func (p *SubmitMultiResp) CommandID() CommandID { return SubmitMultiRespID }

// Length implements PDU.
func (p *SubmitMultiResp) Length() int {
	n := COctetStringLength(p.MessageID) + 1
	for _, u := range p.UnsuccessSmes {
		n += u.length()
	}
	return n
}

// Encode implements PDU.
func (p *SubmitMultiResp) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.MessageID))
	dst[n] = byte(len(p.UnsuccessSmes))
	n++
	for _, u := range p.UnsuccessSmes {
		m, err := u.encode(dst[n:])
		if err != nil {
			return n, err
		}
		n += m
	}
	return n, nil
}

// Decode implements PDU.
func (p *SubmitMultiResp) Decode(src []byte) (int, error) {
	c := newCursor(src)
	if c.Len() == 0 {
		return 0, nil
	}
	id, err := c.COctetString("message_id", 1, 65)
	if err != nil {
		return c.Pos(), err
	}
	p.MessageID = id
	if c.Len() == 0 {
		return c.Pos(), nil
	}
	count, err := c.Uint8("no_unsuccess")
	if err != nil {
		return c.Pos(), err
	}
	p.UnsuccessSmes = make([]UnsuccessSme, 0, count)
	for i := 0; i < int(count); i++ {
		u, err := decodeUnsuccessSme(c)
		if err != nil {
			return c.Pos(), err
		}
		p.UnsuccessSmes = append(p.UnsuccessSmes, u)
	}
	return c.Pos(), nil
}
