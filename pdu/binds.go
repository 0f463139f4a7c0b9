package pdu

// Bind request/response bodies: bind_transmitter, bind_receiver,
// bind_transceiver, and outbind. All three bind request kinds share an
// identical body layout, so they're built on the same bindBody helper —
// following the teacher's marshalBind/unmarshalBind split, generalized
// onto the Length/Encode/Decode contract.

type bindBody struct {
	SystemID         string
	Password         string
	SystemType       string
	InterfaceVersion uint8
	AddrTon          uint8
	AddrNpi          uint8
	AddressRange     string
}

func (b bindBody) length() int {
	return COctetStringLength(b.SystemID) +
		COctetStringLength(b.Password) +
		COctetStringLength(b.SystemType) +
		3 +
		COctetStringLength(b.AddressRange)
}

func (b bindBody) encode(dst []byte) (int, error) {
	n := 0
	n += copy(dst[n:], EncodeCOctetString(nil, b.SystemID))
	n += copy(dst[n:], EncodeCOctetString(nil, b.Password))
	n += copy(dst[n:], EncodeCOctetString(nil, b.SystemType))
	dst[n] = b.InterfaceVersion
	dst[n+1] = b.AddrTon
	dst[n+2] = b.AddrNpi
	n += 3
	n += copy(dst[n:], EncodeCOctetString(nil, b.AddressRange))
	return n, nil
}

func (b *bindBody) decode(src []byte) (int, error) {
	c := newCursor(src)
	var err error
	if b.SystemID, err = c.COctetString("system_id", 1, 16); err != nil {
		return c.Pos(), err
	}
	if b.Password, err = c.COctetString("password", 1, 9); err != nil {
		return c.Pos(), err
	}
	if b.SystemType, err = c.COctetString("system_type", 1, 13); err != nil {
		return c.Pos(), err
	}
	v, err := c.Uint8("interface_version")
	if err != nil {
		return c.Pos(), err
	}
	b.InterfaceVersion = v
	if v, err = c.Uint8("addr_ton"); err != nil {
		return c.Pos(), err
	}
	b.AddrTon = v
	if v, err = c.Uint8("addr_npi"); err != nil {
		return c.Pos(), err
	}
	b.AddrNpi = v
	if b.AddressRange, err = c.COctetString("address_range", 1, 41); err != nil {
		return c.Pos(), err
	}
	return c.Pos(), nil
}

// bindRespBody is shared by every bind_*_resp: a system_id C-octet
// string optionally followed by an sc_interface_version single TLV. Per
// spec.md §4.3, a bind response returning a non-zero command_status may
// still carry only a partial body — Decode reads whatever the enclosing
// length admits instead of requiring the TLV.
type bindRespBody struct {
	SystemID           string
	ScInterfaceVersion *uint8
}

func (b bindRespBody) length() int {
	n := COctetStringLength(b.SystemID)
	if b.ScInterfaceVersion != nil {
		n += 5 // tag(2) + length(2) + value(1)
	}
	return n
}

func (b bindRespBody) encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, b.SystemID))
	if b.ScInterfaceVersion != nil {
		tlv := NewTlv(TagScInterfaceVersion, Uint8Value(*b.ScInterfaceVersion))
		m, err := tlv.Encode(dst[n:])
		if err != nil {
			return n, err
		}
		n += m
	}
	return n, nil
}

func (b *bindRespBody) decode(src []byte) (int, error) {
	c := newCursor(src)
	sysID, err := c.COctetString("system_id", 1, 16)
	if err != nil {
		return c.Pos(), err
	}
	b.SystemID = sysID
	if c.Len() == 0 {
		return c.Pos(), nil
	}
	tlv, present, err := DecodeSingleTlv(c, "sc_interface_version", TagScInterfaceVersion)
	if err != nil {
		return c.Pos(), err
	}
	if present {
		if v, ok := tlv.Value.(Uint8Value); ok {
			u := uint8(v)
			b.ScInterfaceVersion = &u
		}
	}
	return c.Pos(), nil
}

// BindTransmitter is the bind_transmitter request body.
type BindTransmitter struct {
	bindBody
}

// CommandID implements PDU.
func (p *BindTransmitter) CommandID() CommandID { return BindTransmitterID }

// Length implements PDU.
func (p *BindTransmitter) Length() int { return p.bindBody.length() }

// Encode implements PDU.
func (p *BindTransmitter) Encode(dst []byte) (int, error) { return p.bindBody.encode(dst) }

// Decode implements PDU.
func (p *BindTransmitter) Decode(src []byte) (int, error) { return p.bindBody.decode(src) }

// Response builds the matching bind_transmitter_resp.
func (p *BindTransmitter) Response(systemID string) *BindTransmitterResp {
	return &BindTransmitterResp{bindRespBody{SystemID: systemID}}
}

// BindTransmitterResp is the bind_transmitter_resp body.
type BindTransmitterResp struct {
	bindRespBody
}

// CommandID implements PDU.
func (p *BindTransmitterResp) CommandID() CommandID { return BindTransmitterRespID }

// Length implements PDU.
func (p *BindTransmitterResp) Length() int { return p.bindRespBody.length() }

// Encode implements PDU.
func (p *BindTransmitterResp) Encode(dst []byte) (int, error) { return p.bindRespBody.encode(dst) }

// Decode implements PDU.
func (p *BindTransmitterResp) Decode(src []byte) (int, error) { return p.bindRespBody.decode(src) }

// BindReceiver is the bind_receiver request body.
type BindReceiver struct {
	bindBody
}

// CommandID implements PDU.
func (p *BindReceiver) CommandID() CommandID { return BindReceiverID }

// Length implements PDU.
func (p *BindReceiver) Length() int { return p.bindBody.length() }

// Encode implements PDU.
func (p *BindReceiver) Encode(dst []byte) (int, error) { return p.bindBody.encode(dst) }

// Decode implements PDU.
func (p *BindReceiver) Decode(src []byte) (int, error) { return p.bindBody.decode(src) }

// Response builds the matching bind_receiver_resp.
func (p *BindReceiver) Response(systemID string) *BindReceiverResp {
	return &BindReceiverResp{bindRespBody{SystemID: systemID}}
}

// BindReceiverResp is the bind_receiver_resp body.
type BindReceiverResp struct {
	bindRespBody
}

// CommandID implements PDU.
func (p *BindReceiverResp) CommandID() CommandID { return BindReceiverRespID }

// Length implements PDU.
func (p *BindReceiverResp) Length() int { return p.bindRespBody.length() }

// Encode implements PDU.
func (p *BindReceiverResp) Encode(dst []byte) (int, error) { return p.bindRespBody.encode(dst) }

// Decode implements PDU.
func (p *BindReceiverResp) Decode(src []byte) (int, error) { return p.bindRespBody.decode(src) }

// BindTransceiver is the bind_transceiver request body.
type BindTransceiver struct {
	bindBody
}

// CommandID implements PDU.
func (p *BindTransceiver) CommandID() CommandID { return BindTransceiverID }

// Length implements PDU.
func (p *BindTransceiver) Length() int { return p.bindBody.length() }

// Encode implements PDU.
func (p *BindTransceiver) Encode(dst []byte) (int, error) { return p.bindBody.encode(dst) }

// Decode implements PDU.
func (p *BindTransceiver) Decode(src []byte) (int, error) { return p.bindBody.decode(src) }

// Response builds the matching bind_transceiver_resp.
func (p *BindTransceiver) Response(systemID string) *BindTransceiverResp {
	return &BindTransceiverResp{bindRespBody{SystemID: systemID}}
}

// BindTransceiverResp is the bind_transceiver_resp body.
type BindTransceiverResp struct {
	bindRespBody
}

// CommandID implements PDU.
func (p *BindTransceiverResp) CommandID() CommandID { return BindTransceiverRespID }

// Length implements PDU.
func (p *BindTransceiverResp) Length() int { return p.bindRespBody.length() }

// Encode implements PDU.
func (p *BindTransceiverResp) Encode(dst []byte) (int, error) { return p.bindRespBody.encode(dst) }

// Decode implements PDU.
func (p *BindTransceiverResp) Decode(src []byte) (int, error) { return p.bindRespBody.decode(src) }

// Outbind is sent by an MC to an ESME to request a bind, outside the
// usual client-initiated handshake. Unlike the bind_* requests it
// carries only system_id and password — no system_type, version, or
// address fields.
type Outbind struct {
	SystemID string
	Password string
}

// CommandID implements PDU.
func (p *Outbind) CommandID() CommandID { return OutbindID }

// Length implements PDU.
func (p *Outbind) Length() int {
	return COctetStringLength(p.SystemID) + COctetStringLength(p.Password)
}

// Encode implements PDU.
func (p *Outbind) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.SystemID))
	n += copy(dst[n:], EncodeCOctetString(nil, p.Password))
	return n, nil
}

// Decode implements PDU.
func (p *Outbind) Decode(src []byte) (int, error) {
	c := newCursor(src)
	sysID, err := c.COctetString("system_id", 1, 16)
	if err != nil {
		return c.Pos(), err
	}
	p.SystemID = sysID
	pass, err := c.COctetString("password", 1, 9)
	if err != nil {
		return c.Pos(), err
	}
	p.Password = pass
	return c.Pos(), nil
}
