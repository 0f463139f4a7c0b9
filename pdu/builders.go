package pdu

// Builders for the non-trivial request PDUs, following CommandBuilder's
// chained-setter style (see command.go) generalized to the pdu package.
// The SubmitSm, DeliverSm, and SubmitMulti builders' Build() performs the
// message_payload/short_message normalization
// at construction time rather than leaving it to Length/Encode, so a
// caller inspecting the built value already sees the effective wire
// shape.

// SubmitSmBuilder accumulates a SubmitSm's fields via chained calls,
// terminated by Build.
type SubmitSmBuilder struct {
	p SubmitSm
}

// NewSubmitSmBuilder starts a new SubmitSmBuilder.
func NewSubmitSmBuilder() *SubmitSmBuilder { return &SubmitSmBuilder{} }

func (b *SubmitSmBuilder) ServiceType(v string) *SubmitSmBuilder { b.p.ServiceType = v; return b }

func (b *SubmitSmBuilder) Source(ton, npi uint8, addr string) *SubmitSmBuilder {
	b.p.SourceAddrTon, b.p.SourceAddrNpi, b.p.SourceAddr = ton, npi, addr
	return b
}

func (b *SubmitSmBuilder) Destination(ton, npi uint8, addr string) *SubmitSmBuilder {
	b.p.DestAddrTon, b.p.DestAddrNpi, b.p.DestinationAddr = ton, npi, addr
	return b
}

func (b *SubmitSmBuilder) EsmClass(v EsmClass) *SubmitSmBuilder { b.p.EsmClass = v; return b }

func (b *SubmitSmBuilder) RegisteredDelivery(v RegisteredDelivery) *SubmitSmBuilder {
	b.p.RegisteredDelivery = v
	return b
}

func (b *SubmitSmBuilder) DataCoding(v uint8) *SubmitSmBuilder { b.p.DataCoding = v; return b }

func (b *SubmitSmBuilder) ShortMessage(v []byte) *SubmitSmBuilder { b.p.ShortMessage = v; return b }

func (b *SubmitSmBuilder) Tlv(t Tlv) *SubmitSmBuilder { b.p.Tlvs = append(b.p.Tlvs, t); return b }

// MessagePayload adds a message_payload TLV; Build clears ShortMessage
// since the two are mutually exclusive on the wire.
func (b *SubmitSmBuilder) MessagePayload(v []byte) *SubmitSmBuilder {
	return b.Tlv(NewTlv(TagMessagePayload, BytesValue(v)))
}

// Build returns the accumulated SubmitSm, with ShortMessage cleared if a
// message_payload TLV was added.
func (b *SubmitSmBuilder) Build() *SubmitSm {
	p := b.p
	if p.hasMessagePayload() {
		p.ShortMessage = nil
	}
	return &p
}

// DeliverSmBuilder accumulates a DeliverSm's fields via chained calls,
// terminated by Build.
type DeliverSmBuilder struct {
	p DeliverSm
}

// NewDeliverSmBuilder starts a new DeliverSmBuilder.
func NewDeliverSmBuilder() *DeliverSmBuilder { return &DeliverSmBuilder{} }

func (b *DeliverSmBuilder) ServiceType(v string) *DeliverSmBuilder { b.p.ServiceType = v; return b }

func (b *DeliverSmBuilder) Source(ton, npi uint8, addr string) *DeliverSmBuilder {
	b.p.SourceAddrTon, b.p.SourceAddrNpi, b.p.SourceAddr = ton, npi, addr
	return b
}

func (b *DeliverSmBuilder) Destination(ton, npi uint8, addr string) *DeliverSmBuilder {
	b.p.DestAddrTon, b.p.DestAddrNpi, b.p.DestinationAddr = ton, npi, addr
	return b
}

func (b *DeliverSmBuilder) EsmClass(v EsmClass) *DeliverSmBuilder { b.p.EsmClass = v; return b }

func (b *DeliverSmBuilder) RegisteredDelivery(v RegisteredDelivery) *DeliverSmBuilder {
	b.p.RegisteredDelivery = v
	return b
}

func (b *DeliverSmBuilder) DataCoding(v uint8) *DeliverSmBuilder { b.p.DataCoding = v; return b }

func (b *DeliverSmBuilder) ShortMessage(v []byte) *DeliverSmBuilder { b.p.ShortMessage = v; return b }

func (b *DeliverSmBuilder) Tlv(t Tlv) *DeliverSmBuilder { b.p.Tlvs = append(b.p.Tlvs, t); return b }

// MessagePayload adds a message_payload TLV; Build clears ShortMessage
// since the two are mutually exclusive on the wire.
func (b *DeliverSmBuilder) MessagePayload(v []byte) *DeliverSmBuilder {
	return b.Tlv(NewTlv(TagMessagePayload, BytesValue(v)))
}

// Build returns the accumulated DeliverSm, with ShortMessage cleared if a
// message_payload TLV was added.
func (b *DeliverSmBuilder) Build() *DeliverSm {
	p := b.p
	if p.hasMessagePayload() {
		p.ShortMessage = nil
	}
	return &p
}

// SubmitMultiBuilder accumulates a SubmitMulti's fields via chained
// calls, terminated by Build.
type SubmitMultiBuilder struct {
	p SubmitMulti
}

// NewSubmitMultiBuilder starts a new SubmitMultiBuilder.
func NewSubmitMultiBuilder() *SubmitMultiBuilder { return &SubmitMultiBuilder{} }

func (b *SubmitMultiBuilder) ServiceType(v string) *SubmitMultiBuilder {
	b.p.ServiceType = v
	return b
}

func (b *SubmitMultiBuilder) Source(ton, npi uint8, addr string) *SubmitMultiBuilder {
	b.p.SourceAddrTon, b.p.SourceAddrNpi, b.p.SourceAddr = ton, npi, addr
	return b
}

func (b *SubmitMultiBuilder) Destination(d DestAddress) *SubmitMultiBuilder {
	b.p.DestAddresses = append(b.p.DestAddresses, d)
	return b
}

func (b *SubmitMultiBuilder) EsmClass(v EsmClass) *SubmitMultiBuilder { b.p.EsmClass = v; return b }

func (b *SubmitMultiBuilder) RegisteredDelivery(v RegisteredDelivery) *SubmitMultiBuilder {
	b.p.RegisteredDelivery = v
	return b
}

func (b *SubmitMultiBuilder) DataCoding(v uint8) *SubmitMultiBuilder { b.p.DataCoding = v; return b }

func (b *SubmitMultiBuilder) ShortMessage(v []byte) *SubmitMultiBuilder {
	b.p.ShortMessage = v
	return b
}

func (b *SubmitMultiBuilder) Tlv(t Tlv) *SubmitMultiBuilder { b.p.Tlvs = append(b.p.Tlvs, t); return b }

// MessagePayload adds a message_payload TLV; Build clears ShortMessage
// since the two are mutually exclusive on the wire.
func (b *SubmitMultiBuilder) MessagePayload(v []byte) *SubmitMultiBuilder {
	return b.Tlv(NewTlv(TagMessagePayload, BytesValue(v)))
}

// Build returns the accumulated SubmitMulti, with ShortMessage cleared if
// a message_payload TLV was added.
func (b *SubmitMultiBuilder) Build() *SubmitMulti {
	p := b.p
	if p.hasMessagePayload() {
		p.ShortMessage = nil
	}
	return &p
}

// BroadcastSmBuilder accumulates a BroadcastSm's fields via chained
// calls, terminated by Build.
type BroadcastSmBuilder struct {
	p BroadcastSm
}

// NewBroadcastSmBuilder starts a new BroadcastSmBuilder.
func NewBroadcastSmBuilder() *BroadcastSmBuilder { return &BroadcastSmBuilder{} }

func (b *BroadcastSmBuilder) ServiceType(v string) *BroadcastSmBuilder {
	b.p.ServiceType = v
	return b
}

func (b *BroadcastSmBuilder) Source(ton, npi uint8, addr string) *BroadcastSmBuilder {
	b.p.SourceAddrTon, b.p.SourceAddrNpi, b.p.SourceAddr = ton, npi, addr
	return b
}

func (b *BroadcastSmBuilder) MessageID(v string) *BroadcastSmBuilder { b.p.MessageID = v; return b }

func (b *BroadcastSmBuilder) Tlv(t Tlv) *BroadcastSmBuilder { b.p.Tlvs = append(b.p.Tlvs, t); return b }

// Build returns the accumulated BroadcastSm.
func (b *BroadcastSmBuilder) Build() *BroadcastSm {
	p := b.p
	return &p
}

// BindTransmitterBuilder accumulates a BindTransmitter's fields via
// chained calls, terminated by Build.
type BindTransmitterBuilder struct {
	p BindTransmitter
}

// NewBindTransmitterBuilder starts a new BindTransmitterBuilder.
func NewBindTransmitterBuilder() *BindTransmitterBuilder { return &BindTransmitterBuilder{} }

func (b *BindTransmitterBuilder) SystemID(v string) *BindTransmitterBuilder {
	b.p.SystemID = v
	return b
}

func (b *BindTransmitterBuilder) Password(v string) *BindTransmitterBuilder {
	b.p.Password = v
	return b
}

func (b *BindTransmitterBuilder) SystemType(v string) *BindTransmitterBuilder {
	b.p.SystemType = v
	return b
}

func (b *BindTransmitterBuilder) InterfaceVersion(v uint8) *BindTransmitterBuilder {
	b.p.InterfaceVersion = v
	return b
}

func (b *BindTransmitterBuilder) Addr(ton, npi uint8, addressRange string) *BindTransmitterBuilder {
	b.p.AddrTon, b.p.AddrNpi, b.p.AddressRange = ton, npi, addressRange
	return b
}

// Build returns the accumulated BindTransmitter.
func (b *BindTransmitterBuilder) Build() *BindTransmitter {
	p := b.p
	return &p
}

// BindReceiverBuilder accumulates a BindReceiver's fields via chained
// calls, terminated by Build.
type BindReceiverBuilder struct {
	p BindReceiver
}

// NewBindReceiverBuilder starts a new BindReceiverBuilder.
func NewBindReceiverBuilder() *BindReceiverBuilder { return &BindReceiverBuilder{} }

func (b *BindReceiverBuilder) SystemID(v string) *BindReceiverBuilder { b.p.SystemID = v; return b }

func (b *BindReceiverBuilder) Password(v string) *BindReceiverBuilder { b.p.Password = v; return b }

func (b *BindReceiverBuilder) SystemType(v string) *BindReceiverBuilder {
	b.p.SystemType = v
	return b
}

func (b *BindReceiverBuilder) InterfaceVersion(v uint8) *BindReceiverBuilder {
	b.p.InterfaceVersion = v
	return b
}

func (b *BindReceiverBuilder) Addr(ton, npi uint8, addressRange string) *BindReceiverBuilder {
	b.p.AddrTon, b.p.AddrNpi, b.p.AddressRange = ton, npi, addressRange
	return b
}

// Build returns the accumulated BindReceiver.
func (b *BindReceiverBuilder) Build() *BindReceiver {
	p := b.p
	return &p
}

// BindTransceiverBuilder accumulates a BindTransceiver's fields via
// chained calls, terminated by Build.
type BindTransceiverBuilder struct {
	p BindTransceiver
}

// NewBindTransceiverBuilder starts a new BindTransceiverBuilder.
func NewBindTransceiverBuilder() *BindTransceiverBuilder { return &BindTransceiverBuilder{} }

func (b *BindTransceiverBuilder) SystemID(v string) *BindTransceiverBuilder {
	b.p.SystemID = v
	return b
}

func (b *BindTransceiverBuilder) Password(v string) *BindTransceiverBuilder {
	b.p.Password = v
	return b
}

func (b *BindTransceiverBuilder) SystemType(v string) *BindTransceiverBuilder {
	b.p.SystemType = v
	return b
}

func (b *BindTransceiverBuilder) InterfaceVersion(v uint8) *BindTransceiverBuilder {
	b.p.InterfaceVersion = v
	return b
}

func (b *BindTransceiverBuilder) Addr(ton, npi uint8, addressRange string) *BindTransceiverBuilder {
	b.p.AddrTon, b.p.AddrNpi, b.p.AddressRange = ton, npi, addressRange
	return b
}

// Build returns the accumulated BindTransceiver.
func (b *BindTransceiverBuilder) Build() *BindTransceiver {
	p := b.p
	return &p
}
