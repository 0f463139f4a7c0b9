package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitSmBuilderClearsShortMessageAtConstruction(t *testing.T) {
	s := NewSubmitSmBuilder().
		Source(1, 1, "src").
		Destination(2, 2, "dst").
		ShortMessage([]byte("should not be sent")).
		MessagePayload([]byte("payload content")).
		Build()

	assert.Empty(t, s.ShortMessage)
	tlv, ok := Get(s.Tlvs, TagMessagePayload)
	assert.True(t, ok)
	assert.Equal(t, BytesValue("payload content"), tlv.Value)
}

func TestSubmitSmBuilderKeepsShortMessageWithoutPayload(t *testing.T) {
	s := NewSubmitSmBuilder().
		Source(1, 1, "src").
		Destination(2, 2, "dst").
		ShortMessage([]byte("hello")).
		Build()

	assert.Equal(t, []byte("hello"), s.ShortMessage)
}

func TestDeliverSmBuilderClearsShortMessageAtConstruction(t *testing.T) {
	d := NewDeliverSmBuilder().
		Source(1, 1, "src").
		Destination(2, 2, "dst").
		ShortMessage([]byte("should not be sent")).
		MessagePayload([]byte("payload content")).
		Build()

	assert.Empty(t, d.ShortMessage)
}

func TestSubmitMultiBuilderClearsShortMessageAtConstruction(t *testing.T) {
	sm := NewSubmitMultiBuilder().
		Source(1, 1, "src").
		Destination(DestAddress{Flag: DestFlagSME, DestinationAddr: "dst1"}).
		ShortMessage([]byte("should not be sent")).
		MessagePayload([]byte("payload content")).
		Build()

	assert.Empty(t, sm.ShortMessage)
	assert.Len(t, sm.DestAddresses, 1)
}

func TestBroadcastSmBuilder(t *testing.T) {
	b := NewBroadcastSmBuilder().
		ServiceType("svc").
		Source(1, 1, "src").
		MessageID("bmsg1").
		Tlv(NewTlv(TagBroadcastRepNum, Uint16Value(10))).
		Build()

	got := roundTrip(t, b).(*BroadcastSm)
	assert.Equal(t, b.Tlvs, got.Tlvs)
	assert.Equal(t, "bmsg1", got.MessageID)
}

func TestBindTransmitterBuilder(t *testing.T) {
	bnd := NewBindTransmitterBuilder().
		SystemID("sys").
		Password("pass").
		SystemType("type").
		InterfaceVersion(0x50).
		Addr(1, 1, "range").
		Build()

	got := roundTrip(t, bnd).(*BindTransmitter)
	assert.Equal(t, "sys", got.SystemID)
	assert.Equal(t, uint8(0x50), got.InterfaceVersion)
}

func TestBindReceiverBuilder(t *testing.T) {
	bnd := NewBindReceiverBuilder().
		SystemID("sys").
		Password("pass").
		SystemType("type").
		InterfaceVersion(0x50).
		Addr(1, 1, "range").
		Build()

	got := roundTrip(t, bnd).(*BindReceiver)
	assert.Equal(t, "sys", got.SystemID)
}

func TestBindTransceiverBuilder(t *testing.T) {
	bnd := NewBindTransceiverBuilder().
		SystemID("sys").
		Password("pass").
		SystemType("type").
		InterfaceVersion(0x50).
		Addr(1, 1, "range").
		Build()

	got := roundTrip(t, bnd).(*BindTransceiver)
	assert.Equal(t, "sys", got.SystemID)
}
