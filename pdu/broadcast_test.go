package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastSmRoundTrip(t *testing.T) {
	b := &BroadcastSm{
		ServiceType: "svc",
		SourceAddr:  "src",
		MessageID:   "bmsg1",
		Tlvs: []Tlv{
			NewTlv(TagBroadcastContentType, BroadcastContentTypeValue{BroadcastContentType{NetworkType: NetworkTypeGSM, ContentType: 1}}),
			NewTlv(TagBroadcastRepNum, Uint16Value(10)),
			NewTlv(TagBroadcastFrequencyInterval, BroadcastFrequencyIntervalValue{BroadcastFrequencyInterval{Unit: FreqUnitHours, Value: 1}}),
		},
	}
	got := roundTrip(t, b).(*BroadcastSm)
	assert.Equal(t, b.Tlvs, got.Tlvs)
	assert.Equal(t, b.MessageID, got.MessageID)

	resp := b.Response("bmsg1")
	assert.Equal(t, BroadcastSmRespID, resp.CommandID())
}

func TestQueryBroadcastSmRoundTripWithReference(t *testing.T) {
	ref := uint16(99)
	q := &QueryBroadcastSm{MessageID: "bmsg1", SourceAddr: "src", UserMessageReference: &ref}
	got := roundTrip(t, q).(*QueryBroadcastSm)
	require.NotNil(t, got.UserMessageReference)
	assert.Equal(t, ref, *got.UserMessageReference)
}

func TestQueryBroadcastSmMismatchedSingleTlvIsError(t *testing.T) {
	q := &QueryBroadcastSm{MessageID: "bmsg1", SourceAddr: "src"}
	dst := make([]byte, q.Length())
	_, err := q.Encode(dst)
	require.NoError(t, err)
	// Append a TLV of the wrong tag where user_message_reference would go.
	wrong := NewTlv(TagSourcePort, Uint16Value(1))
	wrongBuf := make([]byte, wrong.Length())
	_, _ = wrong.Encode(wrongBuf)
	dst = append(dst, wrongBuf...)

	got := &QueryBroadcastSm{}
	_, err = got.Decode(dst)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindUnsupportedKey, de.Kind)
}

func TestCancelBroadcastSmRoundTrip(t *testing.T) {
	c := &CancelBroadcastSm{ServiceType: "svc", MessageID: "bmsg1", SourceAddr: "src"}
	got := roundTrip(t, c).(*CancelBroadcastSm)
	assert.Equal(t, c.MessageID, got.MessageID)

	resp := c.Response()
	assert.Equal(t, 0, resp.Length())
}

func TestQueryBroadcastSmRespRoundTrip(t *testing.T) {
	resp := &QueryBroadcastSmResp{
		MessageID: "bmsg1",
		Tlvs:      []Tlv{NewTlv(TagMessageState, Uint8Value(2))},
	}
	got := roundTrip(t, resp).(*QueryBroadcastSmResp)
	assert.Equal(t, resp.Tlvs, got.Tlvs)
}
