package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitMultiRoundTripMixedDestinations(t *testing.T) {
	sm := &SubmitMulti{
		ServiceType: "svc",
		SourceAddr:  "src",
		DestAddresses: []DestAddress{
			{Flag: DestFlagSME, AddrTon: 1, AddrNpi: 1, DestinationAddr: "dst1"},
			{Flag: DestFlagDistributionList, DestinationAddr: "list1"},
		},
		ShortMessage: []byte("hi"),
	}
	got := roundTrip(t, sm).(*SubmitMulti)
	require.Len(t, got.DestAddresses, 2)
	assert.Equal(t, sm.DestAddresses[0], got.DestAddresses[0])
	assert.Equal(t, sm.DestAddresses[1], got.DestAddresses[1])
	assert.Equal(t, sm.ShortMessage, got.ShortMessage)

	resp := sm.Response("msgid4", []UnsuccessSme{
		{DestAddrTon: 1, DestAddrNpi: 1, DestinationAddr: "dst1", ErrorStatusCode: StatusSubmitFailed},
	})
	assert.Equal(t, "msgid4", resp.MessageID)
	assert.Len(t, resp.UnsuccessSmes, 1)
}

func TestSubmitMultiMessagePayloadSuppressesShortMessage(t *testing.T) {
	sm := &SubmitMulti{
		SourceAddr:    "src",
		DestAddresses: []DestAddress{{Flag: DestFlagSME, DestinationAddr: "dst1"}},
		ShortMessage:  []byte("should not be sent"),
		Tlvs:          []Tlv{NewTlv(TagMessagePayload, BytesValue("payload content"))},
	}
	assert.True(t, sm.hasMessagePayload())
	assert.Empty(t, sm.effectiveShortMessage())

	dst := make([]byte, sm.Length())
	n, err := sm.Encode(dst)
	require.NoError(t, err)
	assert.Equal(t, len(dst), n)

	got := &SubmitMulti{}
	_, err = got.Decode(dst)
	require.NoError(t, err)
	assert.Empty(t, got.ShortMessage)
	tlv, ok := Get(got.Tlvs, TagMessagePayload)
	require.True(t, ok)
	assert.Equal(t, BytesValue("payload content"), tlv.Value)
}

func TestDestAddressUnsupportedFlag(t *testing.T) {
	c := newCursor([]byte{0x09})
	_, err := decodeDestAddress(c)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindUnsupportedKey, de.Kind)
}

func TestSubmitMultiRespRoundTrip(t *testing.T) {
	resp := &SubmitMultiResp{
		MessageID: "msgid4",
		UnsuccessSmes: []UnsuccessSme{
			{DestAddrTon: 1, DestAddrNpi: 1, DestinationAddr: "dst1", ErrorStatusCode: StatusThrottled},
			{DestAddrTon: 2, DestAddrNpi: 2, DestinationAddr: "dst2", ErrorStatusCode: StatusSystemError},
		},
	}
	got := roundTrip(t, resp).(*SubmitMultiResp)
	assert.Equal(t, resp.UnsuccessSmes, got.UnsuccessSmes)
}

func TestSubmitMultiRespToleratesMissingUnsuccessCount(t *testing.T) {
	resp := &SubmitMultiResp{MessageID: "msgid4"}
	dst := make([]byte, resp.Length())
	_, err := resp.Encode(dst)
	require.NoError(t, err)
	// Trim to just the message_id, as some SMSCs omit a trailing zero count.
	trimmed := dst[:COctetStringLength(resp.MessageID)]

	got := &SubmitMultiResp{}
	_, err = got.Decode(trimmed)
	require.NoError(t, err)
	assert.Equal(t, resp.MessageID, got.MessageID)
	assert.Empty(t, got.UnsuccessSmes)
}
