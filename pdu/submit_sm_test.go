package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSmRoundTrip(t *testing.T) {
	s := &SubmitSm{
		ServiceType:     "svc",
		SourceAddrTon:   1,
		SourceAddrNpi:   1,
		SourceAddr:      "src",
		DestAddrTon:     2,
		DestAddrNpi:     2,
		DestinationAddr: "dst",
		EsmClass:        ParseEsmClass(0x00),
		ShortMessage:    []byte("hello world"),
		Tlvs:            []Tlv{NewTlv(TagUserMessageReference, Uint16Value(0x42))},
	}
	got := roundTrip(t, s).(*SubmitSm)
	assert.Equal(t, s.ShortMessage, got.ShortMessage)
	assert.Equal(t, s.Tlvs, got.Tlvs)
	assert.Equal(t, s.DestinationAddr, got.DestinationAddr)

	resp := s.Response("msgid1")
	assert.Equal(t, "msgid1", resp.MessageID)
	assert.Equal(t, SubmitSmRespID, resp.CommandID())
}

func TestSubmitSmMessagePayloadSuppressesShortMessage(t *testing.T) {
	s := &SubmitSm{
		SourceAddr:      "src",
		DestinationAddr: "dst",
		ShortMessage:    []byte("should not be sent"),
		Tlvs:            []Tlv{NewTlv(TagMessagePayload, BytesValue("payload content"))},
	}
	assert.True(t, s.hasMessagePayload())
	assert.Empty(t, s.effectiveShortMessage())

	dst := make([]byte, s.Length())
	n, err := s.Encode(dst)
	require.NoError(t, err)
	assert.Equal(t, len(dst), n)

	got := &SubmitSm{}
	_, err = got.Decode(dst)
	require.NoError(t, err)
	assert.Empty(t, got.ShortMessage)
	tlv, ok := Get(got.Tlvs, TagMessagePayload)
	require.True(t, ok)
	assert.Equal(t, BytesValue("payload content"), tlv.Value)
}

func TestSubmitSmRespToleratesEmptyBody(t *testing.T) {
	resp := &SubmitSmResp{}
	n, err := resp.Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, resp.MessageID)
}
