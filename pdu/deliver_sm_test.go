package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverSmRoundTrip(t *testing.T) {
	d := &DeliverSm{
		SourceAddr:      "src",
		DestinationAddr: "dst",
		EsmClass:        ParseEsmClass(byte(TypeDeliveryReceipt) << 2),
		ShortMessage:    []byte("id:1 sub:1 dlvrd:1 submit date:2607301000 done date:2607301005 stat:DELIVRD err:0 text:ok"),
	}
	got := roundTrip(t, d).(*DeliverSm)
	assert.Equal(t, d.ShortMessage, got.ShortMessage)

	resp := d.Response("msgid2")
	assert.Equal(t, "msgid2", resp.MessageID)
}

func TestDeliverSmMessagePayloadSuppressesShortMessage(t *testing.T) {
	d := &DeliverSm{
		SourceAddr:      "src",
		DestinationAddr: "dst",
		ShortMessage:    []byte("ignored"),
		Tlvs:            []Tlv{NewTlv(TagMessagePayload, BytesValue("real content"))},
	}
	dst := make([]byte, d.Length())
	_, err := d.Encode(dst)
	require.NoError(t, err)

	got := &DeliverSm{}
	_, err = got.Decode(dst)
	require.NoError(t, err)
	assert.Empty(t, got.ShortMessage)
}

func TestDeliverSmRespToleratesEmptyBody(t *testing.T) {
	resp := &DeliverSmResp{}
	n, err := resp.Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
