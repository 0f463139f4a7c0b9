package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip encodes p, decodes the result into a fresh zero value of the
// same underlying type via NewPDU, and returns the decoded PDU for the
// caller to assert field-by-field.
func roundTrip(t *testing.T, p PDU) PDU {
	t.Helper()
	dst := make([]byte, p.Length())
	n, err := p.Encode(dst)
	require.NoError(t, err)
	assert.Equal(t, p.Length(), n)

	got := NewPDU(p.CommandID())
	consumed, err := got.Decode(dst)
	require.NoError(t, err)
	assert.Equal(t, len(dst), consumed)
	return got
}

func TestNewPDUUnknownCommandIsOther(t *testing.T) {
	p := NewPDU(CommandID(0x99999999))
	other, ok := p.(*Other)
	require.True(t, ok)
	assert.Equal(t, CommandID(0x99999999), other.CommandID())

	n, err := other.Decode([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, other.Length())
}

func TestSeparateUDH(t *testing.T) {
	udh, rest, err := SeparateUDH([]byte{0x02, 0xAA, 0xBB, 'h', 'i'})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0xAA, 0xBB}, udh)
	assert.Equal(t, []byte("hi"), rest)
}

func TestSeparateUDHEmptyContent(t *testing.T) {
	_, _, err := SeparateUDH(nil)
	require.Error(t, err)
}

func TestSeparateUDHLengthExceedsContent(t *testing.T) {
	_, _, err := SeparateUDH([]byte{0x05, 0x01})
	require.Error(t, err)
}

func TestBindTransmitterRoundTrip(t *testing.T) {
	bt := &BindTransmitter{bindBody{
		SystemID:         "sys",
		Password:         "pass",
		SystemType:       "type",
		InterfaceVersion: 0x50,
		AddrTon:          1,
		AddrNpi:          1,
		AddressRange:     "rng",
	}}
	got := roundTrip(t, bt).(*BindTransmitter)
	assert.Equal(t, bt.bindBody, got.bindBody)

	resp := bt.Response("sys")
	assert.Equal(t, BindTransmitterRespID, resp.CommandID())
}

func TestBindRespWithScInterfaceVersion(t *testing.T) {
	v := uint8(0x50)
	resp := &BindTransmitterResp{bindRespBody{SystemID: "sys", ScInterfaceVersion: &v}}
	got := roundTrip(t, resp).(*BindTransmitterResp)
	require.NotNil(t, got.ScInterfaceVersion)
	assert.Equal(t, v, *got.ScInterfaceVersion)
}

func TestBindRespPartialBodyHasNoVersion(t *testing.T) {
	resp := &BindReceiverResp{bindRespBody{SystemID: "sys"}}
	dst := make([]byte, resp.Length())
	_, err := resp.Encode(dst)
	require.NoError(t, err)

	got := &BindReceiverResp{}
	_, err = got.Decode(dst)
	require.NoError(t, err)
	assert.Nil(t, got.ScInterfaceVersion)
}

func TestOutbindRoundTrip(t *testing.T) {
	ob := &Outbind{SystemID: "sys", Password: "pass"}
	got := roundTrip(t, ob).(*Outbind)
	assert.Equal(t, ob, got)
}

func TestEmptyBodiedPDUs(t *testing.T) {
	for _, p := range []PDU{&Unbind{}, &UnbindResp{}, &EnquireLink{}, &EnquireLinkResp{}, &GenericNack{}} {
		assert.Equal(t, 0, p.Length())
		n, err := p.Encode(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		n, err = p.Decode(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	}
}

func TestUnbindResponseBuilder(t *testing.T) {
	u := &Unbind{}
	assert.Equal(t, UnbindRespID, u.Response().CommandID())
	el := &EnquireLink{}
	assert.Equal(t, EnquireLinkRespID, el.Response().CommandID())
}

func TestAlertNotificationRoundTrip(t *testing.T) {
	status := uint8(2)
	an := &AlertNotification{
		SourceAddrTon:        1,
		SourceAddrNpi:        1,
		SourceAddr:           "src",
		EsmeAddrTon:          2,
		EsmeAddrNpi:          2,
		EsmeAddr:             "esme",
		MsAvailabilityStatus: &status,
	}
	got := roundTrip(t, an).(*AlertNotification)
	require.NotNil(t, got.MsAvailabilityStatus)
	assert.Equal(t, status, *got.MsAvailabilityStatus)
	assert.Equal(t, an.SourceAddr, got.SourceAddr)
	assert.Equal(t, an.EsmeAddr, got.EsmeAddr)
}

func TestAlertNotificationWithoutOptionalTlv(t *testing.T) {
	an := &AlertNotification{SourceAddr: "a", EsmeAddr: "b"}
	got := roundTrip(t, an).(*AlertNotification)
	assert.Nil(t, got.MsAvailabilityStatus)
}
