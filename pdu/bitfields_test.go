package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEsmClassRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		e := ParseEsmClass(byte(b))
		assert.Equal(t, byte(b), e.Byte(), "byte %#x", b)
	}
}

func TestEsmClassOverlappingFields(t *testing.T) {
	e := ParseEsmClass(0x04) // Type bits = 0001
	assert.Equal(t, e.Type, e.Ansi41Specific)
}

func TestRegisteredDeliveryRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		rd := ParseRegisteredDelivery(byte(b))
		assert.Equal(t, byte(b), rd.Byte(), "byte %#x", b)
	}
}

func TestItsSessionInfoRoundTrip(t *testing.T) {
	i := ItsSessionInfo{SessionNumber: 200, SequenceNumber: 0x7F, EndOfSession: true}
	bytes := i.Bytes()
	got := ParseItsSessionInfo(bytes)
	assert.Equal(t, i, got)
}

func TestCallbackNumPresIndRoundTrip(t *testing.T) {
	c := CallbackNumPresInd{Presentation: 2, Screening: 3}
	assert.Equal(t, c, ParseCallbackNumPresInd(c.Byte()))
}

func TestMsMsgWaitFacilitiesRoundTrip(t *testing.T) {
	m := MsMsgWaitFacilities{Active: true, IndicatorType: 1}
	assert.Equal(t, m, ParseMsMsgWaitFacilities(m.Byte()))

	m2 := MsMsgWaitFacilities{Active: false, IndicatorType: 3}
	assert.Equal(t, m2, ParseMsMsgWaitFacilities(m2.Byte()))
}

func TestBroadcastContentTypeRoundTrip(t *testing.T) {
	b := BroadcastContentType{NetworkType: 2, ContentType: 0xABCD}
	assert.Equal(t, b, ParseBroadcastContentType(b.Bytes()))
}

func TestBroadcastFrequencyIntervalRoundTrip(t *testing.T) {
	f := BroadcastFrequencyInterval{Unit: FreqUnitWeeks, Value: 1000}
	assert.Equal(t, f, ParseBroadcastFrequencyInterval(f.Bytes()))
}

func TestNetworkErrorCodeRoundTrip(t *testing.T) {
	n := NetworkErrorCode{NetworkType: NetworkTypeANSI136G, ErrorCode: 0x1122}
	assert.Equal(t, n, ParseNetworkErrorCode(n.Bytes()))
}
