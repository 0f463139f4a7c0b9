package pdu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsingGoodDeliveryReceipt(t *testing.T) {
	good := "id:123123123 sub:0 dlvrd:0 submit date:1507011202 done date:1507011101 stat:DELIVRD err:0 text:Test information"
	dr, err := ParseDeliveryReceipt(good)
	require.NoError(t, err)
	assert.Equal(t, "123123123", dr.Id)

	extime, _ := time.ParseInLocation("0601021504", "1507011202", time.Local)
	assert.Equal(t, extime, dr.SubmitDate)
	assert.Equal(t, good, dr.String())
}

func TestParsingBadDeliveryReceipt(t *testing.T) {
	keys := "id:123123123 dfdfsub:0 dlvrd:0 submit date:1507011202 done date:1507011101 stat:DELIVRD err:0 text:Test information"
	_, err := ParseDeliveryReceipt(keys)
	require.Error(t, err)

	missingkeys := "id:123123123 sub:0 dlvrd:0 submit date:1507011202 stat:DELIVRD err:0 text:Test information"
	_, err = ParseDeliveryReceipt(missingkeys)
	require.Error(t, err)

	date := "id:123123123 sub:0 dlvrd:0 submit date:150701adsfas1202 done date:1507011101 stat:DELIVRD err:0 text:Test information"
	_, err = ParseDeliveryReceipt(date)
	require.Error(t, err)
}

func TestParsingUUIDDeliveryReceipt(t *testing.T) {
	dlr := "id:a03ea27b-9bb4-4d5e-b87f-3f578ab46153 sub:001 dlvrd:001 submit date:161003211236 done date:161003211236 stat:DELIVRD err:000 text:-"
	r, err := ParseDeliveryReceipt(dlr)
	require.NoError(t, err)
	assert.Equal(t, "a03ea27b-9bb4-4d5e-b87f-3f578ab46153", r.Id)
	assert.Equal(t, DelStatDelivered, r.Stat)
}

func TestParseDateTimeAcceptsAllFormats(t *testing.T) {
	_, err := ParseDateTime("1507011202")
	require.NoError(t, err)
	_, err = ParseDateTime("20150701120200")
	require.NoError(t, err)
	_, err = ParseDateTime("150701120200")
	require.NoError(t, err)
	_, err = ParseDateTime("garbage")
	require.Error(t, err)
}
