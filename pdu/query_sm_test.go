package pdu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySmRoundTrip(t *testing.T) {
	q := &QuerySm{MessageID: "msg1", SourceAddrTon: 1, SourceAddrNpi: 1, SourceAddr: "src"}
	got := roundTrip(t, q).(*QuerySm)
	assert.Equal(t, q, got)
}

func TestQuerySmRespZeroFinalDate(t *testing.T) {
	q := &QuerySm{MessageID: "msg1", SourceAddr: "src"}
	resp := q.Response(time.Time{}, 2, 0)
	got := roundTrip(t, resp).(*QuerySmResp)
	assert.True(t, got.FinalDate.IsZero())
	assert.Equal(t, uint8(2), got.MessageState)
}

func TestQuerySmRespWithFinalDate(t *testing.T) {
	final := time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC)
	resp := &QuerySmResp{MessageID: "msg1", FinalDate: final, MessageState: 2, ErrorCode: 0}
	got := roundTrip(t, resp).(*QuerySmResp)
	assert.Equal(t, resp.MessageID, got.MessageID)
	assert.False(t, got.FinalDate.IsZero())
}

func TestFinalDateLength(t *testing.T) {
	assert.Equal(t, 1, finalDateLength(time.Time{}))
	assert.Equal(t, 17, finalDateLength(time.Now()))
}

func TestParseSmppTimeEmptyIsZero(t *testing.T) {
	tm, err := parseSmppTime("field", "")
	require.NoError(t, err)
	assert.True(t, tm.IsZero())
}

func TestParseSmppTimeInvalidIsError(t *testing.T) {
	_, err := parseSmppTime("field", "not-a-time")
	require.Error(t, err)
}
