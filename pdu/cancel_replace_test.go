package pdu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancelSmRoundTrip(t *testing.T) {
	c := &CancelSm{
		ServiceType:     "svc",
		MessageID:       "msg1",
		SourceAddrTon:   1,
		SourceAddrNpi:   1,
		SourceAddr:      "src",
		DestAddrTon:     2,
		DestAddrNpi:     2,
		DestinationAddr: "dst",
	}
	got := roundTrip(t, c).(*CancelSm)
	assert.Equal(t, c, got)

	resp := c.Response()
	assert.Equal(t, 0, resp.Length())
	assert.Equal(t, CancelSmRespID, resp.CommandID())
}

func TestReplaceSmRoundTrip(t *testing.T) {
	r := &ReplaceSm{
		MessageID:          "msg1",
		SourceAddrTon:      1,
		SourceAddrNpi:      1,
		SourceAddr:         "src",
		RegisteredDelivery: RegisteredDelivery{Receipt: ReceiptOnSuccessOrFail},
		SmDefaultMsgID:     3,
		ShortMessage:       []byte("hello"),
	}
	got := roundTrip(t, r).(*ReplaceSm)
	assert.Equal(t, r.MessageID, got.MessageID)
	assert.Equal(t, r.ShortMessage, got.ShortMessage)
	assert.Equal(t, r.RegisteredDelivery, got.RegisteredDelivery)
	assert.True(t, got.ScheduleDeliveryTime.IsZero())

	resp := r.Response()
	assert.Equal(t, ReplaceSmRespID, resp.CommandID())
}

func TestReplaceSmWithScheduleTime(t *testing.T) {
	r := &ReplaceSm{
		MessageID:            "msg1",
		SourceAddr:           "src",
		ScheduleDeliveryTime: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		ShortMessage:         []byte("x"),
	}
	got := roundTrip(t, r).(*ReplaceSm)
	assert.False(t, got.ScheduleDeliveryTime.IsZero())
}
