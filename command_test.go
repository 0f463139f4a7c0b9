package smpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smppcodec/smpp/pdu"
)

func TestCommandRoundTrip(t *testing.T) {
	cmd := NewCommand(pdu.StatusOK, 42, &pdu.EnquireLink{})
	dst := make([]byte, cmd.Length())
	n, err := cmd.Encode(dst)
	require.NoError(t, err)
	assert.Equal(t, cmd.Length(), n)
	assert.Equal(t, 16, n)

	got, err := decodeCommand(dst[4:])
	require.NoError(t, err)
	assert.Equal(t, pdu.StatusOK, got.Status)
	assert.Equal(t, uint32(42), got.SequenceNumber)
	assert.Equal(t, pdu.EnquireLinkID, got.CommandID())
}

func TestCommandBuilder(t *testing.T) {
	cmd := NewCommandBuilder().
		Status(pdu.StatusThrottled).
		SequenceNumber(7).
		PDU(&pdu.Unbind{}).
		Build()

	assert.Equal(t, pdu.StatusThrottled, cmd.Status)
	assert.Equal(t, uint32(7), cmd.SequenceNumber)
	assert.Equal(t, pdu.UnbindID, cmd.CommandID())
}

func TestCommandWithNilPDU(t *testing.T) {
	cmd := Command{Status: pdu.StatusOK, SequenceNumber: 1}
	assert.Equal(t, pdu.CommandID(0), cmd.CommandID())
	assert.Equal(t, 16, cmd.Length())

	dst := make([]byte, cmd.Length())
	n, err := cmd.Encode(dst)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}

func TestCommandEncodeBufferTooSmall(t *testing.T) {
	cmd := NewCommand(pdu.StatusOK, 1, &pdu.EnquireLink{})
	_, err := cmd.Encode(make([]byte, 4))
	require.Error(t, err)
}

func TestCommandWithSubmitSmBody(t *testing.T) {
	body := &pdu.SubmitSm{
		SourceAddr:      "src",
		DestinationAddr: "dst",
		ShortMessage:    []byte("hello"),
	}
	cmd := NewCommand(pdu.StatusOK, 100, body)
	dst := make([]byte, cmd.Length())
	_, err := cmd.Encode(dst)
	require.NoError(t, err)

	got, err := decodeCommand(dst[4:])
	require.NoError(t, err)
	decoded, ok := got.PDU.(*pdu.SubmitSm)
	require.True(t, ok)
	assert.Equal(t, body.ShortMessage, decoded.ShortMessage)
}

func TestDecodeCommandTooShortIsError(t *testing.T) {
	_, err := decodeCommand([]byte{1, 2, 3})
	require.Error(t, err)
}
