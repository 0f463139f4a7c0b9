package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUDH8(t *testing.T) {
	b, err := UDH8(7, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x00, 0x03, 7, 3, 1}, b)
}

func TestUDH16(t *testing.T) {
	b, err := UDH16(0x0102, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0x08, 0x04, 0x01, 0x02, 3, 2}, b)
}

func TestUDHRejectsZeroTotal(t *testing.T) {
	_, err := UDH8(1, 0, 1)
	require.Error(t, err)
}

func TestUDHRejectsZeroPart(t *testing.T) {
	_, err := UDH8(1, 3, 0)
	require.Error(t, err)
}

func TestUDHRejectsPartExceedingTotal(t *testing.T) {
	_, err := UDH16(1, 2, 3)
	require.Error(t, err)
}

func TestSeparateUDHWithConcatHeader(t *testing.T) {
	header, err := UDH8(1, 2, 1)
	require.NoError(t, err)
	content := append(append([]byte{}, header...), []byte("hello world")...)

	udh, rest, err := SeparateUDH(content)
	require.NoError(t, err)
	assert.Equal(t, header, udh)
	assert.Equal(t, []byte("hello world"), rest)
}
