package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCOctetStringRoundTrip(t *testing.T) {
	encoded := EncodeCOctetString(nil, "hello")
	assert.Equal(t, []byte("hello\x00"), encoded)
	assert.Equal(t, COctetStringLength("hello"), len(encoded))

	c := newCursor(encoded)
	got, err := c.COctetString("field", 1, 16)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, 0, c.Len())
}

func TestCOctetStringEmptyIsSingleNUL(t *testing.T) {
	encoded := EncodeCOctetString(nil, "")
	assert.Equal(t, []byte{0x00}, encoded)

	c := newCursor(encoded)
	got, err := c.COctetString("field", 1, 16)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestCOctetStringRejectsNonAscii(t *testing.T) {
	c := newCursor([]byte{'a', 0x80, 0x00})
	_, err := c.COctetString("field", 1, 16)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotAscii, de.Kind)
}

func TestCOctetStringRejectsMissingTerminator(t *testing.T) {
	c := newCursor([]byte{'a', 'b', 'c'})
	_, err := c.COctetString("field", 1, 16)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotNullTerminated, de.Kind)
}

func TestCOctetStringRejectsTooLong(t *testing.T) {
	c := newCursor([]byte("1234567890\x00"))
	_, err := c.COctetString("field", 1, 5)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindTooFewBytes, de.Kind)
}

func TestOctetStringBounds(t *testing.T) {
	c := newCursor([]byte{1, 2, 3})
	_, err := c.OctetString("field", 3, 0, 2)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindTooManyBytes, de.Kind)
}

func TestCursorUint16Uint32(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02, 0x00, 0x00, 0x01, 0x00})
	u16, err := c.Uint16("a")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)

	u32, err := c.Uint32("b")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00000100), u32)
}

func TestCursorUnexpectedEOF(t *testing.T) {
	c := newCursor([]byte{0x01})
	_, err := c.Uint16("a")
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindUnexpectedEOF, de.Kind)
}

func TestAnyOctetStringRoundTrip(t *testing.T) {
	a := AnyOctetString([]byte{1, 2, 3})
	dst := make([]byte, a.Length())
	n, err := a.Encode(dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{1, 2, 3}, dst)
}
