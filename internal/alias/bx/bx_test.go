package bx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestReadWrite verifies that the Put/read pairs round-trip values using
// little-endian byte order.
func TestReadWrite(t *testing.T) {
	{
		b := make([]byte, 2)
		PutU16(b, 0x1234)
		// LE: least-significant byte first
		assert.Equal(t, []byte{0x34, 0x12}, b)
		assert.Equal(t, uint16(0x1234), U16(b))
	}
	{
		b := make([]byte, 4)
		PutU32(b, 0x01020304)
		assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
		assert.Equal(t, uint32(0x01020304), U32(b))
	}
	{
		b := make([]byte, 8)
		PutU64(b, 0x0102030405060708)
		assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, b)
		assert.Equal(t, uint64(0x0102030405060708), U64(b))
	}
}

// TestAtOffset verifies the *At variants against a larger buffer.
func TestAtOffset(t *testing.T) {
	b := make([]byte, 8)
	PutU16At(b, 3, 0xBEEF)
	assert.Equal(t, uint16(0xBEEF), U16At(b, 3))
	assert.Equal(t, byte(0), b[2])
	assert.Equal(t, byte(0), b[5])
}
