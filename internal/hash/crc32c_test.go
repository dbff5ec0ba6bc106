package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C(t *testing.T) {
	// Check value for CRC-32C from the iSCSI specification.
	assert.Equal(t, uint32(0xe3069283), CRC32C([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32C(nil))

	h := NewCRC32C()
	_, _ = h.Write([]byte("1234"))
	_, _ = h.Write([]byte("56789"))
	assert.Equal(t, uint32(0xe3069283), h.Sum32())

	assert.True(t, VerifyCRC32C([]byte("123456789"), 0xe3069283))
	assert.False(t, VerifyCRC32C([]byte("123456780"), 0xe3069283))
}

func TestCRC32CBase64(t *testing.T) {
	// 0xe3069283 big-endian.
	assert.Equal(t, "4waSgw==", CRC32CBase64([]byte("123456789")))
}
