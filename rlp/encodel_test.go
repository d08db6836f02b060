package rlp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var encodeU64Tests = []struct {
	val    uint64
	expect []byte
}{
	{val: 0, expect: decodeHex("80")},
	{val: 7, expect: decodeHex("07")},
	{val: 126, expect: decodeHex("7e")},
	{val: 127, expect: decodeHex("7f")},
	{val: 128, expect: decodeHex("8180")},
	{val: 1024, expect: decodeHex("820400")},
	{val: 0xffffffffffffffff, expect: decodeHex("88ffffffffffffffff")},
}

func TestEncodeU64(t *testing.T) {
	for i, tt := range encodeU64Tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert := assert.New(t)
			buf := make([]byte, 9)
			n := EncodeU64(tt.val, buf)
			assert.Equal(len(tt.expect), n)
			assert.Equal(U64Len(tt.val), n)
			assert.Equal(tt.expect, buf[:n])
		})
	}
}

func TestEncodeListPrefix(t *testing.T) {
	assert := assert.New(t)
	buf := make([]byte, 10)

	n := EncodeListPrefix(3, buf)
	assert.Equal(1, n)
	assert.Equal(ListPrefixLen(3), n)
	assert.Equal(byte(0xc3), buf[0])

	n = EncodeListPrefix(1024, buf)
	assert.Equal(3, n)
	assert.Equal(ListPrefixLen(1024), n)
	assert.Equal(decodeHex("f90400"), buf[:n])
}

func TestEncodeString(t *testing.T) {
	assert := assert.New(t)
	buf := make([]byte, 8)

	n := EncodeString([]byte{0x7e}, buf)
	assert.Equal(decodeHex("7e"), buf[:n])
	n = EncodeString([]byte{0xff}, buf)
	assert.Equal(decodeHex("81ff"), buf[:n])
	n = EncodeString(nil, buf)
	assert.Equal(decodeHex("80"), buf[:n])
	n = EncodeString([]byte("dog"), buf)
	assert.Equal(decodeHex("83646f67"), buf[:n])
	assert.Equal(StringLen([]byte("dog")), n)
}
