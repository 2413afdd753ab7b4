package aes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kristoferssolo/go-blockcipher/crypto/internal/aestables"
)

func TestKeyScheduleVector(t *testing.T) {
	key := hexBytes(t, "0F1571C947D9E8591CB7ADD6AF7F6798")
	c, err := New(key)
	assert.NoError(t, err)

	want := [][4]byte{
		{0x0F, 0x15, 0x71, 0xC9}, {0x47, 0xD9, 0xE8, 0x59}, {0x1C, 0xB7, 0xAD, 0xD6}, {0xAF, 0x7F, 0x67, 0x98},
		{0xDC, 0x90, 0x37, 0xB0}, {0x9B, 0x49, 0xDF, 0xE9}, {0x87, 0xFE, 0x72, 0x3F}, {0x28, 0x81, 0x15, 0xA7},
		{0xD2, 0xC9, 0x6B, 0x84}, {0x49, 0x80, 0xB4, 0x6D}, {0xCE, 0x7E, 0xC6, 0x52}, {0xE6, 0xFF, 0xD3, 0xF5},
		{0xC0, 0xAF, 0x8D, 0x0A}, {0x89, 0x2F, 0x39, 0x67}, {0x47, 0x51, 0xFF, 0x35}, {0xA1, 0xAE, 0x2C, 0xC0},
		{0x2C, 0xDE, 0x37, 0x38}, {0xA5, 0xF1, 0x0E, 0x5F}, {0xE2, 0xA0, 0xF1, 0x6A}, {0x43, 0x0E, 0xDD, 0xAA},
		{0x97, 0x1F, 0x9B, 0x22}, {0x32, 0xEE, 0x95, 0x7D}, {0xD0, 0x4E, 0x64, 0x17}, {0x93, 0x40, 0xB9, 0xBD},
		{0xBE, 0x49, 0xE1, 0xFE}, {0x8C, 0xA7, 0x74, 0x83}, {0x5C, 0xE9, 0x10, 0x94}, {0xCF, 0xA9, 0xA9, 0x29},
		{0x2D, 0x9A, 0x44, 0x74}, {0xA1, 0x3D, 0x30, 0xF7}, {0xFD, 0xD4, 0x20, 0x63}, {0x32, 0x7D, 0x89, 0x4A},
		{0x52, 0x3D, 0x92, 0x57}, {0xF3, 0x00, 0xA2, 0xA0}, {0x0E, 0xD4, 0x82, 0xC3}, {0x3C, 0xA9, 0x0B, 0x89},
		{0x9A, 0x16, 0x35, 0xBC}, {0x69, 0x16, 0x97, 0x1C}, {0x67, 0xC2, 0x15, 0xDF}, {0x5B, 0x6B, 0x1E, 0x56},
		{0xD3, 0x64, 0x84, 0x85}, {0xBA, 0x72, 0x13, 0x99}, {0xDD, 0xB0, 0x06, 0x46}, {0x86, 0xDB, 0x18, 0x10},
	}

	for i, word := range want {
		r, col := i/4, i%4
		got := c.roundKeys[r][col]
		expected := uint32(word[0])<<24 | uint32(word[1])<<16 | uint32(word[2])<<8 | uint32(word[3])
		assert.Equalf(t, expected, got, "word %d", i)
	}
}

func TestShiftRowsVector(t *testing.T) {
	in := bytesToState(hexBytes(t, "63CAB7040953D051CD60E0E7BA70E18C"))
	shiftRows(&in)
	out := make([]byte, 16)
	stateToBytes(&in, out)
	assert.Equal(t, hexBytes(t, "6353E08C0960E104CD70B751BACAD0E7"), out)
}

func TestShiftRowsInverse(t *testing.T) {
	vectors := []string{
		"63CAB7040953D051CD60E0E7BA70E18C",
		"6353E08C0960E104CD70B751BACAD0E7",
		"D4BF5D30D4BF5D30D4BF5D30D4BF5D30",
	}
	for _, v := range vectors {
		s := bytesToState(hexBytes(t, v))
		original := s
		shiftRows(&s)
		invShiftRows(&s)
		assert.Equal(t, original, s)
	}
}

func TestMixColumnsVectors(t *testing.T) {
	cases := []struct{ in, want string }{
		{"6353E08C0960E104CD70B751BACAD0E7", "5F72641557F5BC92F7BE3B291DB9F91A"},
		{"D4BF5D30D4BF5D30D4BF5D30D4BF5D30", "046681E5046681E5046681E5046681E5"},
	}
	for _, c := range cases {
		s := bytesToState(hexBytes(t, c.in))
		mixColumns(&s)
		out := make([]byte, 16)
		stateToBytes(&s, out)
		assert.Equal(t, hexBytes(t, c.want), out)
	}
}

func TestMixColumnsInverse(t *testing.T) {
	vectors := []string{
		"63CAB7040953D051CD60E0E7BA70E18C",
		"6353E08C0960E104CD70B751BACAD0E7",
		"D4BF5D30D4BF5D30D4BF5D30D4BF5D30",
	}
	for _, v := range vectors {
		s := bytesToState(hexBytes(t, v))
		original := s
		mixColumns(&s)
		invMixColumns(&s)
		assert.Equal(t, original, s)
	}
}

func TestGaloisMultiplicationTables(t *testing.T) {
	// FIPS 197 §4.2.1 worked example and the xtime powers leading to it.
	assert.Equal(t, byte(0xFE), gmulForTest(0x57, 0x13))
	assert.Equal(t, byte(0x57), gmulForTest(0x57, 0x01))
	assert.Equal(t, byte(0xAE), gmulForTest(0x57, 0x02))
	assert.Equal(t, byte(0x47), gmulForTest(0x57, 0x04))
	assert.Equal(t, byte(0x8E), gmulForTest(0x57, 0x08))
	assert.Equal(t, byte(0x07), gmulForTest(0x57, 0x10))

	for i := 0; i < 256; i++ {
		b := byte(i)
		assert.Equalf(t, gmulForTest(b, 2), aestables.Mul2[b], "Mul2[%#02x]", b)
		assert.Equalf(t, gmulForTest(b, 3), aestables.Mul3[b], "Mul3[%#02x]", b)
		assert.Equalf(t, gmulForTest(b, 9), aestables.Mul9[b], "Mul9[%#02x]", b)
		assert.Equalf(t, gmulForTest(b, 11), aestables.Mul11[b], "Mul11[%#02x]", b)
		assert.Equalf(t, gmulForTest(b, 13), aestables.Mul13[b], "Mul13[%#02x]", b)
		assert.Equalf(t, gmulForTest(b, 14), aestables.Mul14[b], "Mul14[%#02x]", b)
	}
}

// gmulForTest recomputes GF(2^8) multiplication independently of the
// precomputed tables, so the table contents themselves get checked.
func gmulForTest(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

func TestNewRejectsBadKeySize(t *testing.T) {
	_, err := New(make([]byte, 15))
	assert.Error(t, err)
}

func TestDestroyZeroizesRoundKeysAndIsIdempotent(t *testing.T) {
	c, err := New(hexBytes(t, "2B7E151628AED2A6ABF7158809CF4F3C"))
	assert.NoError(t, err)
	assert.NotZero(t, c.roundKeys[0])

	c.Destroy()
	for r, word := range c.roundKeys {
		assert.Zerof(t, word, "round key %d", r)
	}

	c.Destroy() // idempotent
}

func TestStringAndGoStringRedactRoundKeys(t *testing.T) {
	c, err := New(hexBytes(t, "2B7E151628AED2A6ABF7158809CF4F3C"))
	assert.NoError(t, err)
	assert.Equal(t, "aes.Cipher[REDACTED]", c.String())
	assert.Equal(t, "aes.Cipher[REDACTED]", c.GoString())
}

// TestCanonicalVector is FIPS 197 Appendix B's worked AES-128 example.
func TestCanonicalVector(t *testing.T) {
	key := hexBytes(t, "2B7E151628AED2A6ABF7158809CF4F3C")
	plaintext := hexBytes(t, "3243F6A8885A308D313198A2E0370734")
	wantCiphertext := hexBytes(t, "3925841D02DC09FBDC118597196A0B32")

	c, err := New(key)
	assert.NoError(t, err)

	ciphertext := make([]byte, BlockSize)
	c.Encrypt(ciphertext, plaintext)
	assert.Equal(t, wantCiphertext, ciphertext)

	decrypted := make([]byte, BlockSize)
	c.Decrypt(decrypted, ciphertext)
	assert.Equal(t, plaintext, decrypted)
}

func TestRoundTripArbitraryBlocks(t *testing.T) {
	key := hexBytes(t, "000102030405060708090A0B0C0D0E0F")
	c, err := New(key)
	assert.NoError(t, err)

	t.Run("all zero block", func(t *testing.T) {
		plaintext := make([]byte, BlockSize)
		ciphertext := make([]byte, BlockSize)
		c.Encrypt(ciphertext, plaintext)
		assert.NotEqual(t, plaintext, ciphertext)

		decrypted := make([]byte, BlockSize)
		c.Decrypt(decrypted, ciphertext)
		assert.Equal(t, plaintext, decrypted)
	})
}

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b := make([]byte, len(s)/2)
	for i := range b {
		hi := hexDigit(t, s[2*i])
		lo := hexDigit(t, s[2*i+1])
		b[i] = hi<<4 | lo
	}
	return b
}

func hexDigit(t *testing.T, c byte) byte {
	t.Helper()
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		t.Fatalf("invalid hex digit %q", c)
		return 0
	}
}
