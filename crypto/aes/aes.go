// Package aes implements AES-128 (FIPS 197) from its byte-substitution
// round structure up: SubBytes/ShiftRows/MixColumns/AddRoundKey and the
// Rijndael key schedule. It satisfies cipher.Block so callers drive it
// through cipher.Transform or cipher.CBC exactly like any other block
// cipher in this module. AES-192 and AES-256 are out of scope; only the
// 128-bit key size, 10-round variant is implemented.
package aes

import (
	"github.com/kristoferssolo/go-blockcipher/crypto/cipher"
	"github.com/kristoferssolo/go-blockcipher/crypto/internal/aestables"
)

// BlockSize is the AES block size in bytes (128 bits), regardless of key size.
const BlockSize = 16

// KeySize is the AES-128 key size in bytes.
const KeySize = 16

const rounds = 10

// Cipher is an AES-128 block cipher keyed with an expanded 11-round key
// schedule (44 32-bit words). The zero value is not usable; construct
// one with New.
type Cipher struct {
	roundKeys [rounds + 1][4]uint32 // roundKeys[r] is the 4-word key for round r
}

// New builds an AES-128 cipher from a 16-byte key, expanding it into 44
// key-schedule words via RotWord, SubWord and the Rcon round constants.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, cipher.InvalidKeySizeError{Expected: KeySize, Actual: len(key)}
	}

	var w [4 * (rounds + 1)]uint32
	for i := 0; i < 4; i++ {
		w[i] = uint32(key[4*i])<<24 | uint32(key[4*i+1])<<16 | uint32(key[4*i+2])<<8 | uint32(key[4*i+3])
	}
	for i := 4; i < len(w); i++ {
		temp := w[i-1]
		if i%4 == 0 {
			temp = subWord(rotWord(temp)) ^ uint32(aestables.Rcon[i/4-1])<<24
		}
		w[i] = w[i-4] ^ temp
	}

	c := &Cipher{}
	for r := 0; r <= rounds; r++ {
		copy(c.roundKeys[r][:], w[4*r:4*r+4])
	}
	return c, nil
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Destroy overwrites the expanded round-key schedule with zeros,
// including round key 0, which is the raw 128-bit user key. Go has no
// destructors, so callers that want the zero-on-release discipline a
// key schedule carries must call this explicitly once the cipher is no
// longer needed; it is safe to call more than once.
func (c *Cipher) Destroy() {
	for r := range c.roundKeys {
		for w := range c.roundKeys[r] {
			c.roundKeys[r][w] = 0
		}
	}
}

// String redacts the round-key schedule so a Cipher never renders its
// secret material through %v, %s, or a log call.
func (c *Cipher) String() string { return "aes.Cipher[REDACTED]" }

// GoString redacts the round-key schedule from %#v the same way String
// redacts it from %v and %s.
func (c *Cipher) GoString() string { return "aes.Cipher[REDACTED]" }

// Encrypt writes the AES-128 encryption of the first 16 bytes of src
// into the first 16 bytes of dst.
func (c *Cipher) Encrypt(dst, src []byte) {
	state := bytesToState(src)

	addRoundKey(&state, c.roundKeys[0])
	for r := 1; r < rounds; r++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, c.roundKeys[r])
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, c.roundKeys[rounds])

	stateToBytes(&state, dst)
}

// Decrypt writes the AES-128 decryption of the first 16 bytes of src
// into the first 16 bytes of dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	state := bytesToState(src)

	addRoundKey(&state, c.roundKeys[rounds])
	for r := rounds - 1; r > 0; r-- {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, c.roundKeys[r])
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, c.roundKeys[0])

	stateToBytes(&state, dst)
}

// state is the 4x4 byte matrix FIPS 197 operates on, stored column
// major: state[row][col], with byte k of the input occupying row k%4,
// column k/4.
type state [4][4]byte

func bytesToState(src []byte) state {
	var s state
	for i := 0; i < 16; i++ {
		s[i%4][i/4] = src[i]
	}
	return s
}

func stateToBytes(s *state, dst []byte) {
	for i := 0; i < 16; i++ {
		dst[i] = s[i%4][i/4]
	}
}

func subWord(w uint32) uint32 {
	return uint32(aestables.SBox[byte(w>>24)])<<24 |
		uint32(aestables.SBox[byte(w>>16)])<<16 |
		uint32(aestables.SBox[byte(w>>8)])<<8 |
		uint32(aestables.SBox[byte(w)])
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func subBytes(s *state) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = aestables.SBox[s[r][c]]
		}
	}
}

func invSubBytes(s *state) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = aestables.InvSBox[s[r][c]]
		}
	}
}

// shiftRows cyclically shifts row r left by r bytes.
func shiftRows(s *state) {
	s[1][0], s[1][1], s[1][2], s[1][3] = s[1][1], s[1][2], s[1][3], s[1][0]
	s[2][0], s[2][1], s[2][2], s[2][3] = s[2][2], s[2][3], s[2][0], s[2][1]
	s[3][0], s[3][1], s[3][2], s[3][3] = s[3][3], s[3][0], s[3][1], s[3][2]
}

// invShiftRows cyclically shifts row r right by r bytes.
func invShiftRows(s *state) {
	s[1][0], s[1][1], s[1][2], s[1][3] = s[1][3], s[1][0], s[1][1], s[1][2]
	s[2][0], s[2][1], s[2][2], s[2][3] = s[2][2], s[2][3], s[2][0], s[2][1]
	s[3][0], s[3][1], s[3][2], s[3][3] = s[3][1], s[3][2], s[3][3], s[3][0]
}

// mixColumns applies the MixColumns matrix (2,3,1,1 / 1,2,3,1 / 1,1,2,3
// / 3,1,1,2) to each column over GF(2^8).
func mixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = aestables.Mul2[a0] ^ aestables.Mul3[a1] ^ a2 ^ a3
		s[1][c] = a0 ^ aestables.Mul2[a1] ^ aestables.Mul3[a2] ^ a3
		s[2][c] = a0 ^ a1 ^ aestables.Mul2[a2] ^ aestables.Mul3[a3]
		s[3][c] = aestables.Mul3[a0] ^ a1 ^ a2 ^ aestables.Mul2[a3]
	}
}

// invMixColumns applies the inverse MixColumns matrix (14,11,13,9 /
// 9,14,11,13 / 13,9,14,11 / 11,13,9,14) to each column over GF(2^8).
func invMixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = aestables.Mul14[a0] ^ aestables.Mul11[a1] ^ aestables.Mul13[a2] ^ aestables.Mul9[a3]
		s[1][c] = aestables.Mul9[a0] ^ aestables.Mul14[a1] ^ aestables.Mul11[a2] ^ aestables.Mul13[a3]
		s[2][c] = aestables.Mul13[a0] ^ aestables.Mul9[a1] ^ aestables.Mul14[a2] ^ aestables.Mul11[a3]
		s[3][c] = aestables.Mul11[a0] ^ aestables.Mul13[a1] ^ aestables.Mul9[a2] ^ aestables.Mul14[a3]
	}
}

func addRoundKey(s *state, key [4]uint32) {
	for c := 0; c < 4; c++ {
		word := key[c]
		s[0][c] ^= byte(word >> 24)
		s[1][c] ^= byte(word >> 16)
		s[2][c] ^= byte(word >> 8)
		s[3][c] ^= byte(word)
	}
}
