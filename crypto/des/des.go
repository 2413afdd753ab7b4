// Package des implements the Data Encryption Standard (FIPS 46-3) from its
// Feistel network up: initial/final permutation, the 16-round key schedule,
// and the expansion/substitution/permutation round function. It satisfies
// cipher.Block so callers drive it through cipher.Transform or cipher.CBC
// exactly like any other block cipher in this module.
package des

import (
	"github.com/kristoferssolo/go-blockcipher/crypto/cipher"
	"github.com/kristoferssolo/go-blockcipher/crypto/internal/bitperm"
	"github.com/kristoferssolo/go-blockcipher/crypto/internal/destables"
)

// BlockSize is the DES block size in bytes (64 bits).
const BlockSize = 8

// KeySize is the DES key size in bytes (56 effective bits plus 8 parity
// bits, FIPS 46-3 §3.2). Parity bits are accepted but never checked.
const KeySize = 8

// Cipher is a DES block cipher keyed with an expanded, 16-round key
// schedule. The zero value is not usable; construct one with New.
type Cipher struct {
	subkeys [16]uint64 // 48-bit round keys, one per Feistel round
}

// New builds a DES cipher from an 8-byte key, expanding it into the 16
// round subkeys via PC-1, the per-round left rotation, and PC-2.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, cipher.InvalidKeySizeError{Expected: KeySize, Actual: len(key)}
	}

	c := &Cipher{}
	keyBits := bytesToUint64(key)
	permuted := bitperm.Permute(keyBits, 64, 56, destables.PC1)

	const halfMask = 1<<28 - 1
	left := permuted >> 28
	right := permuted & halfMask

	for round := 0; round < 16; round++ {
		shift := destables.Shifts[round]
		left = rotateLeft28(left, shift)
		right = rotateLeft28(right, shift)
		combined := left<<28 | right
		c.subkeys[round] = bitperm.Permute(combined, 56, 48, destables.PC2)
	}
	return c, nil
}

// BlockSize returns the DES block size, 8 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Destroy overwrites the expanded subkey schedule with zeros. Go has no
// destructors, so callers that want the zero-on-release discipline a
// key schedule carries must call this explicitly once the cipher is no
// longer needed; it is safe to call more than once.
func (c *Cipher) Destroy() {
	for i := range c.subkeys {
		c.subkeys[i] = 0
	}
}

// String redacts the subkey schedule so a Cipher never renders its
// secret material through %v, %s, or a log call.
func (c *Cipher) String() string { return "des.Cipher[REDACTED]" }

// GoString redacts the subkey schedule from %#v the same way String
// redacts it from %v and %s.
func (c *Cipher) GoString() string { return "des.Cipher[REDACTED]" }

// Encrypt writes the DES encryption of the first 8 bytes of src into the
// first 8 bytes of dst, running the key schedule forward.
func (c *Cipher) Encrypt(dst, src []byte) {
	uint64ToBytes(c.crypt(bytesToUint64(src), false), dst)
}

// Decrypt writes the DES decryption of the first 8 bytes of src into the
// first 8 bytes of dst, running the key schedule in reverse.
func (c *Cipher) Decrypt(dst, src []byte) {
	uint64ToBytes(c.crypt(bytesToUint64(src), true), dst)
}

// crypt runs the Feistel network: initial permutation, 16 rounds of
// expansion/S-box/P-box keyed by the round's subkey, the final L/R swap,
// and the final permutation. Running reverse=true walks the subkeys
// backward, which is the only difference between encryption and
// decryption in a Feistel cipher.
func (c *Cipher) crypt(block uint64, reverse bool) uint64 {
	permuted := initialPermutation(block)
	left := uint32(permuted >> 32)
	right := uint32(permuted)

	for round := 0; round < 16; round++ {
		subkey := c.subkeys[round]
		if reverse {
			subkey = c.subkeys[15-round]
		}
		left, right = right, left^feistel(right, subkey)
	}

	// Undo the last round's swap before the final permutation.
	preOutput := uint64(right)<<32 | uint64(left)
	return finalPermutation(preOutput)
}

func initialPermutation(block uint64) uint64 {
	return bitperm.Permute(block, 64, 64, destables.IP)
}

func finalPermutation(block uint64) uint64 {
	return bitperm.Permute(block, 64, 64, destables.FP)
}

// feistel is the DES round function f(R, K): expand R to 48 bits,
// XOR with the round key, substitute through the eight S-boxes, and
// permute the result with the P-box.
func feistel(half uint32, subkey uint64) uint32 {
	expanded := expansionPermutation(half) ^ subkey
	return pBoxPermutation(sBoxSubstitution(expanded))
}

// expansionPermutation is the 32-to-48-bit E expansion at the start of
// the round function.
func expansionPermutation(half uint32) uint64 {
	return bitperm.Permute(uint64(half), 32, 48, destables.E)
}

// sBoxSubstitution partitions a 48-bit value into eight 6-bit groups
// and replaces group i with the 4-bit output of S-box i, at
// row = bit1·2 + bit6, column = bits2..5 (both counted from the MSB of
// the group).
func sBoxSubstitution(block uint64) uint32 {
	var out uint32
	for i := 0; i < 8; i++ {
		shift := uint(48 - 6*(i+1))
		chunk := byte(block>>shift) & 0x3f
		row := (chunk>>4)&0x2 | chunk&0x1
		col := (chunk >> 1) & 0x0f
		nibble := destables.SBoxes[i][row][col]
		out |= uint32(nibble) << uint(28-4*i)
	}
	return out
}

// pBoxPermutation is the 32-to-32-bit P permutation applied to the
// concatenated S-box outputs.
func pBoxPermutation(block uint32) uint32 {
	return uint32(bitperm.Permute(uint64(block), 32, 32, destables.P))
}

func rotateLeft28(x uint64, n uint) uint64 {
	const mask = 1<<28 - 1
	return ((x << n) | (x >> (28 - n))) & mask
}

func bytesToUint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func uint64ToBytes(v uint64, dst []byte) {
	for i := 7; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}
