// Package crypto is the external collaborator interface: the entry
// points a caller needs, regardless of which algorithm or mode sits
// behind them. Everything below this package — the bit
// permutations, the Galois-field tables, the Feistel network, the AES
// round function — is an implementation detail callers never touch
// directly.
package crypto

import (
	"fmt"

	"github.com/kristoferssolo/go-blockcipher/crypto/aes"
	"github.com/kristoferssolo/go-blockcipher/crypto/cipher"
	"github.com/kristoferssolo/go-blockcipher/crypto/des"
)

// Algorithm names a supported block cipher.
type Algorithm string

// The two algorithms this core implements.
const (
	DES Algorithm = "DES"
	AES Algorithm = "AES"
)

// Cipher wraps a single block cipher, keyed and ready for single-block
// (ECB) transforms. Algorithm selection is resolved once at New and
// every subsequent call dispatches through the shared cipher.Block
// interface.
type Cipher struct {
	block     cipher.Block
	algorithm Algorithm
}

// New keys a Cipher for algorithm. key must match the algorithm's key
// size: 8 bytes for DES, 16 bytes for AES-128.
func New(algorithm Algorithm, key []byte) (*Cipher, error) {
	var block cipher.Block
	var err error

	switch algorithm {
	case DES:
		block, err = des.New(key)
	case AES:
		block, err = aes.New(key)
	default:
		return nil, fmt.Errorf("crypto: unsupported algorithm %q", algorithm)
	}
	if err != nil {
		return nil, err
	}

	return &Cipher{block: block, algorithm: algorithm}, nil
}

// BlockSize returns the underlying cipher's block size in bytes.
func (c *Cipher) BlockSize() int { return c.block.BlockSize() }

// EncryptBlock encrypts exactly one block (ECB mode). plaintext
// must be BlockSize() bytes.
func (c *Cipher) EncryptBlock(plaintext []byte) ([]byte, error) {
	return cipher.Transform(c.block, plaintext, cipher.Encrypt)
}

// DecryptBlock decrypts exactly one block (ECB mode). ciphertext
// must be BlockSize() bytes.
func (c *Cipher) DecryptBlock(ciphertext []byte) ([]byte, error) {
	return cipher.Transform(c.block, ciphertext, cipher.Decrypt)
}

// Destroy zeroizes the underlying cipher's key schedule, if the
// algorithm backing this Cipher carries one. It is the caller's signal
// that this Cipher's secret material is no longer needed; safe to call
// more than once.
func (c *Cipher) Destroy() {
	if d, ok := c.block.(cipher.Destroyer); ok {
		d.Destroy()
	}
}

// CbcCipher is the streaming, arbitrary-length entry point: AES-128 in
// CBC mode with PKCS#7 padding. It is the only mode exposed at this
// layer since ECB is only ever used a single block at a time.
type CbcCipher struct {
	cbc *cipher.CBC
}

// NewCbcCipher keys an AES-128 CBC cipher. key must be 16 bytes; iv
// must be 16 bytes and unique per (key, message) pair, though it need
// not be secret.
func NewCbcCipher(key, iv []byte) (*CbcCipher, error) {
	block, err := aes.New(key)
	if err != nil {
		return nil, err
	}
	cbc, err := cipher.NewCBC(block, iv)
	if err != nil {
		return nil, err
	}
	return &CbcCipher{cbc: cbc}, nil
}

// Encrypt pads plaintext with PKCS#7 and returns the IV followed by the
// chained ciphertext.
func (c *CbcCipher) Encrypt(plaintext []byte) ([]byte, error) {
	return c.cbc.Encrypt(plaintext)
}

// Decrypt reads the IV from the message's own prefix, unchains the
// ciphertext, and removes PKCS#7 padding.
func (c *CbcCipher) Decrypt(ciphertextWithIV []byte) ([]byte, error) {
	return c.cbc.Decrypt(ciphertextWithIV)
}

// Destroy zeroizes the underlying AES key schedule; safe to call more
// than once.
func (c *CbcCipher) Destroy() {
	c.cbc.Destroy()
}
