package cipher

// Action selects which direction a guarded block transform runs.
type Action int

// The two directions Transform can run a Block in.
const (
	Encrypt Action = iota
	Decrypt
)

// BlockMode names a chaining mode. GCM, CTR, CFB and OFB are out of
// scope for this core.
type BlockMode string

// Supported block cipher modes.
const (
	ModeCBC BlockMode = "CBC" // Cipher Block Chaining mode
	ModeECB BlockMode = "ECB" // Electronic Codebook mode, single block only
)

// Transform runs src through b in the given direction after checking
// that src is exactly one block long. It backs both ECB
// encryption/decryption of a lone block and ad hoc single-block use.
func Transform(b Block, src []byte, action Action) (dst []byte, err error) {
	blockSize := b.BlockSize()
	if len(src) != blockSize {
		return nil, InvalidBlockSizeError{Expected: blockSize, Actual: len(src)}
	}

	dst = make([]byte, blockSize)
	switch action {
	case Encrypt:
		b.Encrypt(dst, src)
	case Decrypt:
		b.Decrypt(dst, src)
	}
	return dst, nil
}

// CBC chains a Block into Cipher Block Chaining mode (NIST SP 800-38A)
// with PKCS#7 padding. A CBC value is not safe for concurrent use on a
// single message, since each block's encryption depends on the one
// before it; independent messages may run on independent CBC values
// concurrently.
type CBC struct {
	block Block
	iv    []byte
}

// NewCBC returns a CBC cipher chaining block, using iv for encryption.
// iv must be exactly block.BlockSize() bytes. Decrypt ignores this IV
// and instead reads one from the message's own prefix, since a CBC
// message is always framed as IV || ciphertext.
func NewCBC(block Block, iv []byte) (*CBC, error) {
	blockSize := block.BlockSize()
	if len(iv) != blockSize {
		return nil, InvalidBlockSizeError{Expected: blockSize, Actual: len(iv)}
	}
	ivCopy := make([]byte, blockSize)
	copy(ivCopy, iv)
	return &CBC{block: block, iv: ivCopy}, nil
}

// Encrypt pads plaintext with PKCS#7 and returns the configured IV
// followed by the chained ciphertext: block_size bytes of IV, then a
// positive multiple of block_size bytes of ciphertext.
func (c *CBC) Encrypt(plaintext []byte) ([]byte, error) {
	blockSize := c.block.BlockSize()

	padded, err := Pad(plaintext, blockSize)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, blockSize+len(padded))
	copy(dst[:blockSize], c.iv)

	prev := dst[:blockSize]
	for i := 0; i < len(padded); i += blockSize {
		xored := make([]byte, blockSize)
		for j := 0; j < blockSize; j++ {
			xored[j] = padded[i+j] ^ prev[j]
		}
		out := dst[blockSize+i : blockSize+i+blockSize]
		c.block.Encrypt(out, xored)
		prev = out
	}
	return dst, nil
}

// Decrypt reads the IV from the first block_size bytes of message,
// decrypts and unchains the rest, and strips PKCS#7 padding. message
// must be at least two blocks long and a multiple of the block size.
func (c *CBC) Decrypt(message []byte) ([]byte, error) {
	blockSize := c.block.BlockSize()
	if len(message) < 2*blockSize || len(message)%blockSize != 0 {
		return nil, InvalidBlockSizeError{Expected: 2 * blockSize, Actual: len(message)}
	}

	iv := message[:blockSize]
	ciphertext := message[blockSize:]

	plain := make([]byte, len(ciphertext))
	prev := iv
	for i := 0; i < len(ciphertext); i += blockSize {
		block := ciphertext[i : i+blockSize]
		c.block.Decrypt(plain[i:i+blockSize], block)
		for j := 0; j < blockSize; j++ {
			plain[i+j] ^= prev[j]
		}
		prev = block
	}

	return Unpad(plain, blockSize)
}

// Destroy zeroizes the IV and, if the underlying Block carries a key
// schedule that knows how to zeroize itself, that schedule too. Safe
// to call more than once.
func (c *CBC) Destroy() {
	for i := range c.iv {
		c.iv[i] = 0
	}
	if d, ok := c.block.(Destroyer); ok {
		d.Destroy()
	}
}
