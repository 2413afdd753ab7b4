package cipher

import "fmt"

// InvalidKeySizeError represents an error when a key does not have the
// length an algorithm requires. It never carries the key bytes
// themselves, only their lengths.
type InvalidKeySizeError struct {
	Expected int // The key size the algorithm requires
	Actual   int // The key size that was actually supplied
}

// Error returns a formatted error message naming the expected and actual
// key sizes.
func (e InvalidKeySizeError) Error() string {
	return fmt.Sprintf("cipher: invalid key size: expected %d bytes, got %d", e.Expected, e.Actual)
}

// InvalidBlockSizeError represents an error when an input buffer is not
// the size a block operation requires. A single-block transform reports
// this when its input is not exactly block_size() bytes; CBC decryption
// reports it when the framed message is shorter than two blocks (32
// bytes for AES) or is not a multiple of the block size.
type InvalidBlockSizeError struct {
	Expected int // The block size (or minimum size) required
	Actual   int // The size that was actually supplied
}

// Error returns a formatted error message naming the expected and actual
// sizes.
func (e InvalidBlockSizeError) Error() string {
	return fmt.Sprintf("cipher: invalid block size: expected %d bytes, got %d", e.Expected, e.Actual)
}

// InvalidPaddingError represents an error when PKCS#7 padding fails
// verification during unpadding. It never carries the bytes that were
// rejected.
type InvalidPaddingError struct {
	Detail string // Human-readable reason the padding was rejected
}

// Error returns a formatted error message describing why the padding was
// rejected.
func (e InvalidPaddingError) Error() string {
	return fmt.Sprintf("cipher: invalid padding: %s", e.Detail)
}

// InvalidPlaintextLengthError represents an error when an unpadded block
// operation receives input whose length is not a multiple of the block
// size. Reserved for future unpadded modes: ECB takes exactly one block
// and reports InvalidBlockSizeError otherwise, and CBC always pads.
type InvalidPlaintextLengthError struct {
	Actual int // The plaintext length that was rejected
}

// Error returns a formatted error message naming the offending length.
func (e InvalidPlaintextLengthError) Error() string {
	return fmt.Sprintf("cipher: invalid plaintext length: %d bytes (must be a multiple of the block size)", e.Actual)
}

// BlockParseError represents a failure parsing a text argument into a
// block-sized big-endian integer: an empty string, a non-ASCII ASCII
// literal, an over-long literal, or an invalid hex/binary digit.
type BlockParseError struct {
	Kind string // empty, non-ascii, too-long, or bad-digit
}

// Error returns a formatted error message naming the parse failure kind.
func (e BlockParseError) Error() string {
	return fmt.Sprintf("cipher: block parse error: %s", e.Kind)
}
