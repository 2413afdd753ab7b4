package utils

import (
	"math/big"
	"strings"

	"github.com/kristoferssolo/go-blockcipher/crypto/cipher"
)

// ParseBlock parses s into a big-endian, zero-padded block of exactly
// blockSize bytes. Three input formats are recognized:
//
//   - "0x"/"0X" prefix: hexadecimal digits
//   - "0b"/"0B" prefix: binary digits
//   - anything else: a literal ASCII string, right-aligned and
//     zero-padded on the left, the way a short key phrase is typically
//     keyed in by hand
//
// Leading and trailing whitespace around s is ignored. math/big stands
// in for the fixed-width integer the numeric formats conceptually parse
// into, since a block can be either 8 or 16 bytes wide and Go has no
// generic unsigned 128-bit type.
func ParseBlock(s string, blockSize int) ([]byte, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, cipher.BlockParseError{Kind: "empty"}
	}

	switch {
	case strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X"):
		return parseRadix(trimmed[2:], 16, blockSize)
	case strings.HasPrefix(trimmed, "0b") || strings.HasPrefix(trimmed, "0B"):
		return parseRadix(trimmed[2:], 2, blockSize)
	default:
		return parseASCII(trimmed, blockSize)
	}
}

func parseRadix(digits string, radix, blockSize int) ([]byte, error) {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return make([]byte, blockSize), nil
	}

	n := new(big.Int)
	if _, ok := n.SetString(digits, radix); !ok {
		return nil, cipher.BlockParseError{Kind: "bad-digit"}
	}

	raw := n.Bytes()
	if len(raw) > blockSize {
		return nil, cipher.BlockParseError{Kind: "too-long"}
	}

	out := make([]byte, blockSize)
	copy(out[blockSize-len(raw):], raw)
	return out, nil
}

func parseASCII(s string, blockSize int) ([]byte, error) {
	if len(s) > blockSize {
		return nil, cipher.BlockParseError{Kind: "too-long"}
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return nil, cipher.BlockParseError{Kind: "non-ascii"}
		}
	}

	out := make([]byte, blockSize)
	copy(out[blockSize-len(s):], s)
	return out, nil
}
