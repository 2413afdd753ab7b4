package cipher

// Pad applies PKCS#7 padding (RFC 5652 §6.3): blockSize minus the
// remainder of len(data) over blockSize bytes are appended, each
// carrying that same count. Data whose length is already a multiple of
// blockSize still gets a full block of padding, so Unpad always has
// something to strip.
func Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize > 255 {
		return nil, InvalidBlockSizeError{Expected: blockSize, Actual: blockSize}
	}

	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out, nil
}

// Unpad removes and verifies PKCS#7 padding. Every candidate padding
// byte is inspected, not just the last one, so the check takes the
// same number of comparisons regardless of where the padding first
// goes wrong: a short-circuiting unpad leaks, through timing, how many
// trailing bytes an attacker already guessed correctly.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || len(data) == 0 {
		return nil, InvalidPaddingError{Detail: "input must not be empty"}
	}

	padLen := int(data[len(data)-1])
	valid := padLen >= 1 && padLen <= blockSize && padLen <= len(data)

	// Scan every byte of the data once, checking it against what it
	// would have to be if it fell inside the claimed padding region.
	// The loop never exits early, so a mismatch on byte 1 of the
	// padding costs exactly as many comparisons as one on the last.
	boundary := len(data) - padLen
	mismatch := 0
	for i := 0; i < len(data); i++ {
		if i >= boundary && data[i] != byte(padLen) {
			mismatch++
		}
	}

	if !valid || mismatch != 0 {
		return nil, InvalidPaddingError{Detail: "padding bytes do not match the padding length"}
	}

	return data[:len(data)-padLen], nil
}
