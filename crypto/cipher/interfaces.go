package cipher

// Block is the uniform single-block transform every cipher family in
// this module implements. It says nothing about key schedules or round
// structure: CBC and Transform consume only this narrow
// capability, so a future cipher of the same block size would work with
// the existing mode code unmodified.
type Block interface {
	// BlockSize returns the size, in bytes, that Encrypt and Decrypt
	// require of their src and dst buffers.
	BlockSize() int

	// Encrypt writes the encrypted form of the first BlockSize() bytes
	// of src into the first BlockSize() bytes of dst. src and dst may
	// overlap entirely or not at all.
	Encrypt(dst, src []byte)

	// Decrypt writes the decrypted form of the first BlockSize() bytes
	// of src into the first BlockSize() bytes of dst. src and dst may
	// overlap entirely or not at all.
	Decrypt(dst, src []byte)
}

// Destroyer is implemented by ciphers whose key schedule carries secret
// material that must be zeroized before release. The facade's Cipher
// and CBC type-assert for this (the facade's CbcCipher delegates to
// CBC), so the one reachable Destroy hook works across every algorithm
// without CBC or the facade needing to know which concrete cipher it
// holds.
type Destroyer interface {
	Destroy()
}
