// Package utils provides the text-to-block parsing helper used to read
// key and IV arguments in hex, binary, or ASCII form.
package utils
