// Package padding implements the two block padding schemes used by the
// ECB/CBC modes: PKCS#7 (the default, fully reversible) and zero padding
// (not reversible on payloads ending in zero bytes; callers assume that
// responsibility).
package padding

import (
	"bytes"

	"github.com/codechain-go/codechain/errs"
)

// Scheme pads a message out to a block boundary and reverses the
// operation on decode.
type Scheme interface {
	Pad(data []byte, blockSize int) []byte
	Unpad(data []byte, blockSize int) ([]byte, error)
	Name() string
}

// PKCS7 appends padLen copies of the byte padLen, where padLen is always
// in [1, blockSize].
type PKCS7 struct{}

func (PKCS7) Name() string { return "pkcs7" }

func (PKCS7) Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

func (PKCS7) Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errs.ErrBadPadding
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errs.ErrBadPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errs.ErrBadPadding
		}
	}
	return data[:len(data)-padLen], nil
}

// Zero appends zero bytes out to the next block boundary, always at
// least one byte even when the input is already block-aligned.
type Zero struct{}

func (Zero) Name() string { return "zero" }

func (Zero) Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	return out
}

func (Zero) Unpad(data []byte, _ int) ([]byte, error) {
	return bytes.TrimRight(data, "\x00"), nil
}
