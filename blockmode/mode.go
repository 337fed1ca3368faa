// Package blockmode wraps a block cipher with a mode of operation (ECB or
// CBC) and a padding scheme.
package blockmode

import (
	"crypto/rand"

	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/padding"
)

// BlockCipher is the minimal interface a block cipher must satisfy to be
// wrapped by a Mode.
type BlockCipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
	BlockSizeBytes() int
}

// Mode encrypts and decrypts whole messages, handling padding and
// chaining internally.
type Mode interface {
	Encrypt(data []byte) ([]byte, error)
	Decrypt(data []byte) ([]byte, error)
	Name() string
}

// ECB encrypts each block independently. It pads before encrypting and
// unpads after decrypting.
type ECB struct {
	cipher  BlockCipher
	padding padding.Scheme
}

// NewECB builds an ECB mode instance; a nil padding scheme defaults to
// PKCS7.
func NewECB(cipher BlockCipher, scheme padding.Scheme) *ECB {
	if scheme == nil {
		scheme = padding.PKCS7{}
	}
	return &ECB{cipher: cipher, padding: scheme}
}

func (e *ECB) Name() string { return "ecb" }

func (e *ECB) Encrypt(data []byte) ([]byte, error) {
	bs := e.cipher.BlockSizeBytes()
	padded := e.padding.Pad(data, bs)
	out := make([]byte, 0, len(padded))
	for i := 0; i < len(padded); i += bs {
		block, err := e.cipher.Encrypt(padded[i : i+bs])
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	return out, nil
}

func (e *ECB) Decrypt(data []byte) ([]byte, error) {
	bs := e.cipher.BlockSizeBytes()
	if len(data)%bs != 0 {
		return nil, errs.ErrBlockSizeMismatch
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i += bs {
		block, err := e.cipher.Decrypt(data[i : i+bs])
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	return e.padding.Unpad(out, bs)
}

// CBC chains blocks via XOR-with-previous-ciphertext. A fresh CBC with no
// supplied IV generates one from a cryptographic RNG at construction
// time.
type CBC struct {
	cipher  BlockCipher
	padding padding.Scheme
	iv      []byte
}

// NewCBC builds a CBC mode instance. If iv is nil, a random IV of the
// cipher's block size is generated via crypto/rand.
func NewCBC(cipher BlockCipher, scheme padding.Scheme, iv []byte) (*CBC, error) {
	if scheme == nil {
		scheme = padding.PKCS7{}
	}
	bs := cipher.BlockSizeBytes()
	if iv == nil {
		iv = make([]byte, bs)
		if _, err := rand.Read(iv); err != nil {
			return nil, err
		}
	} else if len(iv) != bs {
		return nil, errs.ErrBlockSizeMismatch
	}
	return &CBC{cipher: cipher, padding: scheme, iv: iv}, nil
}

func (c *CBC) Name() string { return "cbc" }

// IV returns the initialization vector this mode was constructed or
// generated with.
func (c *CBC) IV() []byte {
	return c.iv
}

func (c *CBC) Encrypt(data []byte) ([]byte, error) {
	bs := c.cipher.BlockSizeBytes()
	padded := c.padding.Pad(data, bs)

	out := make([]byte, 0, len(c.iv)+len(padded))
	out = append(out, c.iv...)

	prev := c.iv
	for i := 0; i < len(padded); i += bs {
		block := padded[i : i+bs]
		xored := xorBytes(block, prev)
		enc, err := c.cipher.Encrypt(xored)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
		prev = enc
	}
	return out, nil
}

func (c *CBC) Decrypt(data []byte) ([]byte, error) {
	bs := c.cipher.BlockSizeBytes()
	if len(data) < bs || (len(data)-bs)%bs != 0 {
		return nil, errs.ErrBlockSizeMismatch
	}

	prev := data[:bs]
	rest := data[bs:]
	out := make([]byte, 0, len(rest))
	for i := 0; i < len(rest); i += bs {
		enc := rest[i : i+bs]
		dec, err := c.cipher.Decrypt(enc)
		if err != nil {
			return nil, err
		}
		out = append(out, xorBytes(dec, prev)...)
		prev = enc
	}
	return c.padding.Unpad(out, bs)
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
