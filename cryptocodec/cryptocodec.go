// Package cryptocodec adapts a block cipher mode into the codec.Codec
// interface so it can take part in a pipeline.
package cryptocodec

import (
	"github.com/codechain-go/codechain/blockmode"
	"github.com/codechain-go/codechain/codec"
)

// ivProvider is implemented by modes that carry an IV (CBC); modes
// without one (ECB) simply aren't asked.
type ivProvider interface {
	IV() []byte
}

// SymmetricCryptoCodec wraps a block cipher mode (ECB/CBC over AES) as a
// codec stage. It carries no meta of its own -- the mode's IV, when one
// exists, is embedded directly in the payload by the mode itself.
type SymmetricCryptoCodec struct {
	mode    blockmode.Mode
	keyHint []byte
}

// New builds a SymmetricCryptoCodec from a constructed mode and the raw
// key bytes used to build its underlying cipher, which feed the
// fingerprint computation alongside the mode name and IV (if any).
func New(mode blockmode.Mode, keyBytes []byte) *SymmetricCryptoCodec {
	return &SymmetricCryptoCodec{mode: mode, keyHint: keyBytes}
}

func (c *SymmetricCryptoCodec) Encode(data []byte) (codec.Meta, []byte, error) {
	payload, err := c.mode.Encrypt(data)
	if err != nil {
		return codec.Meta{}, nil, err
	}
	return codec.NewMeta(), payload, nil
}

func (c *SymmetricCryptoCodec) Decode(_ codec.Meta, payload []byte) ([]byte, error) {
	return c.mode.Decrypt(payload)
}

func (c *SymmetricCryptoCodec) Fingerprint() uint32 {
	var iv []byte
	if p, ok := c.mode.(ivProvider); ok {
		iv = p.IV()
	}
	return codec.Fingerprint("cryptocodec.SymmetricCryptoCodec", []byte(c.mode.Name()), c.keyHint, iv)
}
