package rs

import (
	"encoding/binary"

	"github.com/codechain-go/codechain/codec"
	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/gf256"
)

// Strategy names accepted by New.
const (
	StrategyPoly   = "poly"
	StrategyLinalg = "linalg"
)

// Codec is the block/stream wrapper named in the spec: it splits a
// message into k-byte chunks, runs each through a block strategy, and
// concatenates the resulting n-byte codewords, recording the original
// message length in meta so decode can discard chunk padding.
type Codec struct {
	n, k     int
	strategy blockStrategy
}

// New builds a Reed-Solomon codec at the fixed block length N=256, with
// k = clamp(floor(codeRate*n), 1, n-1), using the named strategy.
func New(codeRate float64, strategy string) (*Codec, error) {
	if codeRate <= 0 || codeRate >= 1 {
		return nil, errs.ErrInvalidCodeRate
	}

	gf := gf256.Default()
	n := N
	k := ClampK(codeRate, n)

	var bs blockStrategy
	switch strategy {
	case StrategyPoly:
		bs = newPolyStrategy(gf, n, k)
	case StrategyLinalg:
		var err error
		bs, err = newLinalgStrategy(gf, n, k)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errs.ErrUnsupportedSpec
	}

	return &Codec{n: n, k: k, strategy: bs}, nil
}

const metaKeyMsgLength = "msg_length"

func (c *Codec) Encode(data []byte) (codec.Meta, []byte, error) {
	encoded := make([]byte, 0, ((len(data)+c.k-1)/c.k)*c.n)
	for i := 0; i < len(data); i += c.k {
		end := i + c.k
		if end > len(data) {
			end = len(data)
		}
		encoded = append(encoded, c.strategy.Encode(data[i:end])...)
	}

	var meta codec.Meta
	lenBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(lenBuf, uint64(len(data)))
	meta.Set(metaKeyMsgLength, lenBuf)

	return meta, encoded, nil
}

func (c *Codec) Decode(meta codec.Meta, payload []byte) ([]byte, error) {
	lenBuf, ok := meta.Get(metaKeyMsgLength)
	if !ok || len(lenBuf) != 8 {
		return nil, errs.ErrIncompleteFrame
	}
	if len(payload)%c.n != 0 {
		return nil, errs.ErrDecodeOverflow
	}
	msgLength := binary.LittleEndian.Uint64(lenBuf)

	valid := make([]int, c.n)
	for i := range valid {
		valid[i] = i
	}

	decoded := make([]byte, 0, len(payload)/c.n*c.k)
	for i := 0; i < len(payload); i += c.n {
		chunk, err := c.strategy.Decode(payload[i:i+c.n], valid)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, chunk...)
	}

	if uint64(len(decoded)) < msgLength {
		return nil, errs.ErrDecodeOverflow
	}
	return decoded[:msgLength], nil
}

func (c *Codec) Fingerprint() uint32 {
	return codec.Fingerprint("rs.Codec", intBytes(c.n), intBytes(c.k), fingerprintBytes(c.strategy.Fingerprint()))
}

// K reports the configured message chunk size, mostly useful to callers
// sizing buffers (e.g. the package's own chunk-math test).
func (c *Codec) K() int { return c.k }

// N reports the fixed codeword length.
func (c *Codec) N() int { return c.n }

func intBytes(n int) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(n))
	return buf
}

func fingerprintBytes(fp uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, fp)
	return buf
}
