// Package pipeline chains codec stages into a single reversible
// transform, framing each stage's output for integrity checking on the
// way back. Encode applies stages in reverse of their listed order so
// that decode, which walks them forward, undoes encode in the exact
// order it was applied.
package pipeline

import (
	"github.com/codechain-go/codechain/codec"
	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/framer"
)

// Pipeline is an ordered list of codec stages. Encode runs them in
// reverse (last stage first), Decode runs them forward (first stage
// first), framing/verifying each stage's checksum along the way.
type Pipeline struct {
	stages []codec.Codec
}

// New builds a Pipeline from stages in their logical (decode) order:
// stages[0] is applied last on encode and first on decode.
func New(stages ...codec.Codec) *Pipeline {
	return &Pipeline{stages: stages}
}

// Tracer is called once per stage by EncodeTraced/DecodeTraced, mostly
// useful for a CLI's -v/--verbose pipeline log. Pipeline itself never
// logs; stays silent under Encode/Decode.
type Tracer func(stageIndex int, fingerprint uint32, metaKeys []string, payloadLen int)

// Encode runs data through every stage in reverse order, wrapping each
// stage's output in a TLV frame carrying that stage's checksum.
func (p *Pipeline) Encode(data []byte) ([]byte, error) {
	return p.EncodeTraced(data, nil)
}

// EncodeTraced is Encode with an optional per-stage trace callback.
func (p *Pipeline) EncodeTraced(data []byte, trace Tracer) ([]byte, error) {
	payload := data
	for i := len(p.stages) - 1; i >= 0; i-- {
		stage := p.stages[i]
		meta, encoded, err := stage.Encode(payload)
		if err != nil {
			return nil, err
		}
		cksum := framer.Checksum(stage.Fingerprint(), meta, encoded)
		payload = framer.PackFrame(cksum, meta, encoded)
		if trace != nil {
			trace(i, stage.Fingerprint(), meta.Keys(), len(encoded))
		}
	}
	return payload, nil
}

// Decode unwraps frames and runs each stage's Decode in forward order,
// failing with ErrChecksumMismatch the moment a stage's recomputed
// checksum disagrees with the one carried in its frame.
func (p *Pipeline) Decode(data []byte) ([]byte, error) {
	return p.DecodeTraced(data, nil)
}

// DecodeTraced is Decode with an optional per-stage trace callback.
func (p *Pipeline) DecodeTraced(data []byte, trace Tracer) ([]byte, error) {
	payload := data
	for i, stage := range p.stages {
		cksum, meta, encoded, err := framer.UnpackFrame(payload)
		if err != nil {
			return nil, err
		}
		if got := framer.Checksum(stage.Fingerprint(), meta, encoded); got != cksum {
			return nil, errs.ErrChecksumMismatch
		}
		decoded, err := stage.Decode(meta, encoded)
		if err != nil {
			return nil, err
		}
		if trace != nil {
			trace(i, stage.Fingerprint(), meta.Keys(), len(encoded))
		}
		payload = decoded
	}
	return payload, nil
}

// Len reports the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }
