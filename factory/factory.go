// Package factory builds live pipeline components from validated
// models specs.
package factory

import (
	"crypto/rand"

	"github.com/codechain-go/codechain/aesengine"
	"github.com/codechain-go/codechain/blockmode"
	"github.com/codechain-go/codechain/codec"
	"github.com/codechain-go/codechain/cryptocodec"
	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/models"
	"github.com/codechain-go/codechain/padding"
	"github.com/codechain-go/codechain/pipeline"
	"github.com/codechain-go/codechain/rs"
)

// Padding builds the padding.Scheme named by spec. A nil spec defaults
// to PKCS7, a sensible default for ECB/CBC.
func Padding(spec *models.PaddingSpec) (padding.Scheme, error) {
	if spec == nil {
		return padding.PKCS7{}, nil
	}
	switch spec.Kind {
	case "", "pkcs7":
		return padding.PKCS7{}, nil
	default:
		return nil, errs.ErrUnsupportedSpec
	}
}

// AESMode builds an AES block cipher mode (ECB or CBC) from raw key
// bytes, a mode name, an optional padding spec, and an optional IV. A
// CBC mode with no supplied IV gets one generated from crypto/rand.
func AESMode(key []byte, mode string, paddingSpec *models.PaddingSpec, iv []byte) (blockmode.Mode, error) {
	cipher, err := aesengine.FromKeyBytes(key)
	if err != nil {
		return nil, err
	}
	scheme, err := Padding(paddingSpec)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "ecb":
		return blockmode.NewECB(cipher, scheme), nil
	case "cbc":
		ivFinal := iv
		if ivFinal == nil {
			ivFinal = make([]byte, cipher.BlockSizeBytes())
			if _, err := rand.Read(ivFinal); err != nil {
				return nil, err
			}
		}
		return blockmode.NewCBC(cipher, scheme, ivFinal)
	default:
		return nil, errs.ErrUnsupportedSpec
	}
}

// SymmetricCrypto builds a codec.Codec from a symmetric crypto spec. The
// AES branch is fully implemented; the ChaCha20 branch is a declared but
// unimplemented extension point.
func SymmetricCrypto(spec models.SymmetricCryptoSpec) (codec.Codec, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	switch spec.Cipher {
	case "aes":
		mode, err := AESMode(spec.Key, spec.Mode, spec.Padding, spec.IV)
		if err != nil {
			return nil, err
		}
		return cryptocodec.New(mode, spec.Key), nil
	case "chacha20":
		return nil, errs.ErrNotImplemented
	default:
		return nil, errs.ErrUnsupportedSpec
	}
}

// ReedSolomon builds a codec.Codec from a Reed-Solomon spec.
func ReedSolomon(spec models.ReedSolomonCodecSpec) (codec.Codec, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	strategy := spec.CodecStrategy
	if strategy == "" {
		strategy = rs.StrategyPoly
	}
	return rs.New(spec.CodeRate, strategy)
}

// Codec dispatches a single CodecSpec to its concrete builder.
func Codec(spec models.CodecSpec) (codec.Codec, error) {
	switch s := spec.(type) {
	case models.SymmetricCryptoSpec:
		return SymmetricCrypto(s)
	case models.ReedSolomonCodecSpec:
		return ReedSolomon(s)
	default:
		return nil, errs.ErrUnsupportedSpec
	}
}

// CodecPipeline builds a full pipeline.Pipeline from a validated
// pipeline spec, in the order its stages are listed.
func CodecPipeline(spec models.CodecPipelineSpec) (*pipeline.Pipeline, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	stages := make([]codec.Codec, 0, len(spec.Codecs))
	for _, cs := range spec.Codecs {
		c, err := Codec(cs)
		if err != nil {
			return nil, err
		}
		stages = append(stages, c)
	}
	return pipeline.New(stages...), nil
}
