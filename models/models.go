// Package models defines the typed, validated pipeline configuration
// shapes loaded from a spec file: a flat symmetric-crypto spec, a
// Reed-Solomon spec, and the pipeline spec tying a list of them
// together.
package models

import (
	"github.com/codechain-go/codechain/errs"
)

// PaddingSpec names a padding scheme. Only "pkcs7" is implemented;
// "ansi-x923" and "iso7816" are accepted by the schema shape but rejected
// at build time by factory.Padding.
type PaddingSpec struct {
	Kind string `yaml:"kind" json:"kind"`
}

// Validate checks the padding kind is one this build recognizes.
func (p PaddingSpec) Validate() error {
	switch p.Kind {
	case "", "pkcs7", "ansi-x923", "iso7816":
		return nil
	default:
		return errs.ErrUnsupportedSpec
	}
}

// CodecSpec is implemented by every codec configuration understood by a
// pipeline spec.
type CodecSpec interface {
	Validate() error
	codecKind() string
}

// SymmetricCryptoSpec describes one symmetric cipher stage. The AES and
// ChaCha20 branches are mutually exclusive field sets, enforced by
// Validate rather than by separate Go types, matching the flat
// user-facing schema of the reference model.
type SymmetricCryptoSpec struct {
	Kind   string `yaml:"kind" json:"kind"`
	Cipher string `yaml:"cipher" json:"cipher"`
	Key    []byte `yaml:"key" json:"key"`

	Mode    string       `yaml:"mode,omitempty" json:"mode,omitempty"`
	IV      []byte       `yaml:"iv,omitempty" json:"iv,omitempty"`
	Padding *PaddingSpec `yaml:"padding,omitempty" json:"padding,omitempty"`

	Nonce   []byte `yaml:"nonce,omitempty" json:"nonce,omitempty"`
	Counter int    `yaml:"counter,omitempty" json:"counter,omitempty"`
}

func (s SymmetricCryptoSpec) codecKind() string { return "symmetric_crypto" }

// Validate enforces the AES/ChaCha20 branch exclusivity rules from the
// reference model: AES requires a mode and forbids stream-only fields;
// ChaCha20 requires a nonce and forbids block-cipher-only fields.
func (s SymmetricCryptoSpec) Validate() error {
	switch s.Cipher {
	case "aes":
		if s.Mode == "" {
			return errs.ErrUnsupportedSpec
		}
		if s.Mode != "ecb" && s.Mode != "cbc" {
			return errs.ErrUnsupportedSpec
		}
		if s.Nonce != nil {
			return errs.ErrUnsupportedSpec
		}
		if s.Padding != nil {
			if err := s.Padding.Validate(); err != nil {
				return err
			}
		}
	case "chacha20":
		if s.Mode != "" {
			return errs.ErrUnsupportedSpec
		}
		if s.IV != nil {
			return errs.ErrUnsupportedSpec
		}
		if s.Padding != nil {
			return errs.ErrUnsupportedSpec
		}
		if s.Nonce == nil {
			return errs.ErrUnsupportedSpec
		}
	default:
		return errs.ErrUnsupportedSpec
	}
	return nil
}

// DefaultCodeRate and DefaultCodecStrategy are applied to a
// ReedSolomonCodecSpec whose fields were left unset, so a bare
// "{kind: reed_solomon}" spec is valid.
const (
	DefaultCodeRate      = 0.80
	DefaultCodecStrategy = "poly"
)

// ReedSolomonCodecSpec describes one Reed-Solomon codec stage.
type ReedSolomonCodecSpec struct {
	Kind          string  `yaml:"kind" json:"kind"`
	CodeRate      float64 `yaml:"code_rate" json:"code_rate"`
	CodecStrategy string  `yaml:"codec_strategy" json:"codec_strategy"`
}

func (r ReedSolomonCodecSpec) codecKind() string { return "reed_solomon" }

// withDefaults fills an unset code rate and strategy with their defaults.
func (r ReedSolomonCodecSpec) withDefaults() ReedSolomonCodecSpec {
	if r.CodeRate == 0 {
		r.CodeRate = DefaultCodeRate
	}
	if r.CodecStrategy == "" {
		r.CodecStrategy = DefaultCodecStrategy
	}
	return r
}

// Validate checks the code rate falls in the open interval (0,1) and the
// strategy name is recognized.
func (r ReedSolomonCodecSpec) Validate() error {
	if !(r.CodeRate > 0.0 && r.CodeRate < 1.0) {
		return errs.ErrInvalidCodeRate
	}
	switch r.CodecStrategy {
	case "", "poly", "linalg":
		return nil
	default:
		return errs.ErrUnsupportedSpec
	}
}

// CodecPipelineSpec is an ordered, non-empty list of codec stage specs.
type CodecPipelineSpec struct {
	Codecs []CodecSpec
}

// Validate rejects an empty pipeline and validates every stage.
func (p CodecPipelineSpec) Validate() error {
	if len(p.Codecs) == 0 {
		return errs.ErrUnsupportedSpec
	}
	for _, c := range p.Codecs {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
