package models

import (
	"encoding/json"

	"github.com/codechain-go/codechain/errs"
	"gopkg.in/yaml.v3"
)

// rawPipelineSpec mirrors CodecPipelineSpec's wire shape before the
// "kind" discriminator on each entry has been resolved to a concrete
// CodecSpec.
type rawPipelineSpec struct {
	Codecs []yaml.Node `yaml:"codecs"`
}

type kindProbe struct {
	Kind string `yaml:"kind" json:"kind"`
}

// UnmarshalYAML resolves each "codecs" entry's "kind" field to the
// matching concrete spec type. yaml.v3 has no built-in polymorphic
// decoding, so the discriminator is read twice: once to learn the kind,
// once more to decode into the right struct.
func (p *CodecPipelineSpec) UnmarshalYAML(node *yaml.Node) error {
	var raw rawPipelineSpec
	if err := node.Decode(&raw); err != nil {
		return err
	}

	codecs := make([]CodecSpec, 0, len(raw.Codecs))
	for _, entry := range raw.Codecs {
		var probe kindProbe
		if err := entry.Decode(&probe); err != nil {
			return err
		}

		spec, err := decodeCodecSpecYAML(probe.Kind, &entry)
		if err != nil {
			return err
		}
		codecs = append(codecs, spec)
	}

	p.Codecs = codecs
	return nil
}

func decodeCodecSpecYAML(kind string, node *yaml.Node) (CodecSpec, error) {
	switch kind {
	case "symmetric_crypto":
		var s SymmetricCryptoSpec
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		return s, nil
	case "reed_solomon":
		var s ReedSolomonCodecSpec
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		return s.withDefaults(), nil
	default:
		return nil, errs.ErrUnsupportedSpec
	}
}

// UnmarshalJSON mirrors UnmarshalYAML for the JSON fallback path.
func (p *CodecPipelineSpec) UnmarshalJSON(data []byte) error {
	var raw struct {
		Codecs []json.RawMessage `json:"codecs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	codecs := make([]CodecSpec, 0, len(raw.Codecs))
	for _, entry := range raw.Codecs {
		var probe kindProbe
		if err := json.Unmarshal(entry, &probe); err != nil {
			return err
		}

		spec, err := decodeCodecSpecJSON(probe.Kind, entry)
		if err != nil {
			return err
		}
		codecs = append(codecs, spec)
	}

	p.Codecs = codecs
	return nil
}

func decodeCodecSpecJSON(kind string, data []byte) (CodecSpec, error) {
	switch kind {
	case "symmetric_crypto":
		var s SymmetricCryptoSpec
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return s, nil
	case "reed_solomon":
		var s ReedSolomonCodecSpec
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return s.withDefaults(), nil
	default:
		return nil, errs.ErrUnsupportedSpec
	}
}
