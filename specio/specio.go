// Package specio loads a pipeline spec from a file, sniffing its
// extension to pick a preferred format and falling back to the other
// supported formats if the preferred one fails to parse.
package specio

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/models"
	"gopkg.in/yaml.v3"
)

// Format names a supported spec file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var extsByFormat = map[Format][]string{
	FormatYAML: {".yaml", ".yml"},
	FormatJSON: {".json"},
}

var defaultOrder = []Format{FormatYAML, FormatJSON}

// LoadPipelineSpec reads and decodes a CodecPipelineSpec from path. The
// file's extension determines which format is tried first; every other
// supported format is tried afterward, in their default order, in case
// the extension doesn't match the actual content.
func LoadPipelineSpec(path string) (models.CodecPipelineSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.CodecPipelineSpec{}, err
	}
	return UnmarshalPipelineSpec(data, formatOrderFor(path))
}

func formatOrderFor(path string) []Format {
	ext := filepath.Ext(path)
	order := make([]Format, 0, len(defaultOrder))
	var preferred Format
	found := false
	for _, fmtName := range defaultOrder {
		for _, e := range extsByFormat[fmtName] {
			if e == ext {
				preferred = fmtName
				found = true
			}
		}
	}
	if found {
		order = append(order, preferred)
	}
	for _, fmtName := range defaultOrder {
		if fmtName == preferred {
			continue
		}
		order = append(order, fmtName)
	}
	return order
}

// UnmarshalPipelineSpec tries each format in order and returns the first
// one that decodes without error.
func UnmarshalPipelineSpec(data []byte, formats []Format) (models.CodecPipelineSpec, error) {
	var spec models.CodecPipelineSpec
	for _, fmtName := range formats {
		var err error
		switch fmtName {
		case FormatYAML:
			err = yaml.Unmarshal(data, &spec)
		case FormatJSON:
			err = json.Unmarshal(data, &spec)
		default:
			continue
		}
		if err == nil {
			return spec, nil
		}
	}
	return models.CodecPipelineSpec{}, errs.ErrUnsupportedSpec
}
