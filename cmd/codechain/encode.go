package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/factory"
	"github.com/codechain-go/codechain/specio"
	"github.com/spf13/pflag"
)

func runEncode(args []string, out io.Writer, logger *log.Logger) error {
	fs := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	encoding := fs.StringP("encoding", "e", "utf-8", "input encoding: hex or utf-8")
	pipelineFile := fs.StringP("pipeline-file", "f", "", "path to a pipeline spec file (required)")
	verbose := fs.BoolP("verbose", "v", false, "log each stage's codec fingerprint, meta keys, and payload length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pipelineFile == "" {
		return errs.ErrUnsupportedSpec
	}
	if fs.NArg() != 1 {
		return errs.ErrUnsupportedSpec
	}

	data, err := decodeInput(fs.Arg(0), *encoding)
	if err != nil {
		return err
	}

	spec, err := specio.LoadPipelineSpec(*pipelineFile)
	if err != nil {
		return err
	}
	p, err := factory.CodecPipeline(spec)
	if err != nil {
		return err
	}

	var trace func(int, uint32, []string, int)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
		trace = func(stage int, fp uint32, keys []string, n int) {
			logger.Debug("stage encoded", "stage", stage, "fingerprint", fp, "meta", keys, "bytes", n)
		}
	}

	encoded, err := p.EncodeTraced(data, trace)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %d\n", hex.EncodeToString(encoded), len(encoded))
	return nil
}

func decodeInput(s string, encoding string) ([]byte, error) {
	switch encoding {
	case "hex":
		return hex.DecodeString(s)
	case "utf-8", "":
		return []byte(s), nil
	default:
		return nil, errs.ErrUnsupportedSpec
	}
}
