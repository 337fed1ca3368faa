// Command codechain is the CLI front-end over the codec pipeline: a
// checksum utility and an encode/decode pair driven by a pipeline spec
// file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "checksum", "cksum":
		err = runChecksum(os.Args[2:], os.Stdin, os.Stdout)
	case "encode", "e", "enc":
		err = runEncode(os.Args[2:], os.Stdout, logger)
	case "decode", "d", "dec":
		err = runDecode(os.Args[2:], os.Stdout, logger)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: codechain <checksum|encode|decode> [flags] [args]")
}

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
