package main

import (
	"fmt"
	"io"

	"github.com/codechain-go/codechain/crc"
	"github.com/spf13/pflag"
)

func runChecksum(args []string, in io.Reader, out io.Writer) error {
	fs := pflag.NewFlagSet("checksum", pflag.ContinueOnError)
	size := fs.IntP("size", "n", 32, "CRC width in bits (8, 16, or 32)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readAll(in)
	if err != nil {
		return err
	}

	cksum, err := crc.Checksum(data, *size)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d %d\n", cksum, len(data))
	return nil
}
