// Package crc implements a table-driven CRC of configurable width
// (8/16/32 bits), following an append-byte-then-finalize contract so it
// can back per-stage integrity checking in a larger framing format.
package crc

import "github.com/codechain-go/codechain/errs"

// Generator polynomials for the three supported widths.
const (
	Poly8  = 0x07
	Poly16 = 0x8005
	Poly32 = 0x04C11DB7
)

// CRC is a mutable checksum accumulator for one width. Construct one per
// checksum via New, feed bytes with AppendByte, and read the result with
// Flip.
type CRC struct {
	n     int
	q     uint32
	value uint32
	mask  uint32
	table [256]uint32
}

func polyFor(n int) (uint32, error) {
	switch n {
	case 8:
		return Poly8, nil
	case 16:
		return Poly16, nil
	case 32:
		return Poly32, nil
	default:
		return 0, errs.ErrUnsupportedCrcWidth
	}
}

// New builds a CRC accumulator of width n in {8,16,32}.
func New(n int) (*CRC, error) {
	q, err := polyFor(n)
	if err != nil {
		return nil, err
	}
	return newWithPoly(n, q), nil
}

func newWithPoly(n int, q uint32) *CRC {
	c := &CRC{n: n, q: q}
	if n == 32 {
		c.mask = 0xFFFFFFFF
	} else {
		c.mask = (uint32(1) << uint(n)) - 1
	}
	c.buildTable()
	return c
}

func (c *CRC) buildTable() {
	msb := uint32(1) << uint(c.n-1)
	shift := uint(c.n - 8)
	for b := 0; b < 256; b++ {
		v := uint32(b) << shift
		for i := 0; i < 8; i++ {
			if v&msb != 0 {
				v = ((v << 1) ^ c.q) & c.mask
			} else {
				v = (v << 1) & c.mask
			}
		}
		c.table[b] = v
	}
}

// AppendByte feeds one byte into the running checksum.
func (c *CRC) AppendByte(b byte) {
	shift := uint(c.n - 8)
	idx := (byte(c.value>>shift) ^ b) & 0xFF
	c.value = ((c.value << 8) & c.mask) ^ c.table[idx]
}

// Flip returns the bitwise complement of the current register, masked to
// the configured width.
func (c *CRC) Flip() uint32 {
	return (^c.value) & c.mask
}

// Checksum computes the checksum of data under the spec's finalization
// contract: feed every data byte, then the little-endian bytes of
// len(data) until exhausted, then n/8 zero bytes, then return the
// complement of the register.
func Checksum(data []byte, n int) (uint32, error) {
	c, err := New(n)
	if err != nil {
		return 0, err
	}

	for _, b := range data {
		c.AppendByte(b)
	}

	length := uint64(len(data))
	for length != 0 {
		c.AppendByte(byte(length & 0xFF))
		length >>= 8
	}

	for i := 0; i < n/8; i++ {
		c.AppendByte(0)
	}

	return c.Flip(), nil
}

// Checksum32 is the CRC-32 convenience entry point used by the framer's
// per-stage checksum contract.
func Checksum32(data []byte) uint32 {
	v, _ := Checksum(data, 32)
	return v
}
