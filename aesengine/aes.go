// Package aesengine implements the AES block cipher core: key schedule,
// SubBytes/ShiftRows/MixColumns tables, and merged T-tables for the
// forward and "equivalent inverse cipher" decrypt path. It has no notion
// of a mode of operation or padding -- see the blockmode package for
// ECB/CBC.
package aesengine

import (
	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/gf256"
)

const (
	// Nb is the fixed AES block width in 32-bit words; the block size is
	// always Nb*4 = 16 bytes.
	Nb        = 4
	BlockSize = Nb * 4
)

var nkToNr = map[int]int{4: 10, 6: 12, 8: 14}

// Cipher is an immutable AES instance for one key.
type Cipher struct {
	nk, nr   int
	keyBytes []byte
	gf       *gf256.Field

	sb, invSB [256]byte
	sr, invSR [4][4]byte
	m, invM   [4][4]byte
	t, invT   [4][256][4]byte

	// ksched[round][row][col], invKsched likewise.
	ksched, invKsched [][4][Nb]byte
}

// New builds an AES cipher from a raw key matrix K (4 rows x Nk columns,
// column-major word layout) and a round count. Most callers should use
// FromKeyBytes instead.
func New(k [][4]byte, nr int) *Cipher {
	nk := len(k)
	gf := gf256.Default()
	sb, invSB := buildSBox(gf)
	sr, invSR := buildShiftRows()
	m, invM := buildMixColumns()
	t, invT := buildTTables(gf, sb, invSB, m, invM)

	c := &Cipher{
		nk: nk, nr: nr, gf: gf,
		sb: sb, invSB: invSB,
		sr: sr, invSR: invSR,
		m: m, invM: invM,
		t: t, invT: invT,
	}
	c.buildKeySchedule(k)
	return c
}

// FromKeyBytes builds an AES cipher from a 128/192/256-bit key.
func FromKeyBytes(key []byte) (*Cipher, error) {
	bits := len(key) * 8
	nk := bits / 32
	nr, ok := nkToNr[nk]
	if bits%32 != 0 || !ok {
		return nil, errs.ErrInvalidKey
	}

	k := make([][4]byte, nk)
	for col := 0; col < nk; col++ {
		for row := 0; row < 4; row++ {
			k[col][row] = key[col*4+row]
		}
	}
	c := New(k, nr)
	c.keyBytes = append([]byte(nil), key...)
	return c, nil
}

// KeyBytes returns the raw key this cipher was constructed from, used by
// the codec layer's fingerprint computation.
func (c *Cipher) KeyBytes() []byte {
	return c.keyBytes
}

func (c *Cipher) subWord(w [4]byte) [4]byte {
	var out [4]byte
	for i, b := range w {
		out[i] = c.sb[b]
	}
	return out
}

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

func xorWord(a, b [4]byte) [4]byte {
	return [4]byte{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// buildKeySchedule derives the forward and equivalent-inverse key
// schedules. Every Nk-th column is transformed with RotWord+SubWord
// XOR Rcon; for Nk=8, columns with index%Nk==4 additionally get a plain
// SubWord. The inverse schedule equals the forward schedule at rounds 0
// and Nr, and is pre-multiplied by InvMixColumns for the rounds between.
func (c *Cipher) buildKeySchedule(k [][4]byte) {
	nwords := Nb * (c.nr + 1)
	cols := make([][4]byte, nwords)
	copy(cols, k)

	rcon := byte(1)
	for r := c.nk; r < nwords; r++ {
		tmp := cols[r-1]
		switch {
		case r%c.nk == 0:
			tmp = c.subWord(rotWord(tmp))
			tmp[0] ^= rcon
			rcon = c.gf.Mul(rcon, 2)
		case c.nk > 6 && r%c.nk == 4:
			tmp = c.subWord(tmp)
		}
		cols[r] = xorWord(cols[r-c.nk], tmp)
	}

	c.ksched = make([][4][Nb]byte, c.nr+1)
	for round := 0; round <= c.nr; round++ {
		for b := 0; b < Nb; b++ {
			col := cols[round*Nb+b]
			for row := 0; row < 4; row++ {
				c.ksched[round][row][b] = col[row]
			}
		}
	}

	c.invKsched = make([][4][Nb]byte, c.nr+1)
	c.invKsched[0] = c.ksched[0]
	c.invKsched[c.nr] = c.ksched[c.nr]
	for round := 1; round < c.nr; round++ {
		for col := 0; col < Nb; col++ {
			var word [4]byte
			for row := 0; row < 4; row++ {
				word[row] = c.ksched[round][row][col]
			}
			mixed := c.mixColumn(word, c.invM)
			for row := 0; row < 4; row++ {
				c.invKsched[round][row][col] = mixed[row]
			}
		}
	}
}

func (c *Cipher) mixColumn(word [4]byte, mat [4][4]byte) [4]byte {
	var out [4]byte
	for i := 0; i < 4; i++ {
		var acc byte
		for j := 0; j < 4; j++ {
			acc ^= c.gf.Mul(mat[i][j], word[j])
		}
		out[i] = acc
	}
	return out
}

type state [4][Nb]byte

func loadState(buf []byte) state {
	var s state
	for col := 0; col < Nb; col++ {
		for row := 0; row < 4; row++ {
			s[row][col] = buf[col*4+row]
		}
	}
	return s
}

func (s state) bytes() []byte {
	out := make([]byte, BlockSize)
	for col := 0; col < Nb; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = s[row][col]
		}
	}
	return out
}

func (c *Cipher) addRoundKey(s state, ksched [][4][Nb]byte, round int) state {
	var out state
	for row := 0; row < 4; row++ {
		for col := 0; col < Nb; col++ {
			out[row][col] = s[row][col] ^ ksched[round][row][col]
		}
	}
	return out
}

func (c *Cipher) lookupT(s state, t [4][256][4]byte, shift func(r, col int) int) state {
	var out state
	for col := 0; col < Nb; col++ {
		var acc [4]byte
		for r := 0; r < 4; r++ {
			contribution := t[r][s[r][shift(r, col)]]
			for i := 0; i < 4; i++ {
				acc[i] ^= contribution[i]
			}
		}
		for row := 0; row < 4; row++ {
			out[row][col] = acc[row]
		}
	}
	return out
}

func (c *Cipher) subBytes(s state, box [256]byte) state {
	var out state
	for row := 0; row < 4; row++ {
		for col := 0; col < Nb; col++ {
			out[row][col] = box[s[row][col]]
		}
	}
	return out
}

func (c *Cipher) shiftRows(s state, idx [4][4]byte) state {
	var out state
	for row := 0; row < 4; row++ {
		for col := 0; col < Nb; col++ {
			out[row][col] = s[row][idx[row][col]]
		}
	}
	return out
}

// Encrypt enciphers exactly one 16-byte block.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) != BlockSize {
		return nil, errs.ErrBlockSizeMismatch
	}

	s := loadState(plaintext)
	s = c.addRoundKey(s, c.ksched, 0)

	fwdShift := func(r, col int) int { return (col + r) % Nb }
	for round := 1; round < c.nr; round++ {
		s = c.lookupT(s, c.t, fwdShift)
		s = c.addRoundKey(s, c.ksched, round)
	}

	s = c.subBytes(s, c.sb)
	s = c.shiftRows(s, c.sr)
	s = c.addRoundKey(s, c.ksched, c.nr)

	return s.bytes(), nil
}

// Decrypt deciphers exactly one 16-byte block via the equivalent inverse
// cipher: inv_T lookups plus the pre-transformed inverse key schedule, no
// separate InvMixColumns step inside the main loop.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != BlockSize {
		return nil, errs.ErrBlockSizeMismatch
	}

	s := loadState(ciphertext)
	s = c.addRoundKey(s, c.invKsched, c.nr)

	invShift := func(r, col int) int { return ((col-r)%Nb + Nb) % Nb }
	for round := c.nr - 1; round >= 1; round-- {
		s = c.lookupT(s, c.invT, invShift)
		s = c.addRoundKey(s, c.invKsched, round)
	}

	s = c.shiftRows(s, c.invSR)
	s = c.subBytes(s, c.invSB)
	s = c.addRoundKey(s, c.invKsched, 0)

	return s.bytes(), nil
}

// BlockSizeBytes reports the fixed AES block size, 16 bytes.
func (c *Cipher) BlockSizeBytes() int {
	return BlockSize
}
