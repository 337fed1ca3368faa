// Package framer implements a self-delimiting TLV frame format: a
// "CFP1" magic followed by tag-length-value records carrying a codec's
// fingerprint-derived checksum, ordered parameters, and payload.
package framer

import (
	"encoding/binary"

	"github.com/codechain-go/codechain/codec"
	"github.com/codechain-go/codechain/crc"
	"github.com/codechain-go/codechain/errs"
)

// Magic is the fixed 4-byte frame header.
var Magic = []byte("CFP1")

// TLV tags.
const (
	TagCodecBegin = 0x01
	TagChecksum   = 0x02
	TagParam      = 0x03
	TagCodecEnd   = 0x04
	TagData       = 0x05
)

func encodeTLV(tag byte, value []byte) []byte {
	out := make([]byte, 0, 5+len(value))
	out = append(out, tag)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(value)))
	out = append(out, lenBuf[:]...)
	out = append(out, value...)
	return out
}

// Checksum computes the CRC-32 checksum contract for a codec stage:
// CRC32(LE32(fingerprint) || for each (k,v) in meta: utf8(k) || v || payload).
func Checksum(fingerprint uint32, meta codec.Meta, payload []byte) uint32 {
	buf := make([]byte, 0, 4+len(payload)+16)
	var fpBuf [4]byte
	binary.LittleEndian.PutUint32(fpBuf[:], fingerprint)
	buf = append(buf, fpBuf[:]...)
	for _, k := range meta.Keys() {
		v, _ := meta.Get(k)
		buf = append(buf, []byte(k)...)
		buf = append(buf, v...)
	}
	buf = append(buf, payload...)
	return crc.Checksum32(buf)
}

// PackFrame serializes one codec stage's meta, payload, and checksum into
// a self-delimiting TLV frame prefixed with the magic.
func PackFrame(cksum uint32, meta codec.Meta, payload []byte) []byte {
	var out []byte
	out = append(out, Magic...)
	out = append(out, encodeTLV(TagCodecBegin, nil)...)

	var cksumBuf [4]byte
	binary.LittleEndian.PutUint32(cksumBuf[:], cksum)
	out = append(out, encodeTLV(TagChecksum, cksumBuf[:])...)

	for _, k := range meta.Keys() {
		v, _ := meta.Get(k)
		raw := append([]byte(k), 0x00)
		raw = append(raw, v...)
		out = append(out, encodeTLV(TagParam, raw)...)
	}

	out = append(out, encodeTLV(TagCodecEnd, nil)...)
	out = append(out, encodeTLV(TagData, payload)...)
	return out
}

// UnpackFrame parses a TLV frame into its checksum, ordered meta, and
// payload. CODEC_BEGIN/CODEC_END are structural markers only; PARAM
// order on decode is preserved as the meta's insertion order, matching
// the framer's emission order on encode.
func UnpackFrame(buf []byte) (uint32, codec.Meta, []byte, error) {
	if len(buf) < len(Magic) || string(buf[:len(Magic)]) != string(Magic) {
		return 0, codec.Meta{}, nil, errs.ErrBadMagic
	}

	pos := len(Magic)
	var cksum uint32
	haveCksum := false
	meta := codec.NewMeta()
	var payload []byte
	havePayload := false

	for pos < len(buf) {
		if pos+5 > len(buf) {
			return 0, codec.Meta{}, nil, errs.ErrIncompleteFrame
		}
		tag := buf[pos]
		length := binary.LittleEndian.Uint32(buf[pos+1 : pos+5])
		pos += 5
		if pos+int(length) > len(buf) {
			return 0, codec.Meta{}, nil, errs.ErrIncompleteFrame
		}
		value := buf[pos : pos+int(length)]
		pos += int(length)

		switch tag {
		case TagChecksum:
			if len(value) != 4 {
				return 0, codec.Meta{}, nil, errs.ErrIncompleteFrame
			}
			cksum = binary.LittleEndian.Uint32(value)
			haveCksum = true
		case TagParam:
			key, val, err := splitParam(value)
			if err != nil {
				return 0, codec.Meta{}, nil, err
			}
			meta.Set(key, val)
		case TagData:
			payload = value
			havePayload = true
		case TagCodecBegin, TagCodecEnd:
			// structural markers, no payload to consume
		}
	}

	if !haveCksum || !havePayload {
		return 0, codec.Meta{}, nil, errs.ErrIncompleteFrame
	}
	return cksum, meta, payload, nil
}

func splitParam(value []byte) (string, []byte, error) {
	for i, b := range value {
		if b == 0x00 {
			return string(value[:i]), value[i+1:], nil
		}
	}
	return "", nil, errs.ErrIncompleteFrame
}
