// Package codec defines the Codec interface and the insertion-ordered
// Meta type shared by every stage of a pipeline.
package codec

import (
	"encoding/binary"

	"github.com/codechain-go/codechain/crc"
)

// Meta is an insertion-ordered association of string keys to byte
// values. Frame checksum correctness depends on meta being iterated in a
// stable order on both encode and decode, so this is a small ordered
// association list rather than a bare map.
type Meta struct {
	keys   []string
	values map[string][]byte
}

// NewMeta returns an empty Meta.
func NewMeta() Meta {
	return Meta{values: map[string][]byte{}}
}

// Set assigns value to key, recording insertion order the first time a
// key is set.
func (m *Meta) Set(key string, value []byte) {
	if m.values == nil {
		m.values = map[string][]byte{}
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m Meta) Get(key string) ([]byte, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m Meta) Keys() []string {
	return m.keys
}

// Len reports the number of entries.
func (m Meta) Len() int {
	return len(m.keys)
}

// Codec is a self-describing, chainable stage in a pipeline: it turns
// data into (meta, payload) and back, and exposes a fingerprint -- a
// deterministic integer identifying its configuration -- used by the
// framer's checksum.
type Codec interface {
	Encode(data []byte) (Meta, []byte, error)
	Decode(meta Meta, payload []byte) ([]byte, error)
	Fingerprint() uint32
}

// Fingerprint derives a deterministic, content-addressed identifier from
// a codec's identifying parameters: a type tag plus any number of
// parameter byte strings, each length-prefixed so "ab","c" and "a","bc"
// never collide. No memory addresses or process-local salts are
// involved, so frames can be verified across processes.
func Fingerprint(tag string, parts ...[]byte) uint32 {
	buf := make([]byte, 0, 64)
	buf = appendLengthPrefixed(buf, []byte(tag))
	for _, p := range parts {
		buf = appendLengthPrefixed(buf, p)
	}
	return crc.Checksum32(buf)
}

func appendLengthPrefixed(buf, part []byte) []byte {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(part)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, part...)
	return buf
}
