// SPDX-License-Identifier: EPL-2.0

package audhuff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/ik5/audhuff/bitpack"
	"github.com/ik5/audhuff/formats/wav"
	"github.com/ik5/audhuff/huffman"
)

// Stats summarizes a single encode.
type Stats struct {
	Samples        int // input samples
	DistinctValues int // code table entries
	EncodedBits    int // payload length before packing
	HeaderBytes    int // WAV header (passthrough)
	TableBytes     int // serialized code table, including its count field
	PayloadBytes   int // packed payload, including the bit-count field
}

// OriginalSize returns the size in bytes of the uncompressed WAV stream.
func (s *Stats) OriginalSize() int {
	return s.HeaderBytes + s.Samples*2
}

// CompressedSize returns the size in bytes of the compressed container.
func (s *Stats) CompressedSize() int {
	return s.HeaderBytes + s.TableBytes + s.PayloadBytes
}

// Ratio returns originalSize / compressedSize.
func (s *Stats) Ratio() float64 {
	return float64(s.OriginalSize()) / float64(s.CompressedSize())
}

// Encode compresses samples into the container format, carrying the WAV
// header through verbatim. Empty input produces a container with an
// empty code table and a zero-length payload.
func Encode(w io.Writer, h wav.Header, samples []int16) (*Stats, error) {
	freq := huffman.Count(samples)

	table := huffman.CodeTable{}
	if len(freq) > 0 {
		root, err := huffman.Build(freq)
		if err != nil {
			return nil, err
		}
		table = huffman.Codes(root)
	}

	var totalBits int
	for v, code := range table {
		totalBits += freq[v] * len(code)
	}

	bits := make([]byte, 0, totalBits)
	for _, s := range samples {
		code := table[s]
		for i := 0; i < len(code); i++ {
			bits = append(bits, code[i]-'0')
		}
	}
	packed := bitpack.Pack(bits)

	if _, err := h.WriteTo(w); err != nil {
		return nil, err
	}

	tableBytes := serializeCodeTable(table)
	if _, err := w.Write(tableBytes); err != nil {
		return nil, fmt.Errorf("writing code table: %w", err)
	}

	var meta [4]byte
	binary.LittleEndian.PutUint32(meta[:], uint32(totalBits))
	if _, err := w.Write(meta[:]); err != nil {
		return nil, fmt.Errorf("writing bit count: %w", err)
	}

	if _, err := w.Write(packed); err != nil {
		return nil, fmt.Errorf("writing payload: %w", err)
	}

	return &Stats{
		Samples:        len(samples),
		DistinctValues: len(table),
		EncodedBits:    totalBits,
		HeaderBytes:    wav.HeaderSize,
		TableBytes:     len(tableBytes),
		PayloadBytes:   4 + len(packed),
	}, nil
}

// serializeCodeTable renders the table in ascending sample-value order:
// a uint32 entry count, then per entry the int16 sample, the uint32 code
// bit length, and the code as one ASCII byte per bit.
func serializeCodeTable(table huffman.CodeTable) []byte {
	values := make([]int16, 0, len(table))
	for v := range table {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	var buf bytes.Buffer
	var scratch [4]byte

	binary.LittleEndian.PutUint32(scratch[:], uint32(len(values)))
	buf.Write(scratch[:])

	for _, v := range values {
		code := table[v]

		binary.LittleEndian.PutUint16(scratch[:2], uint16(v))
		buf.Write(scratch[:2])

		binary.LittleEndian.PutUint32(scratch[:], uint32(len(code)))
		buf.Write(scratch[:])

		buf.WriteString(code)
	}

	return buf.Bytes()
}
