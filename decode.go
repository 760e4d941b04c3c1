// SPDX-License-Identifier: EPL-2.0

package audhuff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audhuff/bitpack"
	"github.com/ik5/audhuff/formats/wav"
	"github.com/ik5/audhuff/huffman"
)

// maxCodeEntries is the number of distinct int16 values; a stored entry
// count above it cannot come from a valid encode.
const maxCodeEntries = 1 << 16

// maxCodeLen bounds a single code's bit length. A Huffman tree over n
// leaves is at most n-1 deep, so valid codes never exceed this.
const maxCodeLen = maxCodeEntries - 1

// Decode reads one compressed container and reconstructs the original
// WAV header and sample sequence.
//
// The container is consumed in order: header, code table, bit count,
// payload, then the payload bits are walked against the tree rebuilt
// from the stored table. A container that ends early returns
// ErrTruncatedStream; a defective table returns
// huffman.ErrInvalidCodeTable; payload bits that end inside a code
// return huffman.ErrTruncatedBitstream.
func Decode(r io.Reader) (wav.Header, []int16, error) {
	h, err := wav.ReadHeader(r)
	if err != nil {
		return h, nil, err
	}

	table, err := readCodeTable(r)
	if err != nil {
		return h, nil, err
	}

	bitCount, err := readUint32(r, "bit count")
	if err != nil {
		return h, nil, err
	}

	payload := make([]byte, bitpack.PackedLen(int(bitCount)))
	if _, err := io.ReadFull(r, payload); err != nil {
		return h, nil, fmt.Errorf("reading payload: %w", truncated(err))
	}

	if len(table) == 0 {
		if bitCount != 0 {
			return h, nil, fmt.Errorf("%d payload bits but no code table entries: %w",
				bitCount, huffman.ErrInvalidCodeTable)
		}
		return h, nil, nil
	}

	root, err := huffman.Rebuild(table)
	if err != nil {
		return h, nil, err
	}

	bits, err := bitpack.Unpack(payload, int(bitCount))
	if err != nil {
		return h, nil, err
	}

	samples, err := root.Decode(bits)
	if err != nil {
		return h, nil, err
	}

	return h, samples, nil
}

func readCodeTable(r io.Reader) (huffman.CodeTable, error) {
	count, err := readUint32(r, "code table count")
	if err != nil {
		return nil, err
	}
	if count > maxCodeEntries {
		return nil, fmt.Errorf("%d code table entries: %w", count, huffman.ErrInvalidCodeTable)
	}

	table := make(huffman.CodeTable, count)
	var entry [2]byte

	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return nil, fmt.Errorf("reading code table entry %d: %w", i, truncated(err))
		}
		sample := int16(binary.LittleEndian.Uint16(entry[:]))

		codeLen, err := readUint32(r, "code length")
		if err != nil {
			return nil, err
		}
		if codeLen > maxCodeLen {
			return nil, fmt.Errorf("code length %d for sample %d: %w",
				codeLen, sample, huffman.ErrInvalidCodeTable)
		}

		code := make([]byte, codeLen)
		if _, err := io.ReadFull(r, code); err != nil {
			return nil, fmt.Errorf("reading code for sample %d: %w", sample, truncated(err))
		}

		if _, dup := table[sample]; dup {
			return nil, fmt.Errorf("duplicate entry for sample %d: %w",
				sample, huffman.ErrInvalidCodeTable)
		}
		table[sample] = string(code)
	}

	return table, nil
}

func readUint32(r io.Reader, field string) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("reading %s: %w", field, truncated(err))
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// truncated maps short-read errors to ErrTruncatedStream, leaving other
// I/O errors as they are.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedStream
	}
	return err
}
