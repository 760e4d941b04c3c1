// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the size of a canonical WAV header: RIFF chunk (12),
// fmt chunk (24), data chunk header (8).
const HeaderSize = 44

// Header is a canonical 44-byte WAV header kept verbatim. The codec
// never rewrites header bytes: what was read from the input is re-emitted
// on output, so a compress/decompress round trip is byte-identical.
// Accessors decode individual fields from the raw bytes on demand.
type Header struct {
	raw [HeaderSize]byte
}

// ReadHeader reads and validates a canonical WAV header: RIFF/WAVE
// markers, a "fmt " chunk at the canonical offset describing PCM 16-bit
// audio, and a "data" chunk header directly after it.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header

	if _, err := io.ReadFull(r, h.raw[:]); err != nil {
		return h, fmt.Errorf("reading WAV header: %w", err)
	}

	if !bytes.Equal(h.raw[0:4], []byte("RIFF")) || !bytes.Equal(h.raw[8:12], []byte("WAVE")) {
		return h, ErrNotWavFile
	}

	if !bytes.Equal(h.raw[12:16], []byte("fmt ")) {
		return h, ErrUnsupportedWavLayout
	}

	if h.Format() != 1 || h.BitsPerSample() != 16 {
		return h, ErrOnlyPCM16bitSupported
	}

	// Canonical layout only: the data chunk follows fmt directly.
	if !bytes.Equal(h.raw[36:40], []byte("data")) {
		return h, ErrUnsupportedWavChunks
	}

	return h, nil
}

// NewHeader builds a canonical PCM 16-bit header for the given sample
// rate, channel count, and sample count (per all channels combined).
func NewHeader(sampleRate, channels, numSamples int) Header {
	var h Header

	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample/8)
	blockAlign := uint16(channels) * (bitsPerSample / 8)
	dataSize := uint32(numSamples * 2)

	copy(h.raw[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h.raw[4:8], 36+dataSize)
	copy(h.raw[8:12], "WAVE")

	copy(h.raw[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h.raw[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(h.raw[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(h.raw[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(h.raw[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h.raw[28:32], byteRate)
	binary.LittleEndian.PutUint16(h.raw[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h.raw[34:36], bitsPerSample)

	copy(h.raw[36:40], "data")
	binary.LittleEndian.PutUint32(h.raw[40:44], dataSize)

	return h
}

// Format returns the audio format tag (1 = PCM).
func (h Header) Format() int {
	return int(binary.LittleEndian.Uint16(h.raw[20:22]))
}

// Channels returns the channel count.
func (h Header) Channels() int {
	return int(binary.LittleEndian.Uint16(h.raw[22:24]))
}

// SampleRate returns the sample rate in Hz.
func (h Header) SampleRate() int {
	return int(binary.LittleEndian.Uint32(h.raw[24:28]))
}

// ByteRate returns sampleRate * channels * bitsPerSample/8.
func (h Header) ByteRate() int {
	return int(binary.LittleEndian.Uint32(h.raw[28:32]))
}

// BlockAlign returns channels * bitsPerSample/8.
func (h Header) BlockAlign() int {
	return int(binary.LittleEndian.Uint16(h.raw[32:34]))
}

// BitsPerSample returns the sample bit depth.
func (h Header) BitsPerSample() int {
	return int(binary.LittleEndian.Uint16(h.raw[34:36]))
}

// DataSize returns the size of the raw sample region in bytes, as
// declared by the data chunk header.
func (h Header) DataSize() int {
	return int(binary.LittleEndian.Uint32(h.raw[40:44]))
}

// Bytes returns a copy of the raw header bytes.
func (h Header) Bytes() []byte {
	out := make([]byte, HeaderSize)
	copy(out, h.raw[:])
	return out
}

// WriteTo writes the raw header bytes to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.raw[:])
	if err != nil {
		return int64(n), fmt.Errorf("writing WAV header: %w", err)
	}
	return int64(n), nil
}
