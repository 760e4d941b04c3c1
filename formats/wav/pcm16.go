// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadPCM16 reads size bytes of little-endian int16 samples from r.
// An odd size drops the trailing byte, matching the stored sample count.
func ReadPCM16(r io.Reader, size int) ([]int16, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading sample data: %w", err)
	}

	samples := make([]int16, size/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(buf[2*i : 2*i+2]))
	}
	return samples, nil
}

// WritePCM16 writes samples to w as little-endian int16 bytes. Larger
// inputs are written in chunks to bound the staging buffer.
func WritePCM16(w io.Writer, samples []int16) error {
	const chunkSize = 8192
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]

		buf = buf[:len(chunk)*2]
		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing sample data: %w", err)
		}
	}

	return nil
}

// ReadFile reads a canonical PCM 16-bit WAV stream: the 44-byte header
// verbatim, then the sample region the header's data-size field
// delimits.
func ReadFile(r io.Reader) (Header, []int16, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return h, nil, err
	}

	samples, err := ReadPCM16(r, h.DataSize())
	if err != nil {
		return h, nil, err
	}

	return h, samples, nil
}

// WriteFile writes the header bytes verbatim followed by the samples.
func WriteFile(w io.Writer, h Header, samples []int16) error {
	if _, err := h.WriteTo(w); err != nil {
		return err
	}
	return WritePCM16(w, samples)
}
