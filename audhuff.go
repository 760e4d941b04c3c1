// SPDX-License-Identifier: EPL-2.0

package audhuff

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/audhuff/formats/wav"
	"github.com/ik5/audhuff/pcm"
)

// collectBufSize is the read granularity used when draining a pcm.Source.
const collectBufSize = 4096

// Compress reads a canonical PCM 16-bit WAV stream from r and writes
// the compressed container to w. The WAV header is carried through
// verbatim, so Decompress restores the input byte for byte.
func Compress(r io.Reader, w io.Writer) (*Stats, error) {
	h, samples, err := wav.ReadFile(r)
	if err != nil {
		return nil, err
	}
	return Encode(w, h, samples)
}

// CompressSource drains src and compresses its samples, synthesizing a
// canonical WAV header from the source's sample rate and channel count.
// This is the entry point for non-WAV input (MP3, Ogg Vorbis, AIFF) and
// for WAV files whose chunk layout is not canonical.
func CompressSource(src pcm.Source, w io.Writer) (*Stats, error) {
	samples, err := pcm.Collect(src, collectBufSize)
	if err != nil {
		return nil, err
	}

	h := wav.NewHeader(src.SampleRate(), src.Channels(), len(samples))
	return Encode(w, h, samples)
}

// Decompress reads a compressed container from r and writes the
// restored WAV stream to w.
func Decompress(r io.Reader, w io.Writer) error {
	h, samples, err := Decode(r)
	if err != nil {
		return err
	}
	return wav.WriteFile(w, h, samples)
}

// CompressFile compresses the WAV file at inPath into outPath.
func CompressFile(inPath, outPath string) (*Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", outPath, err)
	}

	stats, err := Compress(in, out)
	if err != nil {
		out.Close()
		return nil, err
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", outPath, err)
	}
	return stats, nil
}

// DecompressFile restores the container at inPath into the WAV file at
// outPath.
func DecompressFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	if err := Decompress(in, out); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	return nil
}
