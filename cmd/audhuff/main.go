package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audhuff"
	"github.com/ik5/audhuff/formats/aiff"
	"github.com/ik5/audhuff/formats/mp3"
	"github.com/ik5/audhuff/formats/vorbis"
	"github.com/ik5/audhuff/formats/wav"
	"github.com/ik5/audhuff/pcm"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: audhuff encode <input.{wav|mp3|ogg|aiff}> <output.huf>")
	fmt.Fprintln(os.Stderr, "       audhuff decode <input.huf> <output.wav>")
	os.Exit(1)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "audhuff:", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) != 4 {
		usage()
	}

	inPath := os.Args[2]
	outPath := os.Args[3]

	switch os.Args[1] {
	case "encode":
		stats, err := encode(inPath, outPath)
		if err != nil {
			fatal(err)
		}
		fmt.Println("Encoding completed.")
		fmt.Printf("%d samples, %d distinct values, %d -> %d bytes (%.2f:1)\n",
			stats.Samples, stats.DistinctValues,
			stats.OriginalSize(), stats.CompressedSize(), stats.Ratio())
	case "decode":
		if err := audhuff.DecompressFile(inPath, outPath); err != nil {
			fatal(err)
		}
		fmt.Println("Decoding completed.")
	default:
		usage()
	}
}

func encode(inPath, outPath string) (*audhuff.Stats, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(inPath), "."))

	if ext == "wav" {
		// Canonical WAV goes through the verbatim-header path so the
		// round trip is byte-exact. Non-canonical layouts (extra
		// chunks) fall back to the go-audio import decoder below.
		stats, err := audhuff.CompressFile(inPath, outPath)
		if err == nil {
			return stats, nil
		}
		if !errors.Is(err, wav.ErrUnsupportedWavChunks) && !errors.Is(err, wav.ErrUnsupportedWavLayout) {
			return nil, err
		}
	}

	reg := pcm.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("unsupported input format: %q", ext)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", outPath, err)
	}

	stats, err := audhuff.CompressSource(src, out)
	if err != nil {
		out.Close()
		return nil, err
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", outPath, err)
	}
	return stats, nil
}
