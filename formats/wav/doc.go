// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM 16-bit WAV audio for the audhuff
// codec.
//
// The package has two distinct paths:
//
// # Canonical path (lossless round trip)
//
// The compressor carries the input's 44-byte WAV header through the
// compressed container verbatim, so decompression reproduces the
// original file byte for byte. ReadFile and WriteFile implement this
// path and require the canonical header layout: RIFF chunk, "fmt "
// chunk, "data" chunk, nothing in between.
//
//	h, samples, err := wav.ReadFile(file)       // header kept verbatim
//	err = wav.WriteFile(out, h, samples)        // header re-emitted verbatim
//
// The Header type exposes the format fields (Channels, SampleRate,
// DataSize, ...) without ever rewriting the underlying bytes.
//
// # Import path (any PCM 16-bit WAV)
//
// WAV files with extra chunks (LIST/INFO metadata, odd padding) do not
// fit the canonical layout. Decoder handles them through
// github.com/go-audio/wav and yields a pcm.Source; the compressor then
// synthesizes a fresh canonical header for the output:
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//	samples, err := pcm.Collect(src, 4096)
//
// This path preserves every sample but not the original chunk layout.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavChunks: canonical path found unexpected chunks
package wav
