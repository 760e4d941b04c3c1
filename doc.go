// SPDX-License-Identifier: EPL-2.0

// Package audhuff losslessly compresses PCM 16-bit WAV audio with a
// per-file Huffman code.
//
// The compressor counts how often each distinct sample value occurs,
// builds a binary prefix-code tree from the frequency distribution,
// replaces every sample with its variable-length code, and packs the
// resulting bit sequence into bytes. The code table travels inside the
// compressed container, so decompression needs nothing but the file
// itself and reconstructs the original samples exactly, including the
// original WAV header bytes.
//
// # Quick Start
//
//	in, _ := os.Open("audio.wav")
//	out, _ := os.Create("audio.huf")
//	stats, err := audhuff.Compress(in, out)
//
//	// ... and back:
//	cf, _ := os.Open("audio.huf")
//	wf, _ := os.Create("restored.wav")
//	err = audhuff.Decompress(cf, wf)
//
// restored.wav is byte-identical to audio.wav.
//
// # Container Layout
//
// All integers are little-endian:
//
//	[44]byte   original WAV header, verbatim
//	uint32     code table entry count
//	per entry:
//	  int16    sample value
//	  uint32   code length in bits
//	  []byte   the code, one ASCII '0'/'1' byte per bit
//	uint32     total encoded bit count
//	[]byte     packed payload, ceil(bits/8) bytes, LSB-first
//
// The code table is stored unpacked (one byte per bit) while the payload
// is bit-packed; the explicit bit count makes the payload's zero-padded
// tail unambiguous.
//
// # Compressing Other Formats
//
// CompressSource accepts any pcm.Source, so MP3, Ogg Vorbis, AIFF, and
// non-canonical WAV input can be compressed after decoding to PCM 16-bit
// (see the formats subpackages). A canonical WAV header is synthesized
// for such input; the Huffman transform itself is still lossless over
// the decoded samples.
//
// # Errors
//
// File and structural problems surface as wrapped errors from the wav
// package (wav.ErrNotWavFile and friends); a container that ends early
// reports ErrTruncatedStream; a stored code table that is not
// prefix-free reports huffman.ErrInvalidCodeTable; and a payload whose
// bits end inside a code reports huffman.ErrTruncatedBitstream. All are
// unrecoverable for the run — the codec never salvages partial output.
package audhuff
