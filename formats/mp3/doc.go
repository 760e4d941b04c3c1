// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into PCM 16-bit samples for compression.
//
// This package uses github.com/hajimehoshi/go-mp3, whose output is
// already 16-bit little-endian PCM, so samples pass through without
// requantization.
//
// Use the Decoder to feed an MP3 file to the compressor:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	samples, err := pcm.Collect(src, 4096)
//
// The decoder returns a pcm.Source. Output is stereo for most MP3 files,
// at the file's native sample rate.
//
// Note that compressing from MP3 is an import conversion: the Huffman
// container stores the decoded PCM, not the original MP3 bytes, so the
// round trip reproduces the PCM rendering rather than the MP3 file.
package mp3
