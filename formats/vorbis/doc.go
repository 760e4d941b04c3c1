// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into PCM 16-bit samples for
// compression.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// normalized float32 frames, which are quantized to int16 on the way
// out; the quantization happens once, before the lossless Huffman
// transform.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	samples, err := pcm.Collect(src, 4096)
//
// The decoder returns a pcm.Source at the stream's native channel count
// and sample rate.
package vorbis
