// SPDX-License-Identifier: EPL-2.0

// Package pcm provides the sample-stream primitives shared by the
// audhuff import decoders.
//
// The compressor operates on signed 16-bit PCM samples. Every supported
// input format is adapted to the Source interface, which streams
// interleaved int16 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    Close() error
//	}
//
// A Decoder constructs a Source from raw input bytes, and the Registry
// maps format keys (file extensions such as "wav", "mp3", "ogg") to
// decoders:
//
//	reg := pcm.NewRegistry()
//	reg.Register("mp3", mp3.Decoder{})
//	dec, ok := reg.Get("mp3")
//
// Collect drains a Source into a single in-memory sample slice, which is
// the shape the batch compressor consumes:
//
//	samples, err := pcm.Collect(src, 4096)
//
// Sources that decode to floating-point (Ogg Vorbis) convert through
// FloatToInt16, which clamps to [-1, 1] before scaling.
package pcm
