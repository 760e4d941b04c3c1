// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into PCM 16-bit samples for
// compression.
//
// This package uses github.com/go-audio/aiff. Only 16-bit PCM AIFF is
// supported; those samples pass through without requantization.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	samples, err := pcm.Collect(src, 4096)
//
// The decoder returns a pcm.Source at the file's native channel count
// and sample rate.
package aiff
