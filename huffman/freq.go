// SPDX-License-Identifier: EPL-2.0

package huffman

// Count builds a frequency table for samples, one entry per distinct
// value. An empty input yields an empty table.
func Count(samples []int16) map[int16]int {
	freq := make(map[int16]int)
	for _, s := range samples {
		freq[s]++
	}
	return freq
}
