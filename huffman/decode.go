// SPDX-License-Identifier: EPL-2.0

package huffman

// Decode walks bits (bytes valued 0 or 1) against the tree: each bit
// descends one edge, and reaching a leaf emits its sample and resets the
// walk to the root. The bit count must cover whole codes only; a
// sequence that ends mid-code, or that descends an edge the tree does
// not have, returns ErrTruncatedBitstream.
func (n *Node) Decode(bits []byte) ([]int16, error) {
	samples := make([]int16, 0, len(bits))

	cur := n
	for _, bit := range bits {
		var next *Node
		if bit == 0 {
			next = cur.Left
		} else {
			next = cur.Right
		}
		if next == nil {
			return nil, ErrTruncatedBitstream
		}

		if next.Leaf {
			samples = append(samples, next.Sample)
			cur = n
		} else {
			cur = next
		}
	}

	if cur != n {
		return nil, ErrTruncatedBitstream
	}

	return samples, nil
}
