// SPDX-License-Identifier: EPL-2.0

package huffman

import (
	"container/heap"
	"sort"
)

// Node is a code tree node: either a leaf carrying one sample value, or
// an internal node with exactly two children.
type Node struct {
	Sample int16
	Leaf   bool
	Left   *Node
	Right  *Node

	weight int
	seq    int
}

// nodeHeap is a min-heap over (weight, seq). The sequence number makes
// extraction order deterministic when weights tie.
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*Node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// Build constructs a prefix-code tree from a frequency table by
// repeatedly combining the two lowest-weight nodes until one remains.
// Of the two nodes extracted per step, the first becomes the left child.
// Leaves are seeded in ascending sample-value order, so the resulting
// tree (and every code derived from it) is fully deterministic.
//
// A table with a single entry yields a tree that is a lone leaf.
// An empty table returns ErrNoSymbols.
func Build(freq map[int16]int) (*Node, error) {
	if len(freq) == 0 {
		return nil, ErrNoSymbols
	}

	values := make([]int16, 0, len(freq))
	for v := range freq {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	nodes := make(nodeHeap, len(values))
	for i, v := range values {
		nodes[i] = &Node{
			Sample: v,
			Leaf:   true,
			weight: freq[v],
			seq:    i,
		}
	}
	heap.Init(&nodes)

	seq := len(values)
	for len(nodes) > 1 {
		left := heap.Pop(&nodes).(*Node)
		right := heap.Pop(&nodes).(*Node)

		heap.Push(&nodes, &Node{
			Left:   left,
			Right:  right,
			weight: left.weight + right.weight,
			seq:    seq,
		})
		seq++
	}

	return nodes[0], nil
}
