// SPDX-License-Identifier: EPL-2.0

package huffman

import (
	"fmt"
	"sort"
)

// Rebuild reconstructs a decoding tree from a serialized code table.
// The result is topologically equivalent to a tree that could have
// produced the table; it is not necessarily the encoder's original tree
// object. Entries are inserted in ascending sample-value order so that
// validation failures are reported deterministically.
//
// A table that is empty returns ErrNoSymbols. A table that is not
// prefix-free, holds a duplicate code, or holds a malformed code is
// rejected with ErrInvalidCodeTable.
func Rebuild(table CodeTable) (*Node, error) {
	if len(table) == 0 {
		return nil, ErrNoSymbols
	}

	values := make([]int16, 0, len(table))
	for v := range table {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	root := &Node{}
	for _, v := range values {
		if err := insert(root, v, table[v]); err != nil {
			return nil, fmt.Errorf("code %q for sample %d: %w", table[v], v, err)
		}
	}

	return root, nil
}

func insert(root *Node, sample int16, code string) error {
	if code == "" {
		return ErrInvalidCodeTable
	}

	cur := root
	for i := 0; i < len(code); i++ {
		if cur.Leaf {
			// An earlier code ends here, so this one extends past it.
			return ErrInvalidCodeTable
		}

		switch code[i] {
		case '0':
			if cur.Left == nil {
				cur.Left = &Node{}
			}
			cur = cur.Left
		case '1':
			if cur.Right == nil {
				cur.Right = &Node{}
			}
			cur = cur.Right
		default:
			return ErrInvalidCodeTable
		}
	}

	if cur.Leaf || cur.Left != nil || cur.Right != nil {
		// Endpoint already taken, or a prefix of an earlier code.
		return ErrInvalidCodeTable
	}

	cur.Leaf = true
	cur.Sample = sample
	return nil
}
