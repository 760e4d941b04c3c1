// SPDX-License-Identifier: EPL-2.0

package huffman

// CodeTable maps a sample value to its bit-string code, written as a
// string of '0' and '1' characters.
type CodeTable map[int16]string

// Codes walks the tree depth-first and records the root-to-leaf path of
// every leaf: '0' per left edge, '1' per right edge. A tree that is a
// lone leaf gets the fixed one-bit code "0" (the general walk would
// assign it no bits at all).
func Codes(root *Node) CodeTable {
	table := make(CodeTable)
	if root == nil {
		return table
	}

	if root.Leaf {
		table[root.Sample] = "0"
		return table
	}

	walk(root, nil, table)
	return table
}

func walk(n *Node, path []byte, table CodeTable) {
	if n.Leaf {
		table[n.Sample] = string(path)
		return
	}

	walk(n.Left, append(path, '0'), table)
	walk(n.Right, append(path, '1'), table)
}
