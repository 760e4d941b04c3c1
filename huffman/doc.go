// SPDX-License-Identifier: EPL-2.0

// Package huffman builds and decodes binary prefix codes over 16-bit PCM
// sample values.
//
// The package covers the whole entropy-coding transform used by audhuff:
//   - Count builds a frequency table from a sample sequence
//   - Build turns a frequency table into a code tree by greedy
//     minimum-weight combination
//   - Codes walks the tree and assigns each sample value a bit-string
//     code ("0" for a left edge, "1" for a right edge)
//   - Rebuild reconstructs a decoding tree from a serialized code table
//   - Node.Decode walks a bit sequence against a tree and emits samples
//
// # Determinism
//
// The exact code assigned to each value depends on how weight ties are
// broken, so the construction is pinned down: leaves are seeded in
// ascending sample-value order, every node carries a sequence number in
// creation order, and the heap orders nodes by (weight, sequence). Of
// the two nodes extracted per combination step, the first becomes the
// left child. Encoding the same samples therefore always produces the
// same bits.
//
// # Single-value input
//
// A sequence holding one distinct value yields a tree that is a lone
// leaf, which the general walk would give an empty code. Codes assigns
// the fixed one-bit code "0" to it instead, and Rebuild places it as the
// left child of a synthetic root, so encode and decode agree bit for bit.
//
// # Prefix property
//
// Codes generated from a built tree are prefix-free by construction: a
// code ends only at a leaf, and leaves have no descendants. Rebuild
// verifies the property for externally supplied tables and rejects
// tables where one code is a prefix of another.
package huffman
