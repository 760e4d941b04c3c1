package huffman

import "errors"

var (
	ErrNoSymbols          = errors.New("no symbols to encode")
	ErrInvalidCodeTable   = errors.New("invalid code table")
	ErrTruncatedBitstream = errors.New("bit sequence ends inside a code")
)
