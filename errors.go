package audhuff

import "errors"

// ErrTruncatedStream reports a compressed container that ends before a
// declared field or the payload is fully present.
var ErrTruncatedStream = errors.New("compressed stream truncated")
