/*
Package textfile provides API helpers to load UTF-8 text files as sequences
of lines.

Loading uses an asynchronous reader goroutine internally, which publishes
batches of lines to a broadcaster, while preserving a synchronous `Load` API.
Batches are built as balanced trees and joined to the result by
concatenation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avlseq'
func tracer() tracing.Trace {
	return tracing.Select("avlseq")
}
