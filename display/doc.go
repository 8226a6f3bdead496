/*
Package display renders the shape of a sequence's tree on a console.

Trees are printed sideways, with the root at the left margin and right
subtrees above their parents, so the items read in sequence order from the
bottom line to the top line. Every node is annotated with its height and its
balance factor, and nodes are colored by balance factor if the output
device supports it.

Item labels may contain arbitrary Unicode text. Labels are truncated and
padded by display width (UAX#11, UAX#29), not by byte or rune count, to keep
the annotations aligned.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avlseq'
func tracer() tracing.Trace {
	return tracing.Select("avlseq")
}
