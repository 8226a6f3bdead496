/*
Package avlseq implements an indexable, ordered, mutable sequence on top of an
AVL tree.

Sequences

A Sequence organizes its items in a binary tree which is ordered by position,
not by key. Every tree node caches the size of its subtree, so the item at a
given index can be located by rank in logarithmic time. Keeping the tree
height-balanced (AVL style, balance factors in {-1, 0, +1}) guarantees that all
positional operations stay logarithmic, even under heavy editing.

From Wikipedia:
In computer science, an AVL tree […] is a self-balancing binary search tree.
In an AVL tree, the heights of the two child subtrees of any node differ by at
most one; if at any time they differ by more than one, rebalancing is done to
restore this property. Lookup, insertion, and deletion all take O(log n) time
in both the average and worst cases. […] Insertions and deletions may require
the tree to be rebalanced by one or more tree rotations.

_________________________________________________________________________

An order-statistic tree augments every node with the size of its subtree.
Rank selection then descends from the root, comparing the requested rank with
the size of the left subtree plus one. Sequences use this to implement the list
operations

	Operation     |   Sequence      |  Slice
	--------------+-----------------+--------
	At            |   O(log n)      |   O(1)
	First/Last    |   O(1)          |   O(1)
	Insert        |   O(log n)      |   O(n)
	Delete        |   O(log n)      |   O(n)
	Concat        |   O(log n)      |   O(n)
	Iterate       |   O(n)          |   O(n)

Sequences are not safe for concurrent use. Clients sharing a sequence between
goroutines have to serialize access to it, including reads, as rotations
re-link ancestor chains which a concurrent rank search might observe.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package avlseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avlseq'
func tracer() tracing.Trace {
	return tracing.Select("avlseq")
}

// SeqError is an error type for the avlseq module
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a sequence position is
// outside the valid range for an operation.
const ErrIndexOutOfBounds = SeqError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")

// ErrSequenceCompleted signals that a sequence builder has already completed a
// sequence and it's illegal to further add items.
const ErrSequenceCompleted = SeqError("forbidden to add items; sequence has been completed")

// ErrInvariantViolation is reported by Check whenever the tree structure of a
// sequence is corrupt.
const ErrInvariantViolation = SeqError("sequence invariant violated")

// NotFound is returned by searches which did not find a matching item.
const NotFound = -1

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
