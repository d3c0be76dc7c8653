/*
Package orderedtree offers an ordered binary search tree container.

Trees

A Tree stores keys of an ordered type in a linked binary search tree. Keys
less than a node's key live in its left subtree, keys greater or equal live
in its right subtree. Equal keys are never rejected but are appended to the
right, which makes a Tree behave like an ordered multiset.

The tree does not balance itself on mutation. Inserting keys in sorted order
yields a linear chain. Clients check IsBalanced and call Rebalance whenever
they see fit; Rebalance rebuilds the tree to minimal height from its sorted
key sequence.

All tree walks use explicit stacks instead of recursion, so degenerate trees
do not exhaust the goroutine stack. Clients wanting to bound the depth of a
tree may configure a depth budget with WithMaxDepth.

Trees are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package orderedtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer selected by key 'orderedtree'.
func T() tracing.Trace {
	return tracing.Select("orderedtree")
}

// TreeError is an error type for the orderedtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged when removing a key which is not stored in a tree.
const ErrKeyNotFound = TreeError("key not found")

// ErrDepthExceeded is flagged when an insertion would place a node deeper
// than the depth budget of a tree.
const ErrDepthExceeded = TreeError("depth budget exceeded")

// ErrUnsupportedOrder is flagged for traversal orders which are part of the
// API but not implemented.
const ErrUnsupportedOrder = TreeError("traversal order not supported")

// ErrInvalidTree is flagged by Check for a violated structural invariant.
const ErrInvalidTree = TreeError("invalid tree")

// ErrInvalidConfig is flagged when a tree is created with an invalid option.
const ErrInvalidConfig = TreeError("invalid configuration")
