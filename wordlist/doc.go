/*
Package wordlist loads newline-delimited word lists, e.g. dictionaries used
to benchmark ordered trees.

Loading is done by a background goroutine which broadcasts batches of words
as they are read. This is transparent to clients of Load.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package wordlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'orderedtree'
func tracer() tracing.Trace {
	return tracing.Select("orderedtree")
}
