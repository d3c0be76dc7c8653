/*
Command bstbench compares word lookups in ordered trees against a linear
scan of a word list, and prints trees built from word lists.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newBaseCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "bstbench: %v\n", err)
		os.Exit(1)
	}
}
