/*
Package collection holds the small contract shared by the containers of this
module: size tracking, emptiness reporting and bulk construction from an
initial sequence of items.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package collection

import (
	"fmt"
	"iter"
	"slices"
)

// Collection is implemented by every container which tracks its size.
type Collection interface {
	Len() int
	IsEmpty() bool
}

// Adder is a collection which accepts items one at a time.
type Adder[T any] interface {
	Add(item T) error
}

// Counter is the size counter of a container.
// The zero value is an empty counter.
type Counter struct {
	size int
}

// Len returns the number of items counted.
func (c *Counter) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// IsEmpty reports whether the count is zero.
func (c *Counter) IsEmpty() bool {
	return c.Len() == 0
}

// Inc counts one more item.
func (c *Counter) Inc() {
	c.size++
}

// Dec counts one item less. It panics if the counter would drop below zero,
// which always signals a bookkeeping error of the embedding container.
func (c *Counter) Dec() {
	if c.size == 0 {
		panic("collection: counter dropped below zero")
	}
	c.size--
}

// Reset sets the count to zero.
func (c *Counter) Reset() {
	c.size = 0
}

// AddAll adds every item of seq to c, in sequence order.
// It stops at the first error and returns it, annotated with the position
// of the offending item.
func AddAll[T any](c Adder[T], seq iter.Seq[T]) error {
	if seq == nil {
		return nil
	}
	i := 0
	for item := range seq {
		if err := c.Add(item); err != nil {
			return fmt.Errorf("adding item #%d: %w", i, err)
		}
		i++
	}
	return nil
}

// AddSlice is AddAll for a list of items.
func AddSlice[T any](c Adder[T], items ...T) error {
	return AddAll(c, slices.Values(items))
}
