/*
Package stack implements a linked LIFO stack.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package stack

import (
	"errors"

	"github.com/npillmayer/orderedtree/collection"
)

// ErrEmptyStack is returned when popping or peeking an empty stack.
var ErrEmptyStack = errors.New("stack: stack is empty")

type cell[T any] struct {
	item T
	next *cell[T]
}

// Stack is a linked LIFO stack. The zero value is an empty stack.
type Stack[T any] struct {
	size collection.Counter
	top  *cell[T]
}

var _ collection.Collection = (*Stack[int])(nil)
var _ collection.Adder[int] = (*Stack[int])(nil)

// New creates a stack holding items, with the last item on top.
func New[T any](items ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, item := range items {
		s.Push(item)
	}
	return s
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return s.size.Len()
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return s.size.IsEmpty()
}

// Push puts item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.top = &cell[T]{item: item, next: s.top}
	s.size.Inc()
}

// Add pushes item. It never fails.
func (s *Stack[T]) Add(item T) error {
	s.Push(item)
	return nil
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}
	c := s.top
	s.top = c.next
	c.next = nil
	s.size.Dec()
	return c.item, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.top.item, nil
}

// Clear drops all items.
func (s *Stack[T]) Clear() {
	s.top = nil
	s.size.Reset()
}
