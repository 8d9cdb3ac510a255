// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack provides a generic stack implementation.
package stack

// Stack provides a generic stack using a slice.
type Stack[T any] []T

// Push pushes item(s) onto the stack.
func (st *Stack[T]) Push(it ...T) {
	*st = append(*st, it...)
}

// Pop pops the top item off the stack.
// Returns the zero value and false if nothing on the stack.
func (st *Stack[T]) Pop() (T, bool) {
	n := len(*st)
	if n == 0 {
		var zv T
		return zv, false
	}
	li := n - 1
	top := (*st)[li]
	*st = (*st)[:li]
	return top, true
}

// Clear removes all items, keeping the allocated capacity.
func (st *Stack[T]) Clear() {
	*st = (*st)[:0]
}

// Len returns the number of items on the stack.
func (st *Stack[T]) Len() int {
	return len(*st)
}
