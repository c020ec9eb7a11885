// This file is part of go-optscan.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds an iterator from a slice to allow peaking for the next value.
package sliceiterator

// Iterator - iterator data
type Iterator[T any] struct {
	data []T
	idx  int
}

// New - builds an Iterator positioned before the first element.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{data: s, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator[T]) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator[T]) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator[T]) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator[T]) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns value at current index or the zero value if you are trying to read the value after having fully read the list.
func (a *Iterator[T]) Value() T {
	var zero T
	if a.idx < 0 || a.idx >= len(a.data) {
		return zero
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator[T]) PeekNextValue() (T, bool) {
	var zero T
	if a.idx+1 >= len(a.data) {
		return zero, false
	}
	return a.data[a.idx+1], true
}

// IsLast - Tells if the current element is the last.
func (a *Iterator[T]) IsLast() bool {
	return a.idx == len(a.data)-1
}

// Remaining - Get all remaining values index inclusive.
func (a *Iterator[T]) Remaining() []T {
	if a.idx >= len(a.data) {
		return []T{}
	}
	if a.idx < 0 {
		return a.data
	}
	return a.data[a.idx:]
}

// Seek - moves the index so that the next call to Next lands on idx.
func (a *Iterator[T]) Seek(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(a.data) {
		idx = len(a.data)
	}
	a.idx = idx - 1
}

// Reset - resets the index of the Iterator.
func (a *Iterator[T]) Reset() {
	a.idx = -1
}
