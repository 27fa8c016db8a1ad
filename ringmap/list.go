// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ringmap

// entry is a node of the acceptance-order list.
type entry[K comparable, V any] struct {
	// Next and previous pointers in the doubly-linked list of entries.
	// To simplify the implementation, internally a list l is implemented
	// as a ring, such that &l.root is both the next entry of the newest
	// list entry (l.Front()) and the previous entry of the oldest.
	next, prev *entry[K, V]

	// The list to which this entry belongs.
	list *ringList[K, V]

	// The key that is being stored.
	key K

	// The value stored with this entry.
	value V

	// The footprint measured when the entry was accepted. Removal
	// subtracts exactly this amount from the running total, so a value
	// mutated in place after insertion never skews the accounting.
	size int
}

// prevEntry returns the previous list entry or nil.
func (e *entry[K, V]) prevEntry() *entry[K, V] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// ringList represents a doubly linked list in acceptance order.
// The zero value for ringList is an empty list ready to use.
type ringList[K comparable, V any] struct {
	root entry[K, V] // sentinel list entry, only &root, root.prev, and root.next are used
	len  int         // current list length excluding (this) sentinel entry
}

// init initializes or clears list l.
func (l *ringList[K, V]) init() *ringList[K, V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// newList returns an initialized list.
func newList[K comparable, V any]() *ringList[K, V] {
	return (&ringList[K, V]{}).init()
}

// length returns the number of entries of list l.
// The complexity is O(1).
func (l *ringList[K, V]) length() int { return l.len }

// back returns the oldest entry of list l or nil if the list is empty.
func (l *ringList[K, V]) back() *entry[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// pushFront inserts a new entry e with the given payload at the newest
// position of list l and returns e.
func (l *ringList[K, V]) pushFront(k K, v V, size int) *entry[K, V] {
	e := &entry[K, V]{key: k, value: v, size: size, list: l}
	at := &l.root
	n := at.next
	at.next = e
	e.prev = at
	e.next = n
	n.prev = e
	l.len++
	return e
}

// remove removes e from its list, decrements l.len.
func (l *ringList[K, V]) remove(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil // avoid memory leaks
	e.prev = nil // avoid memory leaks
	e.list = nil
	l.len--
}
