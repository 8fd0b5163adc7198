package testutil

import (
	"slices"
)

// Model is a plain-slice reference sequence used to check a vector against.
type Model[T any] struct {
	items []T
}

// NewModel returns a model holding a copy of items.
func NewModel[T any](items ...T) *Model[T] {
	return &Model[T]{items: slices.Clone(items)}
}

// Len returns the number of elements.
func (m *Model[T]) Len() int { return len(m.items) }

// Get returns the element at i.
func (m *Model[T]) Get(i int) T { return m.items[i] }

// Set replaces the element at i.
func (m *Model[T]) Set(i int, v T) { m.items[i] = v }

// Insert places v at i.
func (m *Model[T]) Insert(i int, v T) { m.items = slices.Insert(m.items, i, v) }

// Delete removes and returns the element at i.
func (m *Model[T]) Delete(i int) T {
	v := m.items[i]
	m.items = slices.Delete(m.items, i, i+1)
	return v
}

// PushBack appends v.
func (m *Model[T]) PushBack(v T) { m.items = append(m.items, v) }

// PushFront prepends v.
func (m *Model[T]) PushFront(v T) { m.Insert(0, v) }

// PopBack removes and returns the last element.
func (m *Model[T]) PopBack() T { return m.Delete(len(m.items) - 1) }

// PopFront removes and returns the first element.
func (m *Model[T]) PopFront() T { return m.Delete(0) }

// Values returns a copy of the elements.
func (m *Model[T]) Values() []T { return slices.Clone(m.items) }
