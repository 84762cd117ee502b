// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package realvec

import (
	"fmt"
	"iter"
	"strings"
)

// InitialCapacity is the number of slots allocated by New, and the
// minimum allocated by NewFilled.
const InitialCapacity = 2

// A Sequence is an ordered, variable-length run of T values stored in a
// buffer the Sequence owns exclusively. Append is amortized O(1) and
// indexed access is O(1).
//
// The zero value is an empty Sequence ready to use.
//
// A Sequence is not safe for concurrent use; callers must serialize
// access themselves.
type Sequence[T any] struct {
	// len(elems) is the capacity; only elems[:size] is in the sequence
	elems []T
	size  int

	// bumped on each reallocation, so cursors can tell they are stale
	generation uint64
}

// Instantiates an empty Sequence with InitialCapacity slots.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{
		elems: make([]T, InitialCapacity),
	}
}

// Instantiates a Sequence holding n copies of val. The capacity is twice
// n, but never below InitialCapacity. Panics if n is negative.
func NewFilled[T any](n int, val T) *Sequence[T] {
	if n < 0 {
		panic(fmt.Sprintf("realvec.NewFilled: negative size %d", n))
	}
	s := &Sequence[T]{
		elems: make([]T, max(2*n, InitialCapacity)),
		size:  n,
	}
	for i := 0; i < n; i++ {
		s.elems[i] = val
	}
	return s
}

func (s *Sequence[T]) Size() int {
	return s.size
}

func (s *Sequence[T]) Empty() bool {
	return s.Size() == 0
}

func (s *Sequence[T]) Capacity() int {
	return len(s.elems)
}

// Ref returns a pointer to the element at index i, without checking i
// against Size(). The caller must guarantee 0 <= i < Size(); a slot in
// [Size(), Capacity()) is silently handed back and is not part of the
// sequence. The pointer is only meaningful until the next growth.
func (s *Sequence[T]) Ref(i int) *T {
	return &s.elems[i]
}

// At is the checked form of Ref. An index outside [0, Size()) yields an
// error matching ErrOutOfRange, and the Sequence is left untouched.
func (s *Sequence[T]) At(i int) (*T, error) {
	if i < 0 || i >= s.size {
		return nil, outOfRange(i, s.size)
	}
	return s.Ref(i), nil
}

// Set stores v at index i, with the same checks as At.
func (s *Sequence[T]) Set(i int, v T) error {
	p, err := s.At(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Append stores a copy of v after the last element, growing the buffer
// first if it is full. Cursors taken before a growth become invalid.
func (s *Sequence[T]) Append(v T) {
	if s.size == len(s.elems) {
		s.grow()
	}
	s.elems[s.size] = v
	s.size++
}

// grow replaces the buffer with one twice as large, copying the
// elements over in order.
func (s *Sequence[T]) grow() {
	newCap := 2 * len(s.elems)
	if newCap == 0 {
		newCap = InitialCapacity
	}
	newElems := make([]T, newCap)
	copy(newElems, s.elems[:s.size])
	logger.Tracef("grow: capacity %d -> %d (size %d)", len(s.elems), newCap, s.size)
	s.elems = newElems
	s.generation++
}

// Remove deletes the element at index i, shifting the later elements
// down by one. Capacity is unchanged.
func (s *Sequence[T]) Remove(i int) error {
	if i < 0 || i >= s.size {
		return outOfRange(i, s.size)
	}
	copy(s.elems[i:], s.elems[i+1:s.size])
	s.size--
	// Don't keep a reference to the removed value alive
	var zero T
	s.elems[s.size] = zero
	return nil
}

// PopBack removes and returns the last element.
func (s *Sequence[T]) PopBack() (T, error) {
	var zero T
	if s.size == 0 {
		return zero, ErrEmpty
	}
	s.size--
	v := s.elems[s.size]
	s.elems[s.size] = zero
	return v, nil
}

// Slice returns a copy of the elements, in order.
func (s *Sequence[T]) Slice() []T {
	out := make([]T, s.size)
	copy(out, s.elems[:s.size])
	return out
}

// All iterates over the index and value of each element. Appending
// during the iteration is allowed; the new elements are not visited.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := s.size
		for i := 0; i < n && i < s.size; i++ {
			if !yield(i, s.elems[i]) {
				return
			}
		}
	}
}

// String renders the elements as "{ e0 e1 ... }".
func (s *Sequence[T]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for _, v := range s.All() {
		fmt.Fprintf(&b, " %v", v)
	}
	b.WriteString(" }")
	return b.String()
}
