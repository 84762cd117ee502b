// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package realvec

import (
	"github.com/juju/errors"
)

// A Cursor is a position inside a Sequence. Begin and End delimit the
// half-open range [0, Size()).
//
// A Cursor records the buffer it was made against. Once the Sequence
// grows, every older Cursor reports !Valid() and dereferencing it panics.
type Cursor[T any] struct {
	seq        *Sequence[T]
	pos        int
	generation uint64
}

func (s *Sequence[T]) Begin() Cursor[T] {
	return Cursor[T]{seq: s, pos: 0, generation: s.generation}
}

func (s *Sequence[T]) End() Cursor[T] {
	return Cursor[T]{seq: s, pos: s.size, generation: s.generation}
}

// Valid reports whether the owning Sequence still uses the buffer this
// Cursor was made against.
func (c Cursor[T]) Valid() bool {
	return c.seq != nil && c.generation == c.seq.generation
}

func (c Cursor[T]) Index() int {
	return c.pos
}

// Next returns the Cursor one position further on. It does not check
// against End.
func (c Cursor[T]) Next() Cursor[T] {
	c.pos++
	return c
}

// Equal reports whether both cursors name the same position of the same
// Sequence.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.seq == o.seq && c.pos == o.pos
}

func (c Cursor[T]) Get() T {
	return *c.Ref()
}

// Ref returns a pointer to the element under the Cursor. It panics with
// an ErrInvalidCursor error if the Sequence grew since the Cursor was
// made, or an ErrOutOfRange error if the Cursor is at or past the end.
func (c Cursor[T]) Ref() *T {
	if !c.Valid() {
		panic(errors.Annotatef(ErrInvalidCursor, "cursor at %d", c.pos))
	}
	p, err := c.seq.At(c.pos)
	if err != nil {
		panic(err)
	}
	return p
}
