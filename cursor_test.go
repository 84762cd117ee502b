// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package realvec

import (
	. "gopkg.in/check.v1"
)

func (s *MySuite) TestCursorRange(c *C) {
	seq := New[int]()
	c.Check(seq.Begin().Equal(seq.End()), Equals, true)

	seq.Append(10)
	begin, end := seq.Begin(), seq.End()
	c.Check(begin.Index(), Equals, 0)
	c.Check(end.Index(), Equals, 1)
	c.Check(begin.Next().Equal(end), Equals, true)
	c.Check(begin.Get(), Equals, 10)
}

func (s *MySuite) TestCursorRefIsMutable(c *C) {
	seq := NewFilled(3, 0)
	i := 0
	for it := seq.Begin(); !it.Equal(seq.End()); it = it.Next() {
		*it.Ref() = i
		i++
	}
	c.Check(seq.Slice(), DeepEquals, []int{0, 1, 2})
}

func (s *MySuite) TestCursorInvalidatedByGrowth(c *C) {
	seq := New[int]()
	seq.Append(1)
	it := seq.Begin()

	// Fills the buffer, no reallocation yet
	seq.Append(2)
	c.Check(it.Valid(), Equals, true)
	c.Check(it.Get(), Equals, 1)

	seq.Append(3)
	c.Check(it.Valid(), Equals, false)
	c.Check(func() { it.Get() }, PanicMatches, "cursor at 0: cursor invalidated by growth")
	c.Check(seq.Begin().Valid(), Equals, true)
}

func (s *MySuite) TestCursorPastEnd(c *C) {
	seq := New[int]()
	seq.Append(1)
	c.Check(func() { seq.End().Get() }, PanicMatches, "index 1 with size 1: index out of range")
}

func (s *MySuite) TestCursorZeroValue(c *C) {
	var it Cursor[int]
	c.Check(it.Valid(), Equals, false)
	c.Check(func() { it.Ref() }, PanicMatches, ".*cursor invalidated by growth")
}

func (s *MySuite) TestCursorsOfDifferentSequences(c *C) {
	a := New[int]()
	b := New[int]()
	c.Check(a.Begin().Equal(b.Begin()), Equals, false)
}
