// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package driver

import (
	"unicode"
	"unicode/utf8"
)

// tokenBufferT walks a line of input one rune at a time, handing back
// whitespace-separated fields.
type tokenBufferT struct {
	input string
	pos   int
}

func (s *tokenBufferT) Initialize(input string) {
	s.input = input
	s.pos = 0
}

// Return ok, field, eof. A field is a maximal run of non-space runes.
// If not ok, the input is not valid UTF-8 at s.pos.
func (s *tokenBufferT) nextField() (bool, string, bool) {
	// Skip leading space
	for {
		ok, r, size, eof := s._peekNextRune()
		if !ok {
			return false, "", false
		}
		if eof {
			return true, "", true
		}
		if !unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}

	start := s.pos
	for {
		ok, r, size, eof := s._peekNextRune()
		if !ok {
			return false, "", false
		}
		if eof || unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
	return true, s.input[start:s.pos], false
}

// Return ok, rune, size, eof, but does not advance the pointer
func (s *tokenBufferT) _peekNextRune() (bool, rune, int, bool) {
	// EOS?
	if s.pos == len(s.input) {
		return true, utf8.RuneError, 0, true
	}
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	if r == utf8.RuneError && size <= 1 {
		return false, utf8.RuneError, size, false
	}
	return true, r, size, false
}
