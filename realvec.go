// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

// Package realvec provides Sequence, a generic growable array that manages
// its own contiguous buffer, plus a Stack adapter layered on top of it.
package realvec

import (
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

// The debug logger for this module. It is silent until configured
// through loggo, e.g. loggo.ConfigureLoggers("realvec=TRACE").
var logger = loggo.GetLogger("realvec")

// Change the debug logger object in this module
func SetDebugLogger(l loggo.Logger) {
	logger = l
}

// Returns the current debug logger in this module.
func GetDebugLogger() loggo.Logger {
	return logger
}

const (
	// ErrOutOfRange is the kind of every error produced by a checked
	// access with an index outside [0, Size()).
	ErrOutOfRange = errors.ConstError("index out of range")

	// ErrEmpty is returned when removing from or peeking into an
	// empty container.
	ErrEmpty = errors.ConstError("container is empty")

	// ErrInvalidCursor is the panic value kind for a Cursor used after
	// its Sequence reallocated.
	ErrInvalidCursor = errors.ConstError("cursor invalidated by growth")
)

func outOfRange(index, size int) error {
	return errors.Annotatef(ErrOutOfRange, "index %d with size %d", index, size)
}
