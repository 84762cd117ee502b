// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

// Package driver is the interactive loop behind the realvec command: it
// reads values, appends each one to a Sequence and prints the result.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/kr/pretty"

	"github.com/gilramir/realvec"
)

var logger = loggo.GetLogger("realvec.driver")

const (
	Prompt = "Enter [ELEM] to add:"

	ErrInvalidInput = errors.ConstError("input is not valid UTF-8")
)

// What --debug dumps after each append
type seqState struct {
	Size     int
	Capacity int
}

// Execute configures logging from cfg, then reads whitespace-separated
// values from in until EOF or the first value that does not parse as
// cfg.ElemType. The vector is printed to out after every append.
//
// Numbers are read the way a C++ stream extracts them: the longest
// leading numeric prefix of a field is appended, and the session ends
// right after it if the field had anything left over.
func Execute(cfg Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return errors.Trace(err)
	}
	if err := configureLogging(cfg); err != nil {
		return errors.Trace(err)
	}

	switch cfg.ElemType {
	case TypeInt:
		return loop(in, out, cfg.Debug, false, scanInt)
	case TypeFloat:
		return loop(in, out, cfg.Debug, false, scanFloat)
	default:
		return loop(in, out, cfg.Debug, true, func(field string) (string, int) {
			return field, len(field)
		})
	}
}

func configureLogging(cfg Config) error {
	if err := loggo.ConfigureLoggers(cfg.LogConfig); err != nil {
		return errors.Annotate(err, "configuring logging")
	}
	if cfg.Debug {
		if err := loggo.ConfigureLoggers("realvec=TRACE"); err != nil {
			return errors.Annotate(err, "configuring logging")
		}
	}
	return nil
}

// scanInt reads an optionally signed run of decimal digits from the
// start of field. It returns the value and the number of bytes used;
// 0 bytes means field does not start with an int.
func scanInt(field string) (int, int) {
	n := 0
	if n < len(field) && (field[n] == '+' || field[n] == '-') {
		n++
	}
	digits := n
	for n < len(field) && field[n] >= '0' && field[n] <= '9' {
		n++
	}
	if n == digits {
		return 0, 0
	}
	v, err := strconv.Atoi(field[:n])
	if err != nil {
		// Out of range
		return 0, 0
	}
	return v, n
}

// scanFloat reads the longest prefix of field that is a float64.
func scanFloat(field string) (float64, int) {
	for n := len(field); n > 0; n-- {
		if v, err := strconv.ParseFloat(field[:n], 64); err == nil {
			return v, n
		}
	}
	return 0, 0
}

// loop runs the read/append/print session. scan returns a value and the
// number of bytes of the field it used. With strictUTF8, invalid input
// bytes are an error; otherwise they just end the session, like any
// other unreadable value.
func loop[T any](in io.Reader, out io.Writer, debug bool, strictUTF8 bool,
	scan func(string) (T, int)) error {

	seq := realvec.New[T]()
	if err := printVec(out, seq); err != nil {
		return err
	}

	r := bufio.NewReader(in)
	var tokens tokenBufferT
	for {
		line, readErr := r.ReadString('\n')
		tokens.Initialize(line)
		for {
			ok, field, eof := tokens.nextField()
			if !ok {
				err := errors.Annotatef(ErrInvalidInput, "at byte %d of %q", tokens.pos, line)
				if strictUTF8 {
					return err
				}
				logger.Debugf("stopping: %v", err)
				return nil
			}
			if eof {
				break
			}
			v, n := scan(field)
			if n == 0 {
				logger.Debugf("stopping at %q", field)
				return nil
			}
			seq.Append(v)
			if debug {
				logger.Debugf("appended %q: %s", field[:n],
					pretty.Sprint(seqState{Size: seq.Size(), Capacity: seq.Capacity()}))
			}
			if err := printVec(out, seq); err != nil {
				return err
			}
			if n < len(field) {
				logger.Debugf("stopping at %q", field[n:])
				return nil
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return errors.Annotate(readErr, "reading input")
		}
	}
}

// printVec writes the vector followed by the next prompt.
func printVec[T any](out io.Writer, seq *realvec.Sequence[T]) error {
	_, err := fmt.Fprintf(out, "My vector: %s\n%s\n", seq, Prompt)
	return errors.Annotate(err, "writing output")
}
