// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package realvec

import (
	"github.com/juju/loggo/v2"
	. "gopkg.in/check.v1"
)

func (s *MySuite) TestDebugLoggerSeesGrowth(c *C) {
	testLog := &loggo.TestWriter{}
	ctx := loggo.NewContext(loggo.TRACE)
	c.Assert(ctx.AddWriter("test", testLog), IsNil)

	saved := GetDebugLogger()
	SetDebugLogger(ctx.GetLogger("realvec"))
	defer SetDebugLogger(saved)
	c.Check(GetDebugLogger().Name(), Equals, "realvec")

	seq := New[int]()
	seq.Append(1)
	seq.Append(2)
	c.Check(testLog.Log(), HasLen, 0)

	seq.Append(3)
	c.Assert(testLog.Log(), HasLen, 1)
	entry := testLog.Log()[0]
	c.Check(entry.Level, Equals, loggo.TRACE)
	c.Check(entry.Module, Equals, "realvec")
	c.Check(entry.Message, Equals, "grow: capacity 2 -> 4 (size 2)")
}
