// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package main

import (
	"os"

	"github.com/juju/loggo/v2"
	"github.com/spf13/pflag"

	"github.com/gilramir/realvec/cmd/realvec/driver"
)

func main() {
	logger := loggo.GetLogger("realvec.cmd")

	cfg, err := driver.ParseArgs(os.Args[1:], os.Stderr)
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	if err := driver.Execute(cfg, os.Stdin, os.Stdout); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
