// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package driver

import (
	"io"

	"github.com/juju/errors"
	"github.com/spf13/pflag"
)

// The element types the driver knows how to parse.
const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeString = "string"
)

type Config struct {
	// One of TypeInt, TypeFloat or TypeString
	ElemType string

	// Log each append and every buffer growth
	Debug bool

	// A loggo specification, e.g. "<root>=INFO;realvec=TRACE"
	LogConfig string
}

// ParseArgs reads the command line into a Config. Usage and flag errors
// are written to stderr. pflag.ErrHelp is returned as-is for -h/--help.
func ParseArgs(args []string, stderr io.Writer) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("realvec", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.ElemType, "type", "t", TypeInt,
		"element type of the vector: int, float or string")
	fs.BoolVar(&cfg.Debug, "debug", false,
		"log the vector's size and capacity after each append")
	fs.StringVar(&cfg.LogConfig, "log-config", "<root>=WARNING",
		"loggo logging specification")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, errors.NotValidf("argument %q", fs.Arg(0))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Trace(err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	switch cfg.ElemType {
	case TypeInt, TypeFloat, TypeString:
		return nil
	}
	return errors.NotValidf("element type %q", cfg.ElemType)
}
