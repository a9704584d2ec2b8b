package main

import (
	"errors"
	"fmt"

	"github.com/alexflint/go-arg"
)

type action int

const (
	actionPrint action = iota
	actionHelp
)

func (a action) String() string {
	switch a {
	case actionPrint:
		return "print"
	case actionHelp:
		return "help"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

type config struct {
	Integers []string `arg:"positional" help:"integers to print the combinations of"`
}

func loadConfig(program string, args []string) (config, action, error) {
	cfg := config{}

	parser, err := arg.NewParser(arg.Config{Program: program}, &cfg)
	if err != nil {
		return config{}, actionPrint, err
	}

	err = parser.Parse(args)
	switch {
	case err == nil:
		return cfg, actionPrint, nil
	case errors.Is(err, arg.ErrHelp):
		return config{}, actionHelp, nil
	case errors.Is(err, arg.ErrVersion):
		// only -h and --help are recognized
		return config{}, actionPrint, &flagParseError{err: fmt.Errorf("unknown argument --version")}
	default:
		return config{}, actionPrint, &flagParseError{err: err}
	}
}
