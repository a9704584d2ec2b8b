package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program minus the process exit: it writes to stdout and
// stderr and returns the exit code.
func run(program string, args []string, stdout io.Writer, stderr io.Writer) int {
	err := execute(program, args, stdout)
	if err == nil {
		return exitOK
	}

	var unhandledErr *unhandledOptionError
	if errors.As(err, &unhandledErr) {
		fmt.Fprintf(stderr, "internal error: %v\n", err)
		return exitFailure
	}

	fmt.Fprintf(stderr, "%v\n", err)
	return exitCode(err)
}

func execute(program string, args []string, stdout io.Writer) error {
	cfg, act, err := loadConfig(program, args)
	if err != nil {
		return err
	}

	return dispatch(program, cfg, act, stdout)
}

func dispatch(program string, cfg config, act action, stdout io.Writer) error {
	switch act {
	case actionHelp:
		return printUsage(stdout, program)
	case actionPrint:
		integers, err := parseIntegers(cfg.Integers)
		if err != nil {
			return err
		}

		return printPairs(stdout, pairs(integers))
	default:
		return &unhandledOptionError{action: act}
	}
}
