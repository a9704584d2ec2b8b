package main

import (
	"errors"
	"fmt"
	"strings"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitArgument = 2
)

type flagParseError struct {
	err error
}

func (e *flagParseError) Error() string {
	return e.err.Error()
}

func (e *flagParseError) Unwrap() error {
	return e.err
}

type integerParseError struct {
	position int
	value    string
	err      error
}

func (e *integerParseError) Error() string {
	return fmt.Sprintf("argument %d %q is not a valid integer", e.position, e.value)
}

func (e *integerParseError) Unwrap() error {
	return e.err
}

// integerListError holds every integerParseError found in one argument list.
type integerListError struct {
	errs error
}

func (e *integerListError) Error() string {
	return fmt.Sprintf("invalid integer list: %v", e.errs)
}

func (e *integerListError) Unwrap() error {
	return e.errs
}

type unhandledOptionError struct {
	action action
}

func (e *unhandledOptionError) Error() string {
	return fmt.Sprintf("unhandled option: %s", e.action)
}

// joinErrors is a multierror.ErrorFormatFunc keeping all errors on a single line.
func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func exitCode(err error) int {
	var flagErr *flagParseError
	var listErr *integerListError
	var intErr *integerParseError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &flagErr), errors.As(err, &listErr), errors.As(err, &intErr):
		return exitArgument
	default:
		return exitFailure
	}
}
