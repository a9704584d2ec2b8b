package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

func printUsage(w io.Writer, program string) error {
	_, err := fmt.Fprintf(w, "print possible combinations of given integer list\ne.g.) $%s 13 14 15 16\n", program)
	if err != nil {
		return fmt.Errorf("unable to write usage: %w", err)
	}

	return nil
}

func printPairs(w io.Writer, seq iter.Seq[pair]) error {
	bw := bufio.NewWriter(w)
	for p := range seq {
		_, err := fmt.Fprintf(bw, "%d %d\n", p.first, p.second)
		if err != nil {
			return fmt.Errorf("unable to write combinations: %w", err)
		}
	}

	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("unable to write combinations: %w", err)
	}

	return nil
}
