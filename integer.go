package main

import (
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// parseIntegers converts every value to a base-10 int64, keeping the order. All
// invalid values are reported together.
func parseIntegers(values []string) ([]int64, error) {
	integers := make([]int64, 0, len(values))

	var result *multierror.Error
	for i, value := range values {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			result = multierror.Append(result, &integerParseError{
				position: i + 1,
				value:    value,
				err:      err,
			})
			continue
		}

		integers = append(integers, n)
	}

	if result != nil {
		result.ErrorFormat = joinErrors
		return nil, &integerListError{errs: result}
	}

	return integers, nil
}
