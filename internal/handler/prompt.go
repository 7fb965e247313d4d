package handler

import (
	"fmt"
	"strconv"
	"strings"

	"vocabulaire/internal/domain"
)

// Ask prints question and reads lines until parse accepts one.
// Rejected input prints the parse error as a hint and asks again;
// only closed input ends the loop early.
func Ask[T any](c *Console, question string, parse func(string) (T, error)) (T, error) {
	for {
		c.Println(question)

		line, err := c.ReadLine()
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		c.Hint(err.Error())
	}
}

// Operation is what to do with a large word list
type Operation int

const (
	OperationTest Operation = iota
	OperationSplit
)

// ParseOperation accepts T (test) or S/B (split), any case
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t":
		return OperationTest, nil
	case "s", "b":
		return OperationSplit, nil
	}
	return OperationTest, fmt.Errorf("type T or S")
}

// ParseChunkSize accepts a positive integer
func ParseChunkSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, domain.ErrInvalidChunkSize
	}
	return n, nil
}

// ParseSampleSize accepts a positive integer, or blank for the whole list (0)
func ParseSampleSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("enter a positive number, or nothing to test every word")
	}
	return n, nil
}

// ParseYesNo accepts y/yes/o/oui and n/no/non, any case
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "o", "oui":
		return true, nil
	case "n", "no", "non":
		return false, nil
	}
	return false, fmt.Errorf("answer y or n")
}
