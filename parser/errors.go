package parser

import "fmt"

// ParseError describes a failure to build a tree from the input, and
// where in the input it happened.
type ParseError struct {
	Err        error
	LineNumber int
	Column     int
}

func (e ParseError) Error() string {
	return fmt.Sprintf(
		"%s at line %d, column %d",
		e.Err,
		e.LineNumber,
		e.Column,
	)
}

func (e ParseError) Unwrap() error {
	return e.Err
}
