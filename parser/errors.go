package parser

import (
	"fmt"
)

// Returned when an input file is malformed or unsupported. No points are returned alongside it.
type FormatError struct {
	Source string
	// Position of the offending token or line, 0 if unknown.
	Pos int
	Msg string
	Err error
}

func (self *FormatError) Error() string {
	msg := self.Msg
	if self.Err != nil {
		msg += ": " + self.Err.Error()
	}
	if self.Pos > 0 {
		return fmt.Sprintf("%s: invalid input at %d: %s", self.Source, self.Pos, msg)
	}
	return fmt.Sprintf("%s: invalid input: %s", self.Source, msg)
}

func (self *FormatError) Unwrap() error {
	return self.Err
}
