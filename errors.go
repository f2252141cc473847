package datecast

import (
	"errors"
	"fmt"
)

var (
	//ErrMethodNotFound is returned when a method could not be dispatched
	ErrMethodNotFound = errors.New("method not found")
	//ErrNotDateField is returned when accessing field outside of date fields
	ErrNotDateField = errors.New("not a date field")
)

//FormatError represents date value that does not match expected format
type FormatError struct {
	Field  string
	Value  string
	Layout string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("failed to parse %v value %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("failed to parse %v value %q with layout %q: %v", e.Field, e.Value, e.Layout, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
