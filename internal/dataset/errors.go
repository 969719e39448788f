package dataset

import (
	"fmt"
	"strings"
)

// FetchError reports a dataset that could not be loaded.
type FetchError struct {
	Kind     Kind
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("load %s dataset from %s: %v", e.Kind, e.Location, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SchemaError lists required columns absent from a loaded table.
type SchemaError struct {
	Kind    Kind
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s dataset is missing columns: %s", e.Kind, strings.Join(e.Missing, ", "))
}
