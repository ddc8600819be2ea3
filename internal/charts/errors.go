package charts

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("chart artifact not found")
	// ErrDeserialization is matched by every DeserializationError.
	ErrDeserialization = errors.New("invalid chart artifact")
)

// NotFoundError reports a chart artifact that is absent from the assets
// directory, or a name that cannot refer to a file inside it.
type NotFoundError struct {
	Name string
	Dir  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("chart %q not found in %s", e.Name, e.Dir)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DeserializationError reports an artifact whose content is not a chart
// specification.
type DeserializationError struct {
	Name   string
	Reason string
	Err    error
}

func (e *DeserializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chart %q: %s: %v", e.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("chart %q: %s", e.Name, e.Reason)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

func (e *DeserializationError) Is(target error) bool { return target == ErrDeserialization }
