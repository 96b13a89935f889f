package strict

import "fmt"

// UnknownFieldError reports a read, write, or override that targeted a field
// name absent from the node's declared schema. This is always a
// configuration-authoring bug and is surfaced to the caller immediately.
type UnknownFieldError struct {
	Schema string
	Name   string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("config schema %q has no field %q", e.Schema, e.Name)
}

// TypeMismatchError reports a write or override whose shape (scalar versus
// nested sub-tree) disagrees with the declared shape of the target field.
type TypeMismatchError struct {
	Schema string
	Name   string
	Reason string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("config field %q of schema %q: %s", e.Name, e.Schema, e.Reason)
}
