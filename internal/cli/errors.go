package cli

import "fmt"

// UnknownOptionError is returned for an argument that is neither a known
// flag nor a message id.
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s (see --help)", e.Option)
}

// MissingValueError is returned when a flag that needs a value is last.
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %s requires a value", e.Option)
}

// InboxEmptyError is returned by --recent when there is nothing to view.
type InboxEmptyError struct {
	Address string
}

func (e *InboxEmptyError) Error() string {
	return fmt.Sprintf("no messages in the inbox of %s", e.Address)
}
