package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, preserving the original cause.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err match markErr under Is without changing its message.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches ref, following both wrap chains and marks.
// Marked errors are invisible to the standard library's errors.Is, so every
// sentinel comparison goes through here.
func Is(err, ref error) bool {
	return cr.Is(err, ref)
}
