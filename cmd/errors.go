package cmd

import "errors"

// reportedError marks an error that was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
