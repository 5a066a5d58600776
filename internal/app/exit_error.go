package app

import "errors"

// Process exit codes beyond the generic 1.
const (
	ExitEmptyRoster = 2
	ExitInterrupted = 130
)

// ExitError carries a specific process exit code out of run.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error {
	return e.Err
}

func Exit(code int) error {
	return ExitError{Code: code}
}

func ExitWithError(code int, err error) error {
	return ExitError{Code: code, Err: err}
}

// asExitError also finds an ExitError wrapped by fmt.Errorf.
func asExitError(err error) (ExitError, bool) {
	var ee ExitError
	if errors.As(err, &ee) {
		return ee, true
	}
	return ExitError{}, false
}
