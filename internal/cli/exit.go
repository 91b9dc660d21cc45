package cli

import (
	"errors"
	"fmt"
	"io"
)

// Process exit codes. The non-zero values follow sysexits.h.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 64 // EX_USAGE: bad arguments or flags
	ExitDataErr = 65 // EX_DATAERR: the pattern is empty
	ExitNoInput = 66 // EX_NOINPUT: the input file could not be opened
	ExitConfig  = 78 // EX_CONFIG: the configuration is invalid
)

// ExitError carries the exit code chosen for a failure.
type ExitError struct {
	Code int
	Err  error

	// logged is set once the diagnostic has been written, so Execute
	// does not print it a second time.
	logged bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the root command to a process exit
// code. Errors cobra raises on its own (unknown flags, wrong number of
// arguments) are usage errors and get EX_USAGE (64), not the 2 that clap
// and most getopt-style tools use, so every failure code follows sysexits.h.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// report writes err to w unless it was already logged and returns the
// exit code for it.
func report(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.logged {
		fmt.Fprintln(w, "Error:", err)
	}
	return ExitCode(err)
}
