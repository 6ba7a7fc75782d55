package main

import (
	"errors"
	"os"

	"github.com/cristianoliveira/g-project/cmd"
	"github.com/cristianoliveira/g-project/internal/colors"
	gperrors "github.com/cristianoliveira/g-project/internal/errors"
)

// console reports failures that happen outside a running session.
var console gperrors.ErrorHandler = gperrors.NewConsole(nil)

// exitCodeError carries a non-zero exit code requested by a session.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return "session exited with a non-zero code"
}

func main() {
	os.Exit(run(cmd.Execute))
}

// run executes the CLI and returns the process exit code.
func run(execute func() error) int {
	colors.StructuredInfo(colors.Event{Component: "startup", Action: "main", Status: "started"})
	if err := execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			colors.StructuredInfo(colors.Event{Component: "startup", Action: "main", Status: "exited",
				Fields: map[string]interface{}{"code": exitErr.code}})
			return exitErr.code
		}
		console.Error(err.Error())
		colors.StructuredError(colors.Event{Component: "startup", Action: "main", Status: "failed", Err: err})
		return 1
	}
	colors.StructuredInfo(colors.Event{Component: "startup", Action: "main", Status: "completed"})
	return 0
}
