package argz

import (
	"io"
	"os"
)

// ExitFunc is the function ParseOrExit calls to terminate the process.
type ExitFunc func(int)

var osExit ExitFunc = os.Exit

// stdoutWriter receives help, version, and dump output. stderrWriter
// receives scan failures reported by ParseOrExit.
var stdoutWriter io.Writer = os.Stdout
var stderrWriter io.Writer = os.Stderr

// SetStdoutWriter redirects help, version, and dump output, for testing or
// for hosts that capture console text.
func SetStdoutWriter(w io.Writer) {
	stdoutWriter = w
}

// SetStderrWriter redirects the failure output written by ParseOrExit.
func SetStderrWriter(w io.Writer) {
	stderrWriter = w
}

// SetExitFunc allows overriding the exit function for testing
func SetExitFunc(exitFunc ExitFunc) {
	osExit = exitFunc
}
