package sentience

import (
	"bufio"
	"io"
	"os"
)

// Runtime holds the external collaborators the builtins consume: an output
// sink for print and diagnostic writes, an input source for input, and the
// optional AI service backends.  The zero value is not usable; call
// NewRuntime or populate the stream fields explicitly.
type Runtime struct {
	Stdout io.Writer
	Stdin  io.Reader

	// Embedder and Model back the embed and ai builtins.  When nil those
	// builtins return placeholder data.
	Embedder Embedder
	Model    ModelClient

	scanner *bufio.Scanner
}

// NewRuntime returns a Runtime bound to the process standard streams.
func NewRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Stdin:  os.Stdin,
	}
}

// ReadLine reads one line from the runtime's input source, without the
// trailing newline.  It fails with an io error when the source is
// unreadable or exhausted.
func (rt *Runtime) ReadLine() (string, error) {
	if rt.scanner == nil {
		rt.scanner = bufio.NewScanner(rt.Stdin)
	}
	if !rt.scanner.Scan() {
		if err := rt.scanner.Err(); err != nil {
			return "", Errorf(ErrnoIO, "cannot read input: %v", err)
		}
		return "", Errorf(ErrnoIO, "input stream exhausted")
	}
	return rt.scanner.Text(), nil
}
