package platform

import (
	"io"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// CommandFactory creates external command invocations. The docker CLI and
// the calicoctl compose service are only ever driven through this
// interface, which keeps every fork/exec behind a fake in unit tests.
//
//counterfeiter:generate . CommandFactory
type CommandFactory interface {
	CreateCommand(name string, args ...string) Command
}

// Command represents a single external command invocation.
//
//counterfeiter:generate . Command
type Command interface {
	SetStdin(r io.Reader)
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	SetDir(dir string)
	Run() error
	CombinedOutput() ([]byte, error)
}
