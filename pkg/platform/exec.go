package platform

import (
	"io"
	"os/exec"
)

// ExecFactory is the production CommandFactory backed by os/exec.
type ExecFactory struct{}

// NewFactory creates the default command factory.
func NewFactory() CommandFactory {
	return &ExecFactory{}
}

func (f *ExecFactory) CreateCommand(name string, args ...string) Command {
	return &ExecCommand{cmd: exec.Command(name, args...)}
}

// ExecCommand wraps exec.Cmd to implement the Command interface.
type ExecCommand struct {
	cmd *exec.Cmd
}

func (e *ExecCommand) SetStdin(r io.Reader) {
	e.cmd.Stdin = r
}

func (e *ExecCommand) SetStdout(w io.Writer) {
	e.cmd.Stdout = w
}

func (e *ExecCommand) SetStderr(w io.Writer) {
	e.cmd.Stderr = w
}

func (e *ExecCommand) SetDir(dir string) {
	e.cmd.Dir = dir
}

func (e *ExecCommand) Run() error {
	return e.cmd.Run()
}

// CombinedOutput runs the command and returns its combined stdout and stderr
func (e *ExecCommand) CombinedOutput() ([]byte, error) {
	return e.cmd.CombinedOutput()
}
