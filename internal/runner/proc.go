package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"syscall"
)

// ProcRunner executes one external command to completion.
//
// A non-zero exit status is reported through exit with err == nil; err is
// reserved for failures to run the command at all (missing binary,
// cancelled context).
type ProcRunner interface {
	Run(ctx context.Context, argv []string, stdin io.Reader) (stdout, stderr []byte, exit int, err error)
}

// execRunner is the production ProcRunner backed by os/exec.
type execRunner struct{}

// NewExecRunner returns a ProcRunner that spawns real processes. Each
// child runs in its own process group so cancellation kills the whole
// tree, not just the direct child.
func NewExecRunner() ProcRunner { return execRunner{} }

func (execRunner) Run(ctx context.Context, argv []string, stdin io.Reader) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	err := cmd.Run()
	if ctx.Err() != nil {
		return stdout.Bytes(), stderr.Bytes(), 0, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return nil, nil, 0, err
	}
	return stdout.Bytes(), stderr.Bytes(), 0, nil
}
