package styler

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Executor runs one shell command line.
type Executor interface {
	Run(ctx context.Context, command string) (output []byte, exitCode int, err error)
}

// ShellExecutor runs commands through `sh -c` on the local host.
type ShellExecutor struct {
	Dir string
}

func (e ShellExecutor) Run(ctx context.Context, command string) ([]byte, int, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = e.Dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return out.Bytes(), 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out.Bytes(), exitErr.ExitCode(), err
	}

	exitCode := 1
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		exitCode = 127
	}
	return out.Bytes(), exitCode, err
}
