// Package styler formats the source tree, optionally regenerates code and
// stages the result.
package styler

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Rana718/groundwork/internal/config"
)

type Options struct {
	// Test only reports files that need formatting.
	Test bool
	// Generate runs the configured code generators after formatting.
	Generate bool
	// Add stages the formatted tree with git.
	Add bool
}

type Styler struct {
	cfg    config.Styler
	exec   Executor
	out    io.Writer
	logger *zap.Logger
}

func New(cfg config.Styler, exec Executor, out io.Writer, logger *zap.Logger) *Styler {
	if exec == nil {
		exec = ShellExecutor{}
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Styler{cfg: cfg, exec: exec, out: out, logger: logger}
}

// Run returns the formatter's exit code. Generator and git failures are
// printed but never change it.
func (s *Styler) Run(ctx context.Context, opts Options) int {
	info := color.New(color.FgCyan)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	info.Fprintln(s.out, "Starting code cleanup...")

	command := s.cfg.Format
	if opts.Test {
		command = s.cfg.Check
	}
	output, code, err := s.exec.Run(ctx, command)
	lines := s.stream(output)
	if err != nil {
		s.logger.Debug("formatter exited with error", zap.String("command", command), zap.Int("exit_code", code), zap.Error(err))
	}
	if opts.Test && !s.cfg.CheckExitCodeOnly && code == 0 && lines > 0 {
		// gofmt -l lists unformatted files but still exits 0.
		code = 1
	}

	if opts.Generate {
		for _, gen := range s.cfg.Generate {
			info.Fprintf(s.out, "Running %s\n", gen)
			output, genCode, err := s.exec.Run(ctx, gen)
			s.stream(output)
			if err != nil || genCode != 0 {
				warn.Fprintf(s.out, "%s failed with exit code %d\n", gen, genCode)
			}
		}
	}

	if code == 0 && !opts.Test && opts.Add {
		if _, gitCode, err := s.exec.Run(ctx, s.cfg.GitAdd); err != nil || gitCode != 0 {
			warn.Fprintln(s.out, "Git add failed! Check manually.")
		} else {
			ok.Fprintln(s.out, "Changes staged with git.")
		}
	}

	ok.Fprintln(s.out, "Code cleanup completed!")
	return code
}

// stream prints output line by line and returns the number of non-empty
// lines.
func (s *Styler) stream(output []byte) int {
	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		count++
		s.out.Write([]byte(line + "\n"))
	}
	return count
}
