// Package project bootstraps a working copy: it sets the application key,
// rebuilds the schema, seeds reference data and tidies the source tree.
package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Rana718/groundwork/internal/enums"
	"github.com/Rana718/groundwork/internal/seeder"
	"github.com/Rana718/groundwork/internal/styler"
	"github.com/Rana718/groundwork/internal/utils"
)

var ErrAborted = errors.New("operation aborted")

type Refresher interface {
	Refresh(ctx context.Context) error
}

type SeedRunner interface {
	RunAll(ctx context.Context, units ...seeder.Unit) seeder.Summary
}

type Styler interface {
	Run(ctx context.Context, opts styler.Options) int
}

// StepResult records how one init step went.
type StepResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

type Initializer struct {
	Env     string
	EnvFile string
	KeyEnv  string
	Force   bool

	Migrator Refresher
	Seeder   SeedRunner
	Units    []seeder.Unit
	Styler   Styler

	Input  *utils.InputUtils
	Out    io.Writer
	Logger *zap.Logger
	Random io.Reader
}

// Run executes every step in order. A failed step is reported and the
// remaining steps still run; only a declined production prompt stops it.
func (i *Initializer) Run(ctx context.Context) ([]StepResult, error) {
	out := i.Out
	if out == nil {
		out = io.Discard
	}
	logger := i.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	env, known := enums.CurrentEnvironment(i.Env)
	if known && env.IsProduction() && !i.Force {
		color.New(color.FgYellow).Fprintln(out, "⚠️  Application is in production!")
		if i.Input == nil || !i.Input.AskConfirmation("Do you really wish to run this command?", false) {
			color.New(color.FgRed).Fprintln(out, "Operation aborted.")
			return nil, ErrAborted
		}
	}

	var results []StepResult
	step := func(name string, fn func() error) {
		color.New(color.FgCyan, color.Bold).Fprintf(out, "%s...\n", name)
		start := time.Now()
		err := fn()
		result := StepResult{Name: name, Err: err, Duration: time.Since(start)}
		results = append(results, result)

		if err != nil {
			color.New(color.FgRed).Fprintf(out, "❌ %s failed: %v\n", name, err)
			logger.Error("init step failed", zap.String("step", name), zap.Error(err))
			return
		}
		color.New(color.FgGreen).Fprintf(out, "✅ %s done in %s\n", name, result.Duration.Round(time.Millisecond))
	}

	step("Generating Application Key", func() error {
		key, err := GenerateKey(i.Random)
		if err != nil {
			return err
		}
		return WriteEnvValue(i.EnvFile, i.KeyEnv, key)
	})

	step("Refreshing Database", func() error {
		return i.Migrator.Refresh(ctx)
	})

	step("Seeding Database", func() error {
		summary := i.Seeder.RunAll(ctx, i.Units...)
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d seeders failed", summary.Failed, summary.Total())
		}
		return nil
	})

	if known && env == enums.EnvLocal {
		step("Running Code Styler", func() error {
			if code := i.Styler.Run(ctx, styler.Options{Generate: true}); code != 0 {
				return fmt.Errorf("styler exited with code %d", code)
			}
			return nil
		})
	}

	return results, nil
}
