package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/xid"
	"go.uber.org/zap"
)

type Outcome int

const (
	Skipped Outcome = iota
	Completed
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Summary counts the outcomes of one RunAll batch.
type Summary struct {
	RunID     string
	Completed int
	Skipped   int
	Failed    int
}

func (s Summary) Total() int {
	return s.Completed + s.Skipped + s.Failed
}

// Reporter shows failures to the person running the command.
type Reporter interface {
	Error(msg string)
}

type ConsoleReporter struct {
	w io.Writer
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (c *ConsoleReporter) Error(msg string) {
	color.New(color.FgRed).Fprintln(c.w, msg)
}

type Runner struct {
	store    Store
	logger   *zap.Logger
	reporter Reporter
}

func NewRunner(store Store, logger *zap.Logger, reporter Reporter) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = NewConsoleReporter(io.Discard)
	}
	return &Runner{store: store, logger: logger, reporter: reporter}
}

// SafeRun executes u at most once and absorbs every failure: a skipped
// unit never reaches Run, a failed Run is rolled back, and the caller only
// gets the outcome back.
func (r *Runner) SafeRun(ctx context.Context, u Unit) Outcome {
	name := UnitName(u)
	logger := r.logger.With(zap.String("seeder", name))

	table := u.TableName()
	if table == "" {
		return r.fail(logger, name, errors.New("table name is empty"))
	}

	ok, err := u.ShouldRun(ctx, NewGuard(r.store, logger, table))
	if err != nil {
		return r.fail(logger, name, fmt.Errorf("guard check failed: %w", err))
	}
	if !ok {
		logger.Info(fmt.Sprintf("⚠️ [Seeder Skipped] %s marked as non-idempotent.", name))
		return Skipped
	}

	tx, err := r.store.Begin(ctx)
	if err != nil {
		return r.fail(logger, name, err)
	}

	if err := runInTx(ctx, u, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return r.fail(logger, name, err)
	}

	if err := tx.Commit(); err != nil {
		return r.fail(logger, name, fmt.Errorf("failed to commit: %w", err))
	}

	logger.Info(fmt.Sprintf("✅ [Seeder Completed] %s executed successfully.", name))
	return Completed
}

// RunAll drives units in order. A failing unit does not stop the ones
// after it.
func (r *Runner) RunAll(ctx context.Context, units ...Unit) Summary {
	summary := Summary{RunID: xid.New().String()}
	batch := &Runner{
		store:    r.store,
		logger:   r.logger.With(zap.String("run_id", summary.RunID)),
		reporter: r.reporter,
	}

	for _, u := range units {
		switch batch.SafeRun(ctx, u) {
		case Completed:
			summary.Completed++
		case Skipped:
			summary.Skipped++
		case Failed:
			summary.Failed++
		}
	}

	batch.logger.Info("seeding finished",
		zap.Int("completed", summary.Completed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))
	return summary
}

func (r *Runner) fail(logger *zap.Logger, name string, err error) Outcome {
	logger.Error(fmt.Sprintf("❌ [Seeder Failed] %s: %s", name, err.Error()), zap.Error(err))
	r.reporter.Error("❌ Seeder failed: " + err.Error())
	return Failed
}

func runInTx(ctx context.Context, u Unit, tx Tx) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return u.Run(ctx, tx)
}
