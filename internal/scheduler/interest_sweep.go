package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/middleware"
	"github.com/robfig/cron/v3"
)

// Sweeper is the part of the interest service the schedule drives.
type Sweeper interface {
	AccrueAll(ctx context.Context) (domain.SweepSummary, error)
}

// InterestSweep runs the yearly interest sweep on a cron schedule (UTC).
// Overlapping runs are skipped rather than queued.
type InterestSweep struct {
	cron    *cron.Cron
	sweeper Sweeper
	logger  *slog.Logger

	mu     sync.Mutex
	parent context.Context
}

// NewInterestSweep parses a standard 5-field cron expression, or a descriptor such as "@yearly".
func NewInterestSweep(spec string, sweeper Sweeper, logger *slog.Logger) (*InterestSweep, error) {
	if sweeper == nil {
		return nil, errors.New("interest sweep requires a sweeper")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &InterestSweep{
		sweeper: sweeper,
		logger:  logger,
		parent:  context.Background(),
	}
	cl := cronLogger{logger: logger}
	s.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid interest sweep schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start begins scheduling. Runs use ctx as their parent, so cancelling it stops an in-flight sweep.
func (s *InterestSweep) Start(ctx context.Context) {
	s.mu.Lock()
	s.parent = ctx
	s.mu.Unlock()
	s.cron.Start()
	s.logger.Info("Interest sweep scheduled", slog.Time("next_run", s.Next()))
}

// Stop halts scheduling and waits for a running sweep until ctx expires.
func (s *InterestSweep) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next reports when the sweep will next fire, or the zero time before Start.
func (s *InterestSweep) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *InterestSweep) run() {
	s.mu.Lock()
	parent := s.parent
	s.mu.Unlock()
	_, _ = RunSweep(middleware.WithLogger(parent, s.logger), s.sweeper)
}

// RunSweep executes one sweep and logs its summary. It is shared by the
// scheduler and the interest_sweep command.
func RunSweep(ctx context.Context, sweeper Sweeper) (domain.SweepSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()
	logger.Info("Interest sweep started")

	summary, err := sweeper.AccrueAll(ctx)
	if err != nil {
		logger.Error("Interest sweep aborted", slog.String("error", err.Error()), slog.Duration("elapsed", time.Since(start)))
		return summary, err
	}

	attrs := []any{
		slog.Int("processed", summary.Processed),
		slog.Int("credited", summary.Credited),
		slog.Int("already_accrued", summary.AlreadyAccrued),
		slog.Int("nothing_elapsed", summary.NothingElapsed),
		slog.Int("failed", summary.Failed),
		slog.String("total_interest", summary.TotalInterest.StringFixed(2)),
		slog.Duration("elapsed", time.Since(start)),
	}
	if summary.Failed > 0 {
		logger.Warn("Interest sweep finished with failures", append(attrs, slog.Any("failed_customer_ids", summary.FailedIDs))...)
	} else {
		logger.Info("Interest sweep finished", attrs...)
	}
	return summary, nil
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)...)
}
