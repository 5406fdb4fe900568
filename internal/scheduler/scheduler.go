package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Runner produces a report for a symbol.
type Runner interface {
	Run(ctx context.Context, symbol string) (string, error)
}

// Scheduler runs the analysis on a cron schedule and writes each report to Out.
type Scheduler struct {
	Cron   *cron.Cron
	Runner Runner
	Symbol string
	Out    io.Writer
	Log    zerolog.Logger
	Ctx    context.Context

	mu sync.Mutex // serializes writes to Out
}

// NewScheduler creates a new Scheduler. Overlapping ticks are skipped.
func NewScheduler(ctx context.Context, runner Runner, symbol string, out io.Writer, log zerolog.Logger) *Scheduler {
	cl := cronLogger{log: log}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		Runner: runner,
		Symbol: symbol,
		Out:    out,
		Log:    log,
		Ctx:    ctx,
	}
}

// Register adds the analysis task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	s.Log.Info().Str("cron", spec).Str("symbol", s.Symbol).Msg("analysis task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info().Msg("scheduler stopped")
}

// RunNow executes the analysis task immediately (for --run-on-start).
func (s *Scheduler) RunNow() {
	s.analysisTask()
}

func (s *Scheduler) analysisTask() {
	s.Log.Info().Str("symbol", s.Symbol).Msg("running analysis task")
	report, err := s.Runner.Run(s.Ctx, s.Symbol)
	if err != nil {
		s.Log.Error().Err(err).Str("symbol", s.Symbol).Msg("analysis task failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.Out, report); err != nil {
		s.Log.Error().Err(err).Msg("write report")
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
