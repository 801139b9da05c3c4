// Package refresher re-runs the draft efficiency pipeline on an interval and
// publishes each run to the in-memory store, snapshots and the SQLite archive.
package refresher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/logging"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/metrics"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/pipeline"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
	"github.com/preston-bernstein/nba-draft-efficiency/internal/store"
)

const (
	defaultInterval = 15 * time.Minute

	// failuresBeforeUnready is how many consecutive failed runs flip readiness off.
	failuresBeforeUnready = 3
)

// RunStore receives each successful run.
type RunStore interface {
	SetRun(store.Run)
}

// SnapshotWriter persists run tables to disk.
type SnapshotWriter interface {
	WriteRun(run store.Run) (string, error)
}

// Archive persists runs to a database.
type Archive interface {
	SaveRun(ctx context.Context, run store.Run) error
}

// Options configure a Refresher.
type Options struct {
	Interval   time.Duration
	SourceName string
	Pipeline   pipeline.Options
}

// Refresher fetches records on an interval, runs the pipeline and publishes the result.
type Refresher struct {
	source  providers.RecordSource
	runs    RunStore
	writer  SnapshotWriter
	archive Archive
	logger  *slog.Logger
	metrics *metrics.Recorder
	opts    Options
	now     func() time.Time
	newID   func() string

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	wg       sync.WaitGroup

	// runMu serializes refreshes from the loop and from RefreshNow.
	runMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	LastRunID           string    `json:"lastRunId,omitempty"`
}

// IsReady reports whether a run has succeeded and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < failuresBeforeUnready
}

// New constructs a Refresher with sane defaults. writer and archive are optional.
func New(source providers.RecordSource, runs RunStore, writer SnapshotWriter, archive Archive, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Refresher {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	return &Refresher{
		source:  source,
		runs:    runs,
		writer:  writer,
		archive: archive,
		logger:  logger,
		metrics: recorder,
		opts:    opts,
		now:     time.Now,
		newID:   uuid.NewString,
		done:    make(chan struct{}),
	}
}

// Start runs once immediately and then on every interval until the context is
// cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.opts.Interval)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		logging.Info(r.logger, "refresher started", slog.Int64(logging.FieldDurationMS, r.opts.Interval.Milliseconds()))
		_, _ = r.RefreshNow(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.ticker.C:
				_, _ = r.RefreshNow(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight run to finish or ctx to expire.
func (r *Refresher) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	finished := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RefreshNow performs one source -> pipeline -> publish cycle and returns the run.
// Snapshot and archive failures are logged but do not fail the run.
func (r *Refresher) RefreshNow(ctx context.Context) (store.Run, error) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	start := r.now()
	r.recordAttempt(start)

	run, err := r.execute(ctx, start)
	if err != nil {
		r.recordFailure(err, start)
		logging.Error(r.logger, "refresh failed", err,
			slog.String(logging.FieldSource, r.opts.SourceName),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return store.Run{}, err
	}

	r.publish(ctx, run)
	r.recordSuccess(start, run.ID)
	logging.Info(r.logger, "refresh complete",
		slog.String(logging.FieldRunID, run.ID),
		slog.String(logging.FieldSource, run.Source),
		slog.Int(logging.FieldPlayers, len(run.Result.Players)),
		slog.Int(logging.FieldTeams, len(run.Result.Teams.All)),
		slog.Int(logging.FieldQualified, len(run.Result.Qualified)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return run, nil
}

func (r *Refresher) execute(ctx context.Context, start time.Time) (store.Run, error) {
	if r.source == nil {
		return store.Run{}, errors.New("no record source configured")
	}
	records, err := r.source.FetchRecords(ctx)
	if err != nil {
		r.metrics.RecordPipelineRun(time.Since(start), 0, 0, 0, err)
		return store.Run{}, fmt.Errorf("fetch records: %w", err)
	}
	res, err := pipeline.Run(records, r.opts.Pipeline)
	r.metrics.RecordPipelineRun(time.Since(start), len(res.Players), len(res.Teams.All), len(res.Qualified), err)
	if err != nil {
		return store.Run{}, err
	}
	return store.Run{
		ID:     r.newID(),
		At:     start.UTC(),
		Source: r.opts.SourceName,
		Result: res,
	}, nil
}

func (r *Refresher) publish(ctx context.Context, run store.Run) {
	if r.runs != nil {
		r.runs.SetRun(run)
	}
	if r.writer != nil {
		id, err := r.writer.WriteRun(run)
		switch {
		case err != nil:
			logging.Error(r.logger, "snapshot write failed", err, slog.String(logging.FieldRunID, run.ID))
		case id != run.ID:
			logging.Debug(r.logger, "snapshot unchanged", slog.String(logging.FieldRunID, id))
		}
	}
	if r.archive != nil {
		if err := r.archive.SaveRun(ctx, run); err != nil {
			logging.Error(r.logger, "archive write failed", err, slog.String(logging.FieldRunID, run.ID))
		}
	}
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time, runID string) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
	r.status.LastRunID = runID
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

// Source exposes the underlying record source.
func (r *Refresher) Source() providers.RecordSource {
	return r.source
}
