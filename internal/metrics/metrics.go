package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	fetches          int
	errors           int
	lastFetchLatency time.Duration
}

// RunStats describes the most recent pipeline run.
type RunStats struct {
	Runs      int
	Failures  int
	Players   int
	Teams     int
	Qualified int
	Duration  time.Duration
}

// Recorder keeps in-memory counters for source fetches and pipeline runs and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu      sync.Mutex
	sources map[string]*sourceStats
	runs    RunStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	r := &Recorder{
		sources: make(map[string]*sourceStats),
		otel:    otel,
	}
	if otel != nil {
		otel.observe = r.LastRun
	}
	return r
}

// RecordSourceFetch counts a fetch from a record source and stores its latency.
func (r *Recorder) RecordSourceFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceFetch(source, duration, err)
	}
}

// RecordPipelineRun tracks a pipeline run and the size of its output.
func (r *Recorder) RecordPipelineRun(duration time.Duration, players, teams, qualified int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.Runs++
	r.runs.Duration = duration
	if err != nil {
		r.runs.Failures++
	} else {
		r.runs.Players = players
		r.runs.Teams = teams
		r.runs.Qualified = qualified
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPipelineRun(duration, players, err)
	}
}

// Snapshot is a copy of the stats for one source.
type Snapshot struct {
	Fetches          int
	Errors           int
	LastFetchLatency time.Duration
}

// Snapshot returns a copy of the current stats for the source.
func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.sources[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// LastRun returns the pipeline run counters.
func (r *Recorder) LastRun() RunStats {
	if r == nil {
		return RunStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
