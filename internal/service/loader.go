package service

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/fx"

	"exusiai.dev/statsboard/internal/model"
	"exusiai.dev/statsboard/internal/pkg/observability"
	"exusiai.dev/statsboard/internal/repo"
)

// ErrSuperseded is returned by Load when its result was dropped because a newer
// load had been issued before it completed.
var ErrSuperseded = errors.New("superseded by a newer load")

var tracer = otel.Tracer("loader")

// StatsFetcher is the upstream the loader reads from.
type StatsFetcher interface {
	Fetch(ctx context.Context) (*model.Stats, error)
}

// State is an immutable snapshot of what the dashboard displays.
type State struct {
	// Stats is the last successfully fetched payload, nil until the first success.
	Stats *model.Stats
	// Error is the failure message of the most recent attempt, empty when it has
	// not failed (or has not completed yet).
	Error string
	// LoadedAt is when Stats was applied.
	LoadedAt time.Time
	// AttemptedAt is when the most recent attempt was issued.
	AttemptedAt time.Time
	// Pending is set while the most recent attempt has not completed.
	Pending bool
}

// Loader owns the dashboard state and is the only writer of it.
//
// Every attempt takes a sequence token when it is issued. A completion is
// applied only if its token is still the latest, so the last issued request
// wins even when an older one resolves after it.
type Loader struct {
	fetcher StatsFetcher

	mu      sync.RWMutex
	state   State
	seq     uint64
	stopped bool

	mount sync.Once

	// base bounds background refreshes to the loader's lifetime.
	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewLoader(statsRepo *repo.Stats, lc fx.Lifecycle) *Loader {
	l := newLoader(statsRepo)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Stop()
			return nil
		},
	})
	return l
}

func newLoader(fetcher StatsFetcher) *Loader {
	base, cancel := context.WithCancel(context.Background())
	return &Loader{
		fetcher: fetcher,
		base:    base,
		cancel:  cancel,
	}
}

// Load fetches the stats once and applies the outcome. Failures are recorded in
// the state as a display string; the returned error is informational only.
func (l *Loader) Load(ctx context.Context) error {
	return l.run(ctx, l.begin())
}

// Mount performs the initial load. Only the first call fetches; later calls
// return immediately, and concurrent first callers wait for that fetch.
func (l *Loader) Mount(ctx context.Context) {
	l.mount.Do(func() {
		_ = l.Load(ctx)
	})
}

// Refresh clears the previous error and starts a load in the background. The
// error is cleared before Refresh returns, so a state read right after never
// shows a failure from an earlier attempt.
// After Stop it does nothing.
func (l *Loader) Refresh() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	token := l.beginLocked()
	// Add under mu so Stop never waits concurrently with it
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		_ = l.run(l.base, token)
	}()
}

// Snapshot returns the current state.
func (l *Loader) Snapshot() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Wait blocks until every background refresh has completed.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Stop cancels in-flight background refreshes and waits for them.
func (l *Loader) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
}

func (l *Loader) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.beginLocked()
}

func (l *Loader) beginLocked() uint64 {
	l.seq++
	l.state.Error = ""
	l.state.AttemptedAt = time.Now()
	l.state.Pending = true
	return l.seq
}

func (l *Loader) run(ctx context.Context, token uint64) error {
	ctx, span := tracer.Start(ctx, "loader.fetch")
	defer span.End()
	span.SetAttributes(attribute.Int64("loader.token", int64(token)))

	start := time.Now()
	stats, err := l.fetcher.Fetch(ctx)
	observability.LoaderFetchDuration.Observe(time.Since(start).Seconds())

	outcome := classify(err)
	observability.LoaderFetchTotal.WithLabelValues(outcome).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	return l.complete(token, stats, err, outcome)
}

func (l *Loader) complete(token uint64, stats *model.Stats, err error, outcome string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if token != l.seq {
		observability.LoaderDiscardedTotal.Inc()
		log.Debug().
			Str("evt.name", "loader.discard").
			Uint64("token", token).
			Uint64("latest", l.seq).
			Str("outcome", outcome).
			Msg("dropping result of a superseded load")
		if err != nil {
			return err
		}
		return ErrSuperseded
	}

	l.state.Pending = false
	if err != nil {
		l.state.Error = err.Error()
		log.Warn().
			Err(err).
			Str("evt.name", "loader.fail").
			Uint64("token", token).
			Str("outcome", outcome).
			Msg("failed to load stats")
		return err
	}

	now := time.Now()
	l.state.Stats = stats
	l.state.Error = ""
	l.state.LoadedAt = now
	observability.LoaderLastSuccess.Set(float64(now.UnixNano()) / float64(time.Second))

	log.Debug().
		Str("evt.name", "loader.apply").
		Uint64("token", token).
		Msg("stats loaded")
	return nil
}

func classify(err error) string {
	if err == nil {
		return observability.OutcomeOK
	}

	var statusErr *repo.StatusError
	if errors.As(err, &statusErr) {
		return observability.OutcomeHTTPError
	}

	var decodeErr *repo.DecodeError
	if errors.As(err, &decodeErr) {
		return observability.OutcomeParseError
	}

	return observability.OutcomeTransportError
}
