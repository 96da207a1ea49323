// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/seeker/internal/effects"
	"github.com/Decentr-net/seeker/internal/feed"
	"github.com/Decentr-net/seeker/internal/service"
	"github.com/Decentr-net/seeker/internal/summary"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// nolint:gochecknoglobals
var (
	intentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seeker",
		Name:      "intents_total",
		Help:      "Dispatched intents by name and result.",
	}, []string{"intent", "result"})

	summariesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seeker",
		Name:      "summaries_total",
		Help:      "Resolved summary requests by source.",
	}, []string{"source"})
)

type srv struct {
	mu      sync.Mutex
	s       feed.Snapshot
	env     feed.Env
	g       summary.Generator
	fx      effects.Sink
	pending chan struct{}
}

// Option ...
type Option func(s *srv)

// WithEnv replaces clock and id generator.
func WithEnv(env feed.Env) Option {
	return func(s *srv) {
		s.env = env
	}
}

// WithEffects sets celebrations sink.
func WithEffects(fx effects.Sink) Option {
	return func(s *srv) {
		s.fx = fx
	}
}

// New creates new instance of store.
func New(initial feed.Snapshot, g summary.Generator, opts ...Option) service.Store {
	s := &srv{
		s:   initial,
		env: feed.DefaultEnv(),
		g:   g,
		fx:  effects.Discard{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *srv) Snapshot() feed.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.s
}

func (s *srv) Dispatch(ctx context.Context, i feed.Intent) (feed.Snapshot, error) {
	s.mu.Lock()
	next, out, err := feed.Reduce(s.s, i, s.env)
	s.s = next
	s.mu.Unlock()

	intentsTotal.WithLabelValues(i.Op(), resultLabel(err)).Inc()

	if err != nil {
		log.WithField("intent", i.Op()).WithError(err).Debug("intent rejected")
		return next, err
	}

	for _, c := range out.Celebrations {
		s.fx.Celebrate(ctx, c)
	}

	if out.RequestSummary {
		s.RequestTrendingSummary(ctx)
		next = s.Snapshot()
	}

	return next, nil
}

func (s *srv) RequestTrendingSummary(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return s.pending
	}

	if s.s.Summary != "" {
		done := make(chan struct{})
		close(done)
		return done
	}

	s.s = feed.BeginSummary(s.s)
	done := make(chan struct{})
	s.pending = done

	ch := summary.Async(context.WithoutCancel(ctx), s.g, summary.Prompt)

	go func() {
		r := <-ch

		source := "live"
		if r.Fallback() {
			source = "fallback"
			log.WithError(r.Err()).Warn("failed to generate summary, fallback is used")
		}
		summariesTotal.WithLabelValues(source).Inc()

		s.mu.Lock()
		s.s = feed.ResolveSummary(s.s, r.Text())
		s.pending = nil
		s.mu.Unlock()

		close(done)
	}()

	return done
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, feed.ErrValidation):
		return "validation"
	case errors.Is(err, feed.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
