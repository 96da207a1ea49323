// Package script is a consumer which replays intents described in a yaml script.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Decentr-net/seeker/internal/consumer"
	"github.com/Decentr-net/seeker/internal/feed"
	"github.com/Decentr-net/seeker/internal/service"
)

var log = logrus.WithField("package", "script")

// ErrUnknownOp returned when a step has unsupported op.
var ErrUnknownOp = errors.New("unknown op")

// Step is one line of a script.
type Step struct {
	Op      string `yaml:"op"`
	ID      string `yaml:"id"`
	Text    string `yaml:"text"`
	Name    string `yaml:"name"`
	Bio     string `yaml:"bio"`
	View    string `yaml:"view"`
	Overlay string `yaml:"overlay"`
}

// Result is the outcome of one step.
type Result struct {
	Step Step
	Err  error
}

// Script replays steps into the store.
type Script struct {
	steps   []Step
	s       service.Store
	results []Result
	summary bool
}

// Parse reads steps from yaml.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	if err := yaml.NewDecoder(r).Decode(&steps); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	return steps, nil
}

// New creates new instance of script consumer.
// When waitSummary is set the consumer waits for summary requests to resolve before the next step.
func New(steps []Step, s service.Store, waitSummary bool) *Script {
	return &Script{
		steps:   steps,
		s:       s,
		summary: waitSummary,
	}
}

var _ consumer.Consumer = (*Script)(nil)

// Run dispatches steps one by one. Rejected intents are logged and do not stop the replay.
func (c *Script) Run(ctx context.Context) error {
	c.results = make([]Result, 0, len(c.steps))

	for k, step := range c.steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l := log.WithField("step", k).WithField("op", step.Op)

		if step.Op == "request_summary" {
			c.awaitSummary(ctx, c.s.RequestTrendingSummary(ctx))
			c.results = append(c.results, Result{Step: step})
			continue
		}

		i, err := ToIntent(step)
		if err != nil {
			return fmt.Errorf("step %d: %w", k, err)
		}

		snap, err := c.s.Dispatch(ctx, i)
		if err != nil {
			l.WithError(err).Warn("intent rejected")
		} else if snap.Generating {
			c.awaitSummary(ctx, c.s.RequestTrendingSummary(ctx))
		}

		c.results = append(c.results, Result{Step: step, Err: err})
	}

	return nil
}

// Results returns outcomes of executed steps.
func (c *Script) Results() []Result {
	return c.results
}

func (c *Script) awaitSummary(ctx context.Context, done <-chan struct{}) {
	if !c.summary {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// ToIntent converts step into intent.
// nolint: gocyclo
func ToIntent(s Step) (feed.Intent, error) {
	switch s.Op {
	case "create_post":
		return feed.CreatePost{Text: s.Text}, nil
	case "toggle_like":
		return feed.ToggleLike{PostID: s.ID}, nil
	case "add_comment":
		return feed.AddComment{PostID: s.ID, Text: s.Text}, nil
	case "send_message":
		return feed.SendMessage{ChatID: s.ID, Text: s.Text}, nil
	case "update_profile":
		return feed.UpdateProfile{Name: s.Name, Bio: s.Bio}, nil
	case "toggle_membership":
		return feed.ToggleCommunityMembership{CommunityID: s.ID}, nil
	case "toggle_wallet":
		return feed.ToggleWallet{}, nil
	case "navigate":
		v, err := feed.ParseView(s.View)
		if err != nil {
			return nil, err
		}
		return feed.Navigate{View: v}, nil
	case "open_thread":
		return feed.OpenThread{PostID: s.ID}, nil
	case "close_thread":
		return feed.CloseThread{}, nil
	case "open_chat":
		return feed.OpenChat{ChatID: s.ID}, nil
	case "close_chat":
		return feed.CloseChat{}, nil
	case "open_overlay", "close_overlay":
		o, err := feed.ParseOverlay(s.Overlay)
		if err != nil {
			return nil, err
		}
		if s.Op == "open_overlay" {
			return feed.OpenOverlay{Overlay: o}, nil
		}
		return feed.CloseOverlay{Overlay: o}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
}
