package main

import (
	"context"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/seeker/internal/consumer/script"
	"github.com/Decentr-net/seeker/internal/seed"
	"github.com/Decentr-net/seeker/internal/service/impl"
	"github.com/Decentr-net/seeker/internal/summary"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Script        string        `long:"script" env:"SCRIPT" default:"script.yaml" description:"path to yaml script of intents"`
	GeminiAPIKey  string        `long:"gemini.api-key" env:"GEMINI_API_KEY" description:"Gemini API key, fallback summary is used when empty"`
	GeminiTimeout time.Duration `long:"gemini.timeout" env:"GEMINI_TIMEOUT" default:"30s" description:"timeout of a Gemini API request"`
	WaitSummary   bool          `long:"wait-summary" env:"WAIT_SUMMARY" description:"wait for summary requests before next step"`
	LogLevel      string        `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

func main() {
	_ = godotenv.Load()

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "replay"
	parser.LongDescription = "Replays a script of intents over the seed feed"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("replay started")

	f, err := os.Open(opts.Script)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open script")
	}
	defer f.Close() // nolint:errcheck

	steps, err := script.Parse(f)
	if err != nil {
		logrus.WithError(err).Fatal("failed to parse script")
	}

	ctx := context.Background()

	var g summary.Generator = summary.Unavailable{}
	if opts.GeminiAPIKey != "" {
		if g, err = summary.NewGemini(ctx, opts.GeminiAPIKey, opts.GeminiTimeout); err != nil {
			logrus.WithError(err).Fatal("failed to create gemini generator")
		}
	}

	store := impl.New(seed.Snapshot(time.Now()), g)

	c := script.New(steps, store, opts.WaitSummary)
	if err := c.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to replay script")
	}

	var rejected int
	for _, r := range c.Results() {
		if r.Err != nil {
			rejected++
		}
	}

	snap := store.Snapshot()

	logrus.WithFields(logrus.Fields{
		"steps":       len(steps),
		"rejected":    rejected,
		"posts":       len(snap.Posts),
		"screen":      snap.Nav.Screen(),
		"summary":     snap.Summary,
		"communities": len(snap.Communities),
	}).Info("replay finished")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug(spew.Sdump(snap))
	}
}
