package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-chi/chi"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/Decentr-net/seeker/internal/effects"
	"github.com/Decentr-net/seeker/internal/seed"
	"github.com/Decentr-net/seeker/internal/server"
	"github.com/Decentr-net/seeker/internal/service/impl"
	"github.com/Decentr-net/seeker/internal/summary"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	GeminiAPIKey  string        `long:"gemini.api-key" env:"GEMINI_API_KEY" description:"Gemini API key, fallback summary is used when empty"`
	GeminiModels  []string      `long:"gemini.model" env:"GEMINI_MODELS" env-delim:"," default:"gemini-2.5-flash" default:"gemini-2.5-flash-lite" description:"models to try in order"`
	GeminiTimeout time.Duration `long:"gemini.timeout" env:"GEMINI_TIMEOUT" default:"30s" description:"timeout of a Gemini API request"`

	EffectsBuffer int `long:"effects.buffer" env:"EFFECTS_BUFFER" default:"64" description:"celebrations buffer size"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	_ = godotenv.Load()

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Seeker"
	parser.LongDescription = "Seeker feed state service"

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

	logrus.Info("service started")

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          server.GetVersion(),
			ServerName:       "seeker",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initial := seed.Snapshot(time.Now())
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug(spew.Sdump(initial))
	}

	fx := effects.NewChannel(opts.EffectsBuffer)
	store := impl.New(initial, mustGetGenerator(ctx), impl.WithEffects(fx))

	r := chi.NewMux()
	r.Get("/health", server.HealthHandler(5*time.Second, server.StorePinger(store)))
	r.Handle("/metrics", promhttp.Handler())
	r.Group(func(r chi.Router) {
		server.SetupRouter(store, r, opts.RequestTimeout)
	})

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	gr, gctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return drainEffects(ctx, fx)
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-gctx.Done():
		}

		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown http server")
		}

		return errTerminated
	})

	logrus.WithField("addr", srv.Addr).Info("listening")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("seeker unexpectedly closed")
	}
}

func mustGetGenerator(ctx context.Context) summary.Generator {
	if opts.GeminiAPIKey == "" {
		logrus.Warn("empty gemini api key, fallback summary will be used")
		return summary.Unavailable{}
	}

	g, err := summary.NewGemini(ctx, opts.GeminiAPIKey, opts.GeminiTimeout, opts.GeminiModels...)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create gemini generator")
	}

	return g
}

func drainEffects(ctx context.Context, fx *effects.Channel) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-fx.C():
			logrus.WithField("kind", c.Kind).WithField("post", c.PostID).Info("🎉")
		}
	}
}
