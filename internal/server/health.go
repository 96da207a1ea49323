package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/seeker/internal/service"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// Pinger pings a dependency.
type Pinger interface {
	// Ping returns object with meta information and error
	Ping(ctx context.Context) (interface{}, error)
	// Name returns name of pinger
	Name() string
}

type storePinger struct {
	s service.Store
}

// StorePinger reports sizes of the store collections.
func StorePinger(s service.Store) Pinger {
	return storePinger{s: s}
}

func (p storePinger) Ping(context.Context) (interface{}, error) {
	snap := p.s.Snapshot()

	return map[string]interface{}{
		"posts":       len(snap.Posts),
		"chats":       len(snap.Chats),
		"communities": len(snap.Communities),
		"generating":  snap.Generating,
	}, nil
}

func (p storePinger) Name() string {
	return "store"
}

// HealthHandler returns version and pingers' meta. It responds 500 if any pinger failed.
func HealthHandler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var gr errgroup.Group

		var (
			mu     sync.Mutex
			failed bool
		)

		resp := struct {
			Version string                 `json:"version"`
			Commit  string                 `json:"commit"`
			Meta    map[string]interface{} `json:"meta"`
			Errors  map[string]string      `json:"errors"`
		}{
			Version: version,
			Commit:  commit,
			Meta:    map[string]interface{}{},
			Errors:  map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				m, err := v.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()

				resp.Meta[v.Name()] = m
				if err != nil {
					log.WithError(err).WithField("pinger", v.Name()).Error("health check failed")
					resp.Errors[v.Name()] = err.Error()
					failed = true
				}

				return nil
			})
		}

		_ = gr.Wait()

		status := http.StatusOK
		if failed {
			status = http.StatusInternalServerError
		}

		writeOK(w, status, resp)
	}
}
