// Package consumer contains interface of intents consumer.
package consumer

import (
	"context"
)

//go:generate mockgen -destination=./mock/consumer.go -package=consumer -source=consumer.go

// Consumer consumes intents from a source and dispatches them into the store.
type Consumer interface {
	Run(ctx context.Context) error
}
