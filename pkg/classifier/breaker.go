package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker stops calling a failing endpoint for a while. A cold SageMaker
// endpoint can take tens of seconds to time out on every request.
type Breaker struct {
	next Classifier
	cb   *gobreaker.CircuitBreaker
}

func NewBreaker(next Classifier, maxFailures uint32, openFor time.Duration) *Breaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    next.Name(),
		Timeout: openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A caller hanging up says nothing about the endpoint.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("classifier breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Breaker{next: next, cb: cb}
}

func (b *Breaker) Name() string {
	return b.next.Name()
}

func (b *Breaker) Predict(ctx context.Context, text string) (*Prediction, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Predict(ctx, text)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}
	return res.(*Prediction), nil
}
