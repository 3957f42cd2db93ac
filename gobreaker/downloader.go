// Package gobreaker provides a circuit breaker for media downloads.
package gobreaker

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/xhsimport"
	"github.com/sony/gobreaker"
)

// Ensure Downloader implements xhsimport.Downloader at compile time.
var _ xhsimport.Downloader = (*Downloader)(nil)

// Default breaker settings.
const (
	DefaultMaxFailures = 3
	DefaultCooldown    = 30 * time.Second
)

// Downloader stops calling the wrapped Downloader after consecutive
// failures, so a blocked CDN fails the remaining images of a note at once
// instead of waiting out the timeout for each.
type Downloader struct {
	next    xhsimport.Downloader
	breaker *gobreaker.CircuitBreaker
}

// Option configures a Downloader.
type Option func(*gobreaker.Settings)

// WithMaxFailures sets the consecutive failures that open the breaker.
func WithMaxFailures(n uint32) Option {
	return func(s *gobreaker.Settings) {
		s.ReadyToTrip = func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= n
		}
	}
}

// WithCooldown sets how long the breaker stays open before letting a
// trial download through.
func WithCooldown(d time.Duration) Option {
	return func(s *gobreaker.Settings) {
		s.Timeout = d
	}
}

// NewDownloader wraps next with a circuit breaker.
func NewDownloader(next xhsimport.Downloader, opts ...Option) *Downloader {
	settings := gobreaker.Settings{
		Name:        "media",
		MaxRequests: 1,
		Timeout:     DefaultCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= DefaultMaxFailures
		},
		// Cancellation is the caller's doing, not the host's.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &Downloader{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Download delegates to the wrapped Downloader unless the breaker is open.
func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	result, err := d.breaker.Execute(func() (interface{}, error) {
		return d.next.Download(ctx, url)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, xhsimport.Errorf(xhsimport.EINTERNAL, "skipped after repeated media failures")
	}
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}
