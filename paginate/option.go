package paginate

import (
	"github.com/wenzapen/scrapekit/fetch"
	"go.uber.org/zap"
)

type Option func(opts *options)

type options struct {
	Fetcher  fetch.Fetcher
	WaitTime float64
	logger   *zap.Logger
}

var defaultOptions = options{
	logger: zap.NewNop(),
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithFetcher(fetcher fetch.Fetcher) Option {
	return func(opts *options) {
		opts.Fetcher = fetcher
	}
}

// WithWaitTime sets the blocking delay, in seconds, inserted between
// consecutive fetches.
func WithWaitTime(seconds float64) Option {
	return func(opts *options) {
		opts.WaitTime = seconds
	}
}
