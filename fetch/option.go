package fetch

import (
	"time"

	"github.com/wenzapen/scrapekit/proxy"
	"go.uber.org/zap"
)

type Option func(opts *options)

type options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	Proxy     proxy.Func
	logger    *zap.Logger
}

var defaultOptions = options{
	Timeout:   10 * time.Second,
	UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	logger:    zap.NewNop(),
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.Timeout = timeout
	}
}

func WithUserAgent(ua string) Option {
	return func(opts *options) {
		opts.UserAgent = ua
	}
}

func WithHeaders(headers map[string]string) Option {
	return func(opts *options) {
		opts.Headers = headers
	}
}

func WithProxy(p proxy.Func) Option {
	return func(opts *options) {
		opts.Proxy = p
	}
}
