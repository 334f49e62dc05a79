package broker

import (
	"log/slog"

	"github.com/casualjim/zeromessenger/pkg/slogx"
	"github.com/fogfish/opts"
)

// Options configures a Broker.
type Options struct {
	logger *slog.Logger
}

// WithLogger sets the logger a broker reports subscription changes and
// handler failures to. Defaults to slog.Default().
var WithLogger = opts.ForName[Options, *slog.Logger]("logger")

func defaultOptions() Options {
	return Options{
		logger: slog.Default().With(slogx.LoggerName("zeromessenger.broker")),
	}
}
