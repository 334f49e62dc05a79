package zeromessenger

import (
	"log/slog"

	"github.com/fogfish/opts"
)

// WithName sets the logger name the registry and its brokers log under.
// Defaults to "zeromessenger".
var WithName = opts.ForName[Registry, string]("name")

// WithLogger sets the logger the registry and its brokers log to.
// Defaults to slog.Default().
var WithLogger = opts.ForName[Registry, *slog.Logger]("logger")
