package broker

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/casualjim/zeromessenger/pkg/slogx"
	json "github.com/goccy/go-json"
)

// LoggingHandler returns a handler that logs every message it receives as
// JSON at info level. A nil logger means slog.Default().
func LoggingHandler[T any](logger *slog.Logger) Handler[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingHandler[T]{
		logger:  logger,
		msgType: reflect.TypeFor[T](),
	}
}

type loggingHandler[T any] struct {
	logger  *slog.Logger
	msgType reflect.Type
}

func (h *loggingHandler[T]) Handle(msg T) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", h.msgType, err)
	}
	h.logger.Info("message", slogx.Type(h.msgType), slog.String("message", string(b)))
	return nil
}

// Compose combines handlers into one that calls each of them in order.
// Like Publish, a failing handler does not stop the ones after it; the
// returned error joins all failures. Nil handlers are skipped.
func Compose[T any](handlers ...Handler[T]) Handler[T] {
	return CompositeHandler[T](handlers)
}

// CompositeHandler is a list of handlers that behaves as a single handler.
type CompositeHandler[T any] []Handler[T]

func (c CompositeHandler[T]) Handle(msg T) error {
	var errs []error
	for _, h := range c {
		if h == nil {
			continue
		}
		if err := h.Handle(msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
