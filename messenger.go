package zeromessenger

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/casualjim/zeromessenger/broker"
	"github.com/casualjim/zeromessenger/internal/registry"
	"github.com/casualjim/zeromessenger/pkg/reflectx"
	"github.com/casualjim/zeromessenger/pkg/slogx"
	"github.com/fogfish/opts"
)

// Registry hands out exactly one broker per message type. Brokers are created
// on first use and live until the registry is closed.
//
// Go methods cannot take type parameters, so the typed operations are the
// package level functions GetPublisher, GetSubscriber, Subscribe,
// SubscribeHandler and Publish, each taking the registry as first argument.
//
// A Registry is safe for concurrent use. Concurrent first access to the same
// message type always resolves to the same broker.
type Registry struct {
	name    string
	logger  *slog.Logger
	brokers registry.Registry[reflectx.TypeID, messageBroker]
}

// messageBroker is the type erased view of a *broker.Broker[T] the registry
// stores. The typed broker is recovered with a type assertion at the call
// boundary.
type messageBroker interface {
	MessageType() reflect.Type
	Len() int
	Close()
}

// New creates an empty registry.
//
// Example usage:
//
//	r := zeromessenger.New(
//	    zeromessenger.WithName("orders"),
//	    zeromessenger.WithLogger(logger),
//	)
//	defer r.Close()
func New(options ...opts.Option[Registry]) *Registry {
	r := &Registry{
		name:    "zeromessenger",
		brokers: registry.New[reflectx.TypeID, messageBroker](),
	}
	if err := opts.Apply(r, options); err != nil {
		panic(err)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With(slogx.LoggerName(r.name))
	return r
}

// Len returns the number of brokers created so far.
func (r *Registry) Len() int {
	return r.brokers.Len()
}

// Close disposes every subscription of every broker and forgets the brokers.
// Publishers and subscribers obtained before Close keep working on their own
// but are no longer reachable through the registry; the next access for a
// type creates a fresh broker. A Subscribe racing with Close may land on a
// broker that Close is dropping, in which case it receives nothing published
// through the registry afterwards.
func (r *Registry) Close() {
	r.brokers.Drain(func(_ reflectx.TypeID, b messageBroker) {
		b.Close()
	})
	r.logger.Debug("registry closed")
}

// GetPublisher returns the broker for T, creating it when needed, viewed
// through its publish capability.
func GetPublisher[T any](r *Registry) broker.Publisher[T] {
	return brokerFor[T](r)
}

// GetSubscriber returns the same broker as GetPublisher for T, viewed through
// its subscribe capability.
func GetSubscriber[T any](r *Registry) broker.Subscriber[T] {
	return brokerFor[T](r)
}

// Subscribe registers fn for messages of type T.
func Subscribe[T any](r *Registry, fn func(T)) (broker.Subscription, error) {
	return brokerFor[T](r).Subscribe(broker.Action[T](fn))
}

// SubscribeHandler registers handler for messages of type T.
func SubscribeHandler[T any](r *Registry, handler broker.Handler[T]) (broker.Subscription, error) {
	return brokerFor[T](r).Subscribe(handler)
}

// Publish delivers msg to every subscriber of T. Publishing a type nobody
// subscribed to is not an error.
func Publish[T any](r *Registry, msg T) error {
	return brokerFor[T](r).Publish(msg)
}

func brokerFor[T any](r *Registry) *broker.Broker[T] {
	mb, loaded := r.brokers.GetOrAdd(reflectx.TypeIDFor[T](), func() messageBroker {
		return broker.New[T](broker.WithLogger(r.logger))
	})

	b, ok := mb.(*broker.Broker[T])
	if !ok {
		panic(fmt.Errorf("%w: broker registered for %s serves %s", broker.ErrInvalidArgument, reflect.TypeFor[T](), mb.MessageType()))
	}
	if !loaded {
		r.logger.Debug("created broker", slogx.Type(b.MessageType()))
	}
	return b
}
