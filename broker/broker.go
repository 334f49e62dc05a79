package broker

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/casualjim/zeromessenger/pkg/reflectx"
	"github.com/casualjim/zeromessenger/pkg/slogx"
	"github.com/fogfish/opts"
	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Broker holds the subscribers for message type T and delivers every
// published message to each of them, in the order they subscribed.
//
// The zero value is not usable, create brokers with New.
type Broker[T any] struct {
	mu       sync.Mutex
	subs     *orderedmap.OrderedMap[string, *subscription[T]]
	snapshot atomic.Pointer[[]*subscription[T]]

	msgType reflect.Type
	logger  *slog.Logger
}

// New creates an empty broker for message type T.
func New[T any](options ...opts.Option[Options]) *Broker[T] {
	o := defaultOptions()
	if err := opts.Apply(&o, options); err != nil {
		panic(err)
	}
	if o.logger == nil {
		o.logger = defaultOptions().logger
	}

	msgType := reflect.TypeFor[T]()
	b := &Broker[T]{
		subs:    orderedmap.New[string, *subscription[T]](),
		msgType: msgType,
		logger:  o.logger.With(slogx.Type(msgType)),
	}
	b.snapshot.Store(&[]*subscription[T]{})
	return b
}

// MessageType returns the type of message this broker accepts.
func (b *Broker[T]) MessageType() reflect.Type {
	return b.msgType
}

// Len returns the number of active subscriptions.
func (b *Broker[T]) Len() int {
	return len(*b.snapshot.Load())
}

// Subscribe registers handler at the end of the subscriber sequence.
func (b *Broker[T]) Subscribe(handler Handler[T]) (Subscription, error) {
	if reflectx.IsNil(handler) {
		return nil, fmt.Errorf("%w: handler is required", ErrInvalidArgument)
	}

	id := uuid.Must(uuid.NewV7()).String()
	sub := &subscription[T]{
		id:      id,
		owner:   b,
		handler: handler,
		name:    reflectx.FuncName(handler),
	}
	sub.active.Store(true)

	b.mu.Lock()
	b.subs.Set(id, sub)
	b.publishSnapshot()
	b.mu.Unlock()

	b.logger.Debug("subscribed", slogx.SubscriptionID(id), slog.String("handler", sub.name))
	return sub, nil
}

// Unsubscribe disposes sub. Nil handles and handles that belong to another
// broker are ignored, and disposing twice does nothing.
func (b *Broker[T]) Unsubscribe(sub Subscription) {
	s, ok := sub.(*subscription[T])
	if !ok || s == nil || s.owner != b {
		return
	}
	s.Unsubscribe()
}

// Publish delivers msg to every active subscriber in subscription order.
//
// A failing handler does not stop delivery to the ones after it. The returned
// error joins one *HandlerError per failure and is nil when every handler
// succeeded or there are no subscribers.
func (b *Broker[T]) Publish(msg T) error {
	var errs []error
	for _, sub := range *b.snapshot.Load() {
		if !sub.active.Load() {
			continue
		}

		if err := sub.deliver(msg); err != nil {
			herr := &HandlerError{
				SubscriptionID: sub.id,
				Handler:        sub.name,
				MessageType:    b.msgType,
				Err:            err,
			}
			b.logger.Error("handler failed", slogx.SubscriptionID(sub.id), slog.String("handler", sub.name), slogx.Error(err))
			errs = append(errs, herr)
		}
	}
	return errors.Join(errs...)
}

// Close disposes every subscription present when it is called. The broker
// stays usable afterwards, and a Subscribe that runs concurrently with Close
// may survive it.
//
// When the broker belongs to a zeromessenger.Registry that is being closed, a
// subscription made through a reference obtained before Registry.Close
// attaches to a broker the registry no longer routes to, and never receives
// anything published through the registry.
func (b *Broker[T]) Close() {
	for _, sub := range *b.snapshot.Load() {
		sub.Unsubscribe()
	}
}

func (b *Broker[T]) remove(id string) {
	b.mu.Lock()
	_, present := b.subs.Delete(id)
	if present {
		b.publishSnapshot()
	}
	b.mu.Unlock()

	if present {
		b.logger.Debug("unsubscribed", slogx.SubscriptionID(id))
	}
}

// publishSnapshot must be called with mu held.
func (b *Broker[T]) publishSnapshot() {
	snap := make([]*subscription[T], 0, b.subs.Len())
	for pair := b.subs.Oldest(); pair != nil; pair = pair.Next() {
		snap = append(snap, pair.Value)
	}
	b.snapshot.Store(&snap)
}
