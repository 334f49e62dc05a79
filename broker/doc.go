// Package broker implements the per-type message broker behind the
// zeromessenger registry. A Broker[T] owns the subscribers for exactly one
// message type and fans each published message out to them, synchronously and
// in subscription order.
//
// Interface hierarchy:
//   - Publisher: publish-only view of a broker
//   - Subscriber: subscribe-only view of a broker
//   - Subscription: revocable handle returned by Subscribe
//   - Handler: the callback a subscription delivers to
//
// Handler failures are isolated. When a handler returns an error or panics,
// the remaining subscribers still receive the message in order, and Publish
// returns every failure joined together, each one a *HandlerError that
// matches ErrHandlerFailure.
//
// Example usage:
//
//	b := broker.New[OrderPlaced]()
//	sub, err := b.Subscribe(broker.Action[OrderPlaced](func(msg OrderPlaced) {
//	    fmt.Println("order", msg.ID)
//	}))
//	if err != nil {
//	    return err
//	}
//	defer sub.Unsubscribe()
//
//	if err := b.Publish(OrderPlaced{ID: "42"}); err != nil {
//	    slog.Error("delivery failed", slogx.Error(err))
//	}
//
// Subscribing, unsubscribing and publishing are safe for concurrent use.
// Publish works on an immutable snapshot of the subscriber list, so a
// subscription added while a publish is in flight may miss that message, and
// one removed while a publish is in flight receives nothing further.
package broker
