/*
Package zeromessenger provides an in-process, type keyed publish/subscribe
messenger.

A Registry lazily creates one broker.Broker per message type and routes
publish and subscribe calls to the broker that matches the message's Go type.
The type itself is the topic: there are no topic names to agree on and no way
for a subscriber of one type to observe messages of another.

# Basic Usage

	type NumMessage struct{ Value int }

	r := zeromessenger.New()
	defer r.Close()

	sub, err := zeromessenger.Subscribe(r, func(msg NumMessage) {
	    fmt.Println("got", msg.Value)
	})
	if err != nil {
	    return err
	}
	defer sub.Unsubscribe()

	if err := zeromessenger.Publish(r, NumMessage{Value: 123}); err != nil {
	    return err
	}

Publisher and subscriber views can be held on to instead of resolving the
broker on every call:

	pub := zeromessenger.GetPublisher[NumMessage](r)
	_ = pub.Publish(NumMessage{Value: 1})

GetPublisher and GetSubscriber for the same type return the same broker.

# Delivery

Delivery is synchronous. Publish returns after every active subscriber of the
type has been called, in the order they subscribed. A handler that returns an
error or panics does not prevent delivery to the subscribers after it; Publish
reports all failures as one joined error whose parts are *broker.HandlerError
values matching broker.ErrHandlerFailure.

Disposing a subscription is idempotent. A disposed subscription never
receives another message, even when it is disposed halfway through a publish.

# Thread Safety

Registries and brokers are safe for concurrent use. Creating the broker for a
type is atomic, so concurrent first access never yields two brokers for one
type. There is no ordering across message types.
*/
package zeromessenger
