package broker

// Publisher is the publish-only capability of a broker.
type Publisher[T any] interface {
	Publish(T) error
}

// Subscriber is the subscribe-only capability of a broker.
type Subscriber[T any] interface {
	Subscribe(Handler[T]) (Subscription, error)
}

// Subscription is the handle of a single registered handler.
// Unsubscribe is idempotent.
type Subscription interface {
	ID() string
	Unsubscribe()
}

// Handler receives messages of type T.
type Handler[T any] interface {
	Handle(T) error
}

// HandlerFunc adapts a fallible function to a Handler.
type HandlerFunc[T any] func(T) error

func (fn HandlerFunc[T]) Handle(msg T) error {
	return fn(msg)
}

// Action adapts a function that cannot fail to a Handler.
type Action[T any] func(T)

func (fn Action[T]) Handle(msg T) error {
	fn(msg)
	return nil
}
