package broker

import (
	"sync"
	"sync/atomic"
)

type subscription[T any] struct {
	id        string
	owner     *Broker[T]
	handler   Handler[T]
	name      string
	active    atomic.Bool
	closeOnce sync.Once
}

func (s *subscription[T]) ID() string {
	return s.id
}

func (s *subscription[T]) Unsubscribe() {
	s.closeOnce.Do(func() {
		// flip the flag before removal so an in-flight Publish holding an
		// older snapshot skips this subscription
		s.active.Store(false)
		if s.owner != nil {
			s.owner.remove(s.id)
		}
	})
}

func (s *subscription[T]) deliver(msg T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return s.handler.Handle(msg)
}
