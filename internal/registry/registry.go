package registry

import (
	"sync"

	"github.com/alphadose/haxmap"
)

// Key is the set of key types a Registry can be indexed by.
type Key interface {
	~string | ~uintptr
}

type Registry[K Key, V any] interface {
	// GetOrAdd returns the value stored for key, computing and storing it with
	// valueFn when absent. Concurrent callers for the same key all observe the
	// one value that won; the bool reports whether it was already present.
	GetOrAdd(key K, valueFn func() V) (V, bool)
	// Drain removes every entry and hands each removed value to fn.
	Drain(fn func(K, V))
	Len() int
}

// registry reads through haxmap without locking. Writes are serialized by mu:
// haxmap's GetOrCompute can store two values for one key while the map grows.
type registry[K Key, V any] struct {
	mu     sync.Mutex
	values *haxmap.Map[K, V]
}

func New[K Key, V any]() Registry[K, V] {
	return &registry[K, V]{
		values: haxmap.New[K, V](),
	}
}

func (r *registry[K, V]) GetOrAdd(key K, valueFn func() V) (V, bool) {
	if v, ok := r.values.Get(key); ok {
		return v, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.values.Get(key); ok {
		return v, true
	}
	v := valueFn()
	r.values.Set(key, v)
	return v, false
}

func (r *registry[K, V]) Drain(fn func(K, V)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var keys []K
	r.values.ForEach(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	for _, k := range keys {
		v, ok := r.values.Get(k)
		if !ok {
			continue
		}
		r.values.Del(k)
		if fn != nil {
			fn(k, v)
		}
	}
}

func (r *registry[K, V]) Len() int {
	return int(r.values.Len())
}
