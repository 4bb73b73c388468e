// Package pool provides a generic arena of reusable entity slots.
// Released slots go onto a free list and are handed out again before the
// arena grows.
package pool

// Handle identifies a slot in an Arena. The zero Handle is never valid.
type Handle struct {
	index int
	gen   uint32
}

// Index returns the slot index (stable while the handle is live).
func (h Handle) Index() int {
	return h.index
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot[T any] struct {
	value T
	gen   uint32 // odd while in use
}

// Arena stores values of T in slots addressed by Handle.
// It is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []int
	live  int
	reset func(*T)
}

// New creates an empty arena. reset, when non-nil, is called on a value
// as it is released.
func New[T any](reset func(*T)) *Arena[T] {
	return &Arena[T]{reset: reset}
}

// Prewarm grows the arena so that n slots are available without
// further allocation.
func (a *Arena[T]) Prewarm(n int) {
	for len(a.free) < n {
		a.slots = append(a.slots, slot[T]{})
		a.free = append(a.free, len(a.slots)-1)
	}
}

// Acquire returns a slot, reusing the most recently released one first.
func (a *Arena[T]) Acquire() (Handle, *T) {
	var i int
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		i = len(a.slots) - 1
	}

	s := &a.slots[i]
	s.gen++
	a.live++
	return Handle{index: i, gen: s.gen}, &s.value
}

// Get returns the value for h. Stale or zero handles return false.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !a.valid(h) {
		return nil, false
	}
	return &a.slots[h.index].value, true
}

// Release returns h's slot to the free list. It reports false for stale
// or zero handles.
func (a *Arena[T]) Release(h Handle) bool {
	if !a.valid(h) {
		return false
	}
	s := &a.slots[h.index]
	if a.reset != nil {
		a.reset(&s.value)
	} else {
		var zero T
		s.value = zero
	}
	s.gen++
	a.live--
	a.free = append(a.free, h.index)
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.live
}

// Cap returns the number of slots, live or free.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Each calls fn for every live value in slot order.
func (a *Arena[T]) Each(fn func(Handle, *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.gen%2 == 1 {
			fn(Handle{index: i, gen: s.gen}, &s.value)
		}
	}
}

// Reset releases every live value.
func (a *Arena[T]) Reset() {
	for i := range a.slots {
		s := &a.slots[i]
		if s.gen%2 == 1 {
			a.Release(Handle{index: i, gen: s.gen})
		}
	}
}

func (a *Arena[T]) valid(h Handle) bool {
	if h.gen == 0 || h.index < 0 || h.index >= len(a.slots) {
		return false
	}
	s := a.slots[h.index]
	return s.gen == h.gen && s.gen%2 == 1
}
