package validation

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Registry holds checkers in registration order. Appends are serialised;
// readers see an immutable snapshot and never block.
//
// There is no removal or reordering. Close tears checkers down in reverse
// registration order.
type Registry struct {
	mu       sync.Mutex
	checkers atomic.Pointer[[]Checker]

	// observers are called with the new length after every Append.
	observers []func(n int)
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.checkers.Store(&[]Checker{})
	return r
}

// Default returns the process-wide registry, created on first use. Programs
// that load a single validation layer register their checkers here.
var Default = sync.OnceValue(NewRegistry)

// Append adds c after every previously registered checker. The same checker
// may be appended twice and will then run twice.
func (r *Registry) Append(c Checker) error {
	if c == nil {
		return ErrNilChecker
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.checkers.Load()
	next := make([]Checker, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, c)
	r.checkers.Store(&next)
	for _, fn := range r.observers {
		fn(len(next))
	}
	return nil
}

// observe calls fn with the current length, then again after every Append.
func (r *Registry) observe(fn func(n int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
	fn(len(*r.checkers.Load()))
}

// snapshot returns the current checker slice. Callers must not modify it.
func (r *Registry) snapshot() []Checker {
	return *r.checkers.Load()
}

// Checkers returns a copy of the registered checkers in FIFO order.
func (r *Registry) Checkers() []Checker {
	cur := r.snapshot()
	out := make([]Checker, len(cur))
	copy(out, cur)
	return out
}

func (r *Registry) Len() int {
	return len(r.snapshot())
}

// Names returns checker names in registration order.
func (r *Registry) Names() []string {
	cur := r.snapshot()
	names := make([]string, 0, len(cur))
	for _, c := range cur {
		names = append(names, c.Name())
	}
	return names
}

// Close calls Close on every checker implementing io.Closer, last registered
// first. All closers run; their errors are joined.
func (r *Registry) Close() error {
	cur := r.snapshot()
	var errs []error
	for i := len(cur) - 1; i >= 0; i-- {
		closer, ok := cur[i].(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", cur[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
