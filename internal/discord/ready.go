package discord

import (
	"context"
	"sync"
)

// Readiness is a one-shot signal that the gateway session is established.
// It settles exactly once, either with the logged-in bot user or with the
// error that prevented login; every waiter observes the same outcome.
type Readiness struct {
	once sync.Once
	done chan struct{}
	user User
	err  error
}

// NewReadiness returns an unsettled Readiness.
func NewReadiness() *Readiness {
	return &Readiness{done: make(chan struct{})}
}

// Resolve settles the signal successfully. It reports whether this call
// settled it; later calls are ignored.
func (r *Readiness) Resolve(u User) bool {
	settled := false
	r.once.Do(func() {
		r.user = u
		close(r.done)
		settled = true
	})
	return settled
}

// Fail settles the signal with err. It reports whether this call settled it.
func (r *Readiness) Fail(err error) bool {
	settled := false
	r.once.Do(func() {
		r.err = err
		close(r.done)
		settled = true
	})
	return settled
}

// Wait blocks until the signal settles or ctx is done.
func (r *Readiness) Wait(ctx context.Context) (User, error) {
	select {
	case <-r.done:
		return r.user, r.err
	case <-ctx.Done():
		return User{}, ctx.Err()
	}
}

// settled reports whether Resolve or Fail has been called.
func (r *Readiness) settled() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Done is closed once the signal settles.
func (r *Readiness) Done() <-chan struct{} { return r.done }
