// Package barrier provides a reusable rendezvous point for a fixed number of
// goroutines, in the manner of pthread_barrier_t.
package barrier

import (
	"errors"
	"sync"
)

// ErrBroken is returned by Wait once the barrier has been broken.
var ErrBroken = errors.New("barrier broken")

// Barrier blocks each caller of Wait until all parties have arrived, then
// releases them together. It is reusable: the next round begins as soon as
// the previous one releases.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	round   uint64
	broken  bool
	serial  []func()
}

// New returns a barrier for parties participants. parties below 1 is treated
// as 1.
func New(parties int) *Barrier {
	if parties < 1 {
		parties = 1
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Parties reports how many callers each round waits for.
func (b *Barrier) Parties() int { return b.parties }

// Wait blocks until every party has called Wait for the current round.
//
// A non-nil serial func is queued for the round and run exactly once by the
// last arriving goroutine, after all parties have arrived and before any is
// released. Everything serial writes is therefore visible to every party when
// Wait returns, and no party observes the round's state before it ran.
func (b *Barrier) Wait(serial func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.broken {
		return ErrBroken
	}
	if serial != nil {
		b.serial = append(b.serial, serial)
	}
	b.arrived++
	if b.arrived == b.parties {
		for _, fn := range b.serial {
			fn()
		}
		b.serial = b.serial[:0]
		b.arrived = 0
		b.round++
		b.cond.Broadcast()
		return nil
	}

	round := b.round
	for round == b.round && !b.broken {
		b.cond.Wait()
	}
	if round == b.round {
		return ErrBroken
	}
	return nil
}

// Break releases every waiting party with ErrBroken and makes every later
// Wait fail immediately. It is safe to call more than once.
func (b *Barrier) Break() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broken = true
	b.serial = nil
	b.cond.Broadcast()
}

// Broken reports whether Break has been called.
func (b *Barrier) Broken() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.broken
}
