package cmenu

import (
	"time"

	"github.com/atomicstack/cmenu/internal/cssunit"
	"github.com/atomicstack/cmenu/internal/logging/events"
)

// OpenC appends an open step.
func (c *Controller) OpenC() *Controller { return c.push(Open()) }

// CloseC appends a close step.
func (c *Controller) CloseC() *Controller { return c.push(Close()) }

// HoldC appends a hold step. Negative durations are clamped to zero.
func (c *Controller) HoldC(d time.Duration) *Controller { return c.push(Hold(d)) }

// Append adds pre-built steps, e.g. from ParseChain.
func (c *Controller) Append(actions ...Action) *Controller {
	for _, a := range actions {
		if a.Kind == ActionHold {
			a = Hold(a.Hold)
		}
		c.push(a)
	}
	return c
}

func (c *Controller) push(a Action) *Controller {
	c.mu.Lock()
	c.chain = append(c.chain, a)
	n := len(c.chain)
	c.mu.Unlock()
	events.Chain.Append(c.id, a.String(), n)
	return c
}

// Clear empties the chain and supersedes any in-flight run.
func (c *Controller) Clear() *Controller {
	c.mu.Lock()
	c.chain = nil
	c.token++
	token := c.token
	c.mu.Unlock()
	events.Chain.Clear(c.id, token)
	return c
}

// Chain returns a copy of the queued steps.
func (c *Controller) Chain() []Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.chain) == 0 {
		return nil
	}
	out := make([]Action, len(c.chain))
	copy(out, c.chain)
	return out
}

// Execute claims a new generation and runs the chain at (x, y).
//
// Steps run in append order. Before each step the run compares its generation
// with the controller's; once they differ the run stops and its remaining
// steps are dropped. A hold that has started always waits out its duration
// before that check. Steps up to the first hold run on the caller's goroutine;
// the rest continue on a background goroutine. The returned channel is closed
// when the run ends, whether it completed or was superseded.
//
// The chain is read live by index and is not cleared afterwards, so the same
// chain can be executed again.
func (c *Controller) Execute(x, y cssunit.Input) <-chan struct{} {
	c.mu.Lock()
	c.token++
	r := &run{
		c:     c,
		token: c.token,
		x:     x,
		y:     y,
		done:  make(chan struct{}),
	}
	steps := len(c.chain)
	c.mu.Unlock()
	events.Chain.Start(c.id, r.token, steps)
	r.resume(0)
	return r.done
}

// Wait executes the chain and blocks until the run ends.
func (c *Controller) Wait(x, y cssunit.Input) {
	<-c.Execute(x, y)
}

type run struct {
	c     *Controller
	token uint64
	x, y  cssunit.Input
	done  chan struct{}
}

// resume executes steps from index i until the chain ends, the run is
// superseded, or a hold suspends it.
func (r *run) resume(i int) {
	c := r.c
	for ; ; i++ {
		c.mu.Lock()
		if c.token != r.token {
			current := c.token
			c.mu.Unlock()
			events.Chain.Superseded(c.id, r.token, current, i)
			close(r.done)
			return
		}
		if i >= len(c.chain) {
			c.mu.Unlock()
			events.Chain.Done(c.id, r.token)
			close(r.done)
			return
		}
		action := c.chain[i]
		events.Chain.Step(c.id, r.token, i, action.String())
		switch action.Kind {
		case ActionOpen:
			c.open(r.x, r.y, false)
		case ActionClose:
			c.close(false)
		case ActionHold:
			wait := c.clock.After(action.Hold)
			c.mu.Unlock()
			go func(next int) {
				<-wait
				r.resume(next)
			}(i + 1)
			return
		}
		c.mu.Unlock()
	}
}
