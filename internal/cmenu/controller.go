package cmenu

import (
	"sync"
	"time"

	"github.com/atomicstack/cmenu/internal/cssunit"
	"github.com/atomicstack/cmenu/internal/logging/events"
	"github.com/atomicstack/cmenu/internal/reactive"
)

// Position is the menu anchor in CSS lengths.
type Position struct {
	X cssunit.Length
	Y cssunit.Length
}

// Clock schedules hold steps.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock used for hold steps.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// Controller owns one menu's visibility, position, chain and generation token.
//
// Every token change and every boundary check happens under mu, so a step
// admitted by a check is applied before any other call can supersede it.
// Cell subscribers run while mu is held and must not call back into the
// same controller synchronously.
type Controller struct {
	id    string
	clock Clock

	mu    sync.Mutex
	chain []Action
	token uint64

	visible  *reactive.Cell[bool]
	position *reactive.Cell[Position]
}

// NewController builds an unregistered controller. Most callers want
// Registry.New, which also registers it.
func NewController(id string, opts ...Option) *Controller {
	c := &Controller{
		id:       id,
		clock:    realClock{},
		visible:  reactive.NewCell(false),
		position: reactive.NewCell(Position{X: cssunit.Zero, Y: cssunit.Zero}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) ID() string { return c.id }

func (c *Controller) Visible() bool { return c.visible.Get() }

func (c *Controller) Position() Position { return c.position.Get() }

// VisibleCell exposes the visibility cell read-only.
func (c *Controller) VisibleCell() reactive.View[bool] { return c.visible }

// PositionCell exposes the position cell read-only.
func (c *Controller) PositionCell() reactive.View[Position] { return c.position }

// Token returns the current generation.
func (c *Controller) Token() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Open shows the menu at (x, y). Missing coordinates resolve to "0px".
// With overwrite set, any in-flight chain run is superseded.
func (c *Controller) Open(x, y cssunit.Input, overwrite bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if overwrite {
		c.token++
	}
	c.open(x, y, overwrite)
}

// Close hides the menu and leaves its position untouched. With overwrite set,
// any in-flight chain run is superseded.
func (c *Controller) Close(overwrite bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if overwrite {
		c.token++
	}
	c.close(overwrite)
}

func (c *Controller) open(x, y cssunit.Input, overwrite bool) {
	pos := Position{X: cssunit.Resolve(x), Y: cssunit.Resolve(y)}
	c.position.Set(pos)
	c.visible.Set(true)
	events.Menu.Open(c.id, pos.X.String(), pos.Y.String(), overwrite, c.token)
}

func (c *Controller) close(overwrite bool) {
	c.visible.Set(false)
	events.Menu.Close(c.id, overwrite, c.token)
}
