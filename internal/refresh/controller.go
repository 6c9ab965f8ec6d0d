// Package refresh decides when timestamps are rescanned and annotations
// repainted. A Controller owns the active surface and at most one pending
// timer; every pass replaces the sink's annotation set wholesale.
package refresh

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Zuo-Peng/elapsed/internal/annotate"
	"github.com/Zuo-Peng/elapsed/internal/scan"
	"github.com/Zuo-Peng/elapsed/internal/surface"
)

// DefaultInterval keeps displays live between edits.
const DefaultInterval = 30 * time.Second

// State of the controller's single timer.
type State int

const (
	Idle State = iota
	PendingImmediate
	PendingPeriodic
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingImmediate:
		return "pending-immediate"
	case PendingPeriodic:
		return "pending-periodic"
	default:
		return "unknown"
	}
}

// Sink paints annotations. Replace discards whatever was shown for the
// surface before and shows decorations instead. It runs with the controller
// locked and must not call back into it or wait on a goroutine that might.
type Sink interface {
	Replace(surfaceID string, decorations []annotate.Decoration)
}

// Options configure a Controller. Zero fields take defaults.
type Options struct {
	Interval  time.Duration // periodic refresh, DefaultInterval if zero
	Debounce  time.Duration // delay of the refresh queued by a change
	Future    annotate.FuturePolicy
	Style     *annotate.Style
	Scheduler Scheduler
	Now       func() time.Time
	Logger    *log.Logger
}

// Controller drives scan+annotate passes for the active surface.
type Controller struct {
	mu        sync.Mutex
	sink      Sink
	interval  time.Duration
	debounce  time.Duration
	annotOpts annotate.Options
	style     annotate.Style
	sched     Scheduler
	now       func() time.Time
	logger    *log.Logger

	active surface.Surface
	timer  Timer
	gen    uint64
	state  State
	passes int
	closed bool
}

// New builds a controller that paints into sink.
func New(sink Sink, opts Options) *Controller {
	c := &Controller{
		sink:      sink,
		interval:  opts.Interval,
		debounce:  opts.Debounce,
		annotOpts: annotate.Options{Future: opts.Future},
		style:     annotate.MutedItalic,
		sched:     opts.Scheduler,
		now:       opts.Now,
		logger:    opts.Logger,
	}
	if c.interval <= 0 {
		c.interval = DefaultInterval
	}
	if c.debounce < 0 {
		c.debounce = 0
	}
	if opts.Style != nil {
		c.style = *opts.Style
	}
	if c.sched == nil {
		c.sched = TimeScheduler{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// SetActive records s as the active surface. A nil s means nothing is active;
// a pending timer is left alone and will fire as a no-op.
func (c *Controller) SetActive(s surface.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.active = s
	if s == nil {
		c.logger.Debug("no active surface")
		return
	}
	c.logger.Debug("active surface changed", "surface", s.ID())
	c.scheduleLocked(PendingImmediate, c.debounce)
}

// ContentChanged reports an edit. Edits to surfaces other than the active one
// are ignored. s replaces the active surface so the next pass sees the edit.
func (c *Controller) ContentChanged(s surface.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || s == nil || c.active == nil || c.active.ID() != s.ID() {
		return
	}

	c.active = s
	c.scheduleLocked(PendingImmediate, c.debounce)
}

// Refresh runs a pass now, cancelling any pending timer, and arms the
// periodic refresh. It is what a timer fire does.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.cancelLocked()
	c.passLocked()
}

// Active returns the active surface or nil.
func (c *Controller) Active() surface.Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// State reports the controller's timer state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Passes counts completed refresh passes.
func (c *Controller) Passes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passes
}

// Close cancels the pending timer and forgets the active surface. The
// controller ignores all calls afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.cancelLocked()
	c.active = nil
	c.closed = true
}

func (c *Controller) scheduleLocked(next State, delay time.Duration) {
	c.cancelLocked()
	c.gen++
	gen := c.gen
	c.state = next
	c.timer = c.sched.AfterFunc(delay, func() { c.fire(gen) })
}

func (c *Controller) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	// a fire already in flight carries the old generation and is dropped
	c.gen++
	c.state = Idle
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	c.timer = nil
	c.state = Idle
	c.passLocked()
}

// passLocked rescans the active surface and replaces the sink's annotations.
func (c *Controller) passLocked() {
	s := c.active
	if s == nil {
		return
	}

	start := time.Now()
	text := s.Text()
	matches := scan.Scan(text)
	annotations := annotate.Annotate(matches, s, c.now(), c.annotOpts)
	c.sink.Replace(s.ID(), annotate.Decorations(annotations, c.style))
	c.passes++

	c.logger.Debug("refreshed",
		"surface", s.ID(),
		"matches", len(matches),
		"bytes", len(text),
		"took", time.Since(start))

	c.scheduleLocked(PendingPeriodic, c.interval)
}
