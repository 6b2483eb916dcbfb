package host

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"lifegrid/src/universe"
)

//ErrClosed is returned by commands sent after the controller loop has stopped
var ErrClosed = errors.New("controller is closed")

//ErrNotStarted is returned by commands sent before Start
var ErrNotStarted = errors.New("controller is not started")

//Frame is a copy of the universe handed to viewers, viewers may keep it
type Frame struct {
	Width  uint32
	Height uint32
	Cells  []universe.Cell
	Status universe.Status
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh(f Frame)
}

//Alerter shows a one-way message to the user
type Alerter interface {
	Alert(msg string)
}

//Options represents the Controller's configurable options
type Options struct {
	Interval time.Duration //0 means run as fast as possible
	MaxSteps int           //0 means unlimited
}

//Controller owns one universe and serializes every call to it through a single loop goroutine
type Controller struct {
	u         *universe.Universe
	options   Options
	views     []Viewer
	alerter   Alerter
	controlCh chan func()
	closeCh   chan struct{}
	done      chan struct{}
	finished  chan struct{}
	started   atomic.Bool
	closeOnce sync.Once
	endOnce   sync.Once
}

//New creates the Controller, the loop is not started until Start
//commands sent before Start fail with ErrNotStarted
func New(u *universe.Universe, o Options) *Controller {
	return &Controller{
		u:         u,
		options:   o,
		controlCh: make(chan func()),
		closeCh:   make(chan struct{}),
		done:      make(chan struct{}),
		finished:  make(chan struct{}),
	}
}

//RegisterViewer registers the viewer, must be called before Start
func (c *Controller) RegisterViewer(v Viewer) {
	c.views = append(c.views, v)
}

//SetAlerter sets the receiver of Greet messages, must be called before Start
func (c *Controller) SetAlerter(a Alerter) {
	c.alerter = a
}

//Start runs the main loop in a goroutine and returns immediately
//the loop stops on Close or when ctx is done, a second Start does nothing
func (c *Controller) Start(ctx context.Context) {
	if !c.started.CompareAndSwap(false, true) {
		return
	}
	go c.mainLoop(ctx)
}

//Close stops the main loop and waits for it, it returns at once if the loop was never started
func (c *Controller) Close() {
	c.closeOnce.Do(func() { close(c.closeCh) })
	if !c.started.Load() {
		return
	}
	<-c.done
}

//Done is closed when the main loop has stopped
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

//Finished is closed the first time a run ends by itself:
//MaxSteps reached, no live cells left or a generation equal to the previous one
func (c *Controller) Finished() <-chan struct{} {
	return c.finished
}

//mainLoop waits for commands and timer ticks and executes them one at a time
func (c *Controller) mainLoop(ctx context.Context) {
	defer close(c.done)
	var tickC <-chan time.Time
	if c.options.Interval > 0 {
		ticker := time.NewTicker(c.options.Interval)
		defer ticker.Stop()
		tickC = ticker.C
	}
	c.refreshView()
	for {
		//without an interval a running universe is ticked whenever no command is pending
		if tickC == nil && c.u.Running() {
			select {
			case <-ctx.Done():
				return
			case <-c.closeCh:
				return
			case cmd := <-c.controlCh:
				cmd()
			default:
				c.tick()
				c.refreshView()
			}
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-c.closeCh:
			return
		case cmd := <-c.controlCh:
			cmd()
		case <-tickC:
			if c.u.Running() {
				c.tick()
				c.refreshView()
			}
		}
	}
}

//exec runs cmd on the loop goroutine and waits for it
func (c *Controller) exec(cmd func()) error {
	if !c.started.Load() {
		return ErrNotStarted
	}
	ran := make(chan struct{})
	select {
	case c.controlCh <- func() {
		cmd()
		close(ran)
	}:
	case <-c.done:
		return ErrClosed
	}
	<-ran
	return nil
}

//tick advances the running universe and stops it at the boundary conditions
//a universe that already reached MaxSteps is stopped without advancing
func (c *Controller) tick() {
	if c.maxStepsReached() {
		c.finish()
		return
	}
	changed := c.u.Tick()
	if !changed || c.maxStepsReached() || c.u.LiveCells() == 0 {
		c.finish()
	}
}

func (c *Controller) maxStepsReached() bool {
	return c.options.MaxSteps > 0 && c.u.Status().Generation >= c.options.MaxSteps
}

//finish stops the universe and signals Finished
func (c *Controller) finish() {
	c.u.Stop()
	c.endOnce.Do(func() { close(c.finished) })
}

//refreshView calls Refresh for all registered views
func (c *Controller) refreshView() {
	if len(c.views) == 0 {
		return
	}
	f := c.frame()
	for _, v := range c.views {
		v.Refresh(f)
	}
}

func (c *Controller) frame() Frame {
	return Frame{
		Width:  c.u.Width(),
		Height: c.u.Height(),
		Cells:  c.u.Snapshot(),
		Status: c.u.Status(),
	}
}

//ToggleRun starts or pauses the simulation
func (c *Controller) ToggleRun() error {
	return c.exec(func() {
		c.u.ToggleStartStop()
		c.refreshView()
	})
}

//Stop pauses the simulation
func (c *Controller) Stop() error {
	return c.exec(func() {
		c.u.Stop()
		c.refreshView()
	})
}

//Step does one generation, also when the simulation is paused
//it is subject to the same boundary conditions as a running simulation
func (c *Controller) Step() error {
	return c.exec(func() {
		paused := !c.u.Running()
		if paused {
			c.u.ToggleStartStop()
		}
		c.tick()
		if paused {
			c.u.Stop()
		}
		c.refreshView()
	})
}

//Toggle flips the cell at row, column
func (c *Controller) Toggle(row uint32, column uint32) error {
	var err error
	if e := c.exec(func() {
		if err = c.u.ToggleCell(row, column); err == nil {
			c.refreshView()
		}
	}); e != nil {
		return e
	}
	return err
}

//Reset kills all cells and pauses the simulation
func (c *Controller) Reset() error {
	return c.exec(func() {
		c.u.Reset()
		c.refreshView()
	})
}

//Pattern repopulates the universe with the fixed pattern and pauses the simulation
func (c *Controller) Pattern() error {
	return c.exec(func() {
		c.u.GeneratePattern()
		c.refreshView()
	})
}

//Template settles the named template at row, column
func (c *Controller) Template(name string, row uint32, column uint32) error {
	var err error
	if e := c.exec(func() {
		if err = c.u.SettleTemplate(name, row, column); err == nil {
			c.refreshView()
		}
	}); e != nil {
		return e
	}
	return err
}

//Snapshot returns a copy of the current universe
func (c *Controller) Snapshot() (Frame, error) {
	var f Frame
	err := c.exec(func() { f = c.frame() })
	return f, err
}

//Greet sends a greeting for name to the alerter
func (c *Controller) Greet(name string) {
	if c.alerter == nil {
		return
	}
	c.alerter.Alert(fmt.Sprintf("Hello, %s!", name))
}

//Status returns the current universe status
func (c *Controller) Status() (universe.Status, error) {
	var st universe.Status
	err := c.exec(func() { st = c.u.Status() })
	return st, err
}
