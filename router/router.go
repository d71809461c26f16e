package router

import (
	"fmt"
	"sync"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/history"
	"github.com/xy-planning-network/waypoint/logger"
	"go.uber.org/atomic"
)

const defaultInitialPath = "/"

// A Router runs transitions between Routes as the location of its [history.Stack] changes.
type Router struct {
	l        logger.Logger
	mode     history.Mode
	onChange ChangeFunc
	stack    history.Stack

	initialized bool
	routes      []compiledRoute
	unlisten    func()

	current  *ActiveRoute
	previous *ActiveRoute
	started  atomic.Bool

	// running is set for the duration of a transition;
	// locations arriving meanwhile wait in pending.
	running bool
	pending []history.Location
}

// defaultLogger is shared by every [*Router] constructed without [WithLogger].
var defaultLogger = sync.OnceValue(func() logger.Logger { return logger.NewLogger() })

// New constructs a [*Router] that does nothing until [*Router.Init] and [*Router.Start] are called.
func New(opts ...Option) *Router {
	r := &Router{mode: history.ModeHash}
	for _, opt := range opts {
		opt(r)
	}

	if r.l == nil {
		r.l = defaultLogger()
	}

	return r
}

// Init compiles routes and subscribes the [*Router] to its [history.Stack].
// Options passed to Init apply on top of those passed to [New].
//
// Without [WithStack], Init builds an in-memory stack starting at "/".
//
// Init returns an error wrapping [waypoint.ErrBadConfig] if routes is nil,
// a Route cannot be compiled, or Init was already called.
// routes may be empty.
func (r *Router) Init(routes []Route, opts ...Option) error {
	if r.initialized {
		return fmt.Errorf("%w: router already initialized", waypoint.ErrBadConfig)
	}

	for _, opt := range opts {
		opt(r)
	}

	table, err := compile(routes)
	if err != nil {
		return err
	}

	if r.stack == nil {
		r.stack, err = history.New(r.mode, defaultInitialPath)
		if err != nil {
			return fmt.Errorf("%w: %s", waypoint.ErrBadConfig, err)
		}
	}

	r.routes = table
	r.unlisten = r.stack.Listen(r.handleLocationChange)
	r.initialized = true

	r.l.Debug(fmt.Sprintf("initialized router with %d routes using %T", len(table), r.stack), nil)

	return nil
}

// Start runs the Route matching the current location of the [history.Stack], if any:
// its EnterFunc is called once and no ExitFunc is.
// Every location change after Start runs a transition.
//
// Start returns an error wrapping [waypoint.ErrBadConfig] if [*Router.Init] has not been called
// and [waypoint.ErrAlreadyStarted] if Start already was.
// Otherwise, Start returns what the callbacks it ran returned.
func (r *Router) Start() error {
	if !r.initialized {
		return fmt.Errorf("%w: Init must be called before Start", waypoint.ErrBadConfig)
	}

	if !r.started.CompareAndSwap(false, true) {
		return waypoint.ErrAlreadyStarted
	}

	return r.handleLocationChange(r.stack.Location())
}

// Close unsubscribes the [*Router] from its [history.Stack].
// Afterwards, location changes run no transitions.
func (r *Router) Close() {
	if r.unlisten == nil {
		return
	}

	r.unlisten()
	r.unlisten = nil
}

// Current returns the [ActiveRoute] matching the latest location or nil.
// The returned ActiveRoute must not be modified.
func (r *Router) Current() *ActiveRoute { return r.current }

// Previous returns the [ActiveRoute] the latest transition replaced or nil.
// The returned ActiveRoute must not be modified.
func (r *Router) Previous() *ActiveRoute { return r.previous }

// Stack returns the [history.Stack] the [*Router] listens to.
func (r *Router) Stack() history.Stack { return r.stack }

// Started asserts whether [*Router.Start] has been called.
func (r *Router) Started() bool { return r.started.Load() }
