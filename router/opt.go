package router

import (
	"github.com/xy-planning-network/waypoint/history"
	"github.com/xy-planning-network/waypoint/logger"
)

// An Option configures a [*Router] when passed to [New] or [*Router.Init].
type Option func(*Router)

// WithBrowserHistory has [*Router.Init] build a [history.ModeBrowser] stack
// instead of the default [history.ModeHash] one.
//
// WithBrowserHistory has no effect alongside [WithStack].
func WithBrowserHistory() Option {
	return func(r *Router) {
		r.mode = history.ModeBrowser
	}
}

// WithLogger sets the [logger.Logger] a [*Router] logs transitions with.
func WithLogger(l logger.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.l = l
		}
	}
}

// WithOnChange sets the [ChangeFunc] called on every location change.
func WithOnChange(fn ChangeFunc) Option {
	return func(r *Router) {
		r.onChange = fn
	}
}

// WithStack sets the [history.Stack] a [*Router] listens to.
func WithStack(s history.Stack) Option {
	return func(r *Router) {
		r.stack = s
	}
}
