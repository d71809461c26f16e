package router

import (
	"github.com/google/uuid"
	"github.com/xy-planning-network/waypoint/history"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/query"
)

// handleLocationChange runs a transition to loc.
// If a transition is already running, loc is queued behind it instead.
//
// handleLocationChange returns the first error a callback returns.
// Queued locations still run after an error; their own errors are logged.
func (r *Router) handleLocationChange(loc history.Location) error {
	if !r.started.Load() {
		return nil
	}

	if r.running {
		r.pending = append(r.pending, loc)
		r.l.Debug("queued location change", &logger.LogContext{
			Location: loc.String(),
			Data:     map[string]any{"pending": len(r.pending)},
		})
		return nil
	}

	r.running = true
	defer func() {
		r.running = false
		r.pending = nil
	}()

	err := r.transition(loc)
	for len(r.pending) > 0 {
		next := r.pending[0]
		r.pending = r.pending[1:]

		nextErr := r.transition(next)
		if nextErr == nil {
			continue
		}

		if err == nil {
			err = nextErr
			continue
		}

		r.l.Error("queued transition failed", &logger.LogContext{Error: nextErr, Location: next.String()})
	}

	return err
}

// transition replaces the current ActiveRoute with the one matching loc
// and, if they differ, runs the previous Route's ExitFunc and then the new Route's EnterFunc.
func (r *Router) transition(loc history.Location) error {
	id := uuid.NewString()

	if r.onChange != nil {
		if err := r.onChange(loc); err != nil {
			return err
		}
	}

	prev := r.current
	next := r.match(loc.Pathname)
	r.previous = prev
	r.current = next

	lc := &logger.LogContext{
		Location: loc.String(),
		Data:     map[string]any{"transition": id},
	}
	if next != nil {
		lc.Pattern = next.Pattern
	}

	if prev != nil && prev.Same(next) {
		r.l.Debug("location changed within active route", lc)
		return nil
	}

	if prev != nil && prev.route.OnExit != nil {
		r.l.Debug("exiting route "+prev.Pattern, lc)
		err := prev.route.OnExit(ExitContext{
			Router:       r,
			Inject:       inject(prev.route),
			TransitionID: id,
		})
		if err != nil {
			return err
		}
	}

	if next == nil {
		r.l.Debug("no route matches location", lc)
		return nil
	}

	r.l.Debug("entering route "+next.Pattern, lc)
	return next.route.OnEnter(EnterContext{
		Pathname:     loc.Pathname,
		Query:        query.Decode(loc.Search),
		Params:       append(Params(nil), next.Params...),
		Router:       r,
		Inject:       inject(next.route),
		TransitionID: id,
	})
}

// match finds the first Route matching pathname.
func (r *Router) match(pathname string) *ActiveRoute {
	for i := range r.routes {
		cr := &r.routes[i]
		params, ok := cr.match(pathname)
		if !ok {
			continue
		}

		return &ActiveRoute{Pattern: cr.Pattern, Params: params, route: cr}
	}

	return nil
}

func inject(cr *compiledRoute) []any {
	return append([]any(nil), cr.Inject...)
}
