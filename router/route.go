package router

import (
	"fmt"
	"net/url"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/history"
	"github.com/xy-planning-network/waypoint/pattern"
)

// An EnterFunc runs when its [Route] becomes active.
type EnterFunc func(EnterContext) error

// An ExitFunc runs when its [Route] stops being active.
type ExitFunc func(ExitContext) error

// A ChangeFunc runs on every location change, whether a [Route] matches or not.
type ChangeFunc func(history.Location) error

// A Route maps a path pattern to the callbacks run when entering and leaving it.
type Route struct {
	// Pattern is a path pattern, e.g., "/users/:id".
	Pattern string

	// OnEnter is required.
	OnEnter EnterFunc

	// OnExit is optional.
	OnExit ExitFunc

	// Inject is handed to OnEnter and OnExit through their context.
	Inject []any
}

// An EnterContext is what an [EnterFunc] knows about the transition entering its [Route].
type EnterContext struct {
	Pathname string
	Query    url.Values
	Params   Params
	Router   *Router
	Inject   []any

	// TransitionID identifies the transition in logs.
	TransitionID string
}

// An ExitContext is what an [ExitFunc] knows about the transition leaving its [Route].
type ExitContext struct {
	Router *Router
	Inject []any

	// TransitionID identifies the transition in logs.
	TransitionID string
}

// A Param is a named segment of a pattern bound to the value it matched.
type Param struct {
	Key   string
	Value string
}

// Params are the Param of a match, in the order they appear in the pattern.
type Params []Param

// Equal asserts whether p and other bind the same keys to the same values in the same order.
func (p Params) Equal(other Params) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Get returns the value bound to key or the empty string.
func (p Params) Get(key string) string {
	for _, param := range p {
		if param.Key == key {
			return param.Value
		}
	}

	return ""
}

// Map copies p into a map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Key] = param.Value
	}

	return m
}

// A compiledRoute is a Route ready to be matched against.
// It is never modified after compile builds it.
type compiledRoute struct {
	Route
	keys    []string
	matcher *pattern.Matcher
}

// compile turns routes into the table a Router matches against, keeping their order.
func compile(routes []Route) ([]compiledRoute, error) {
	if routes == nil {
		return nil, fmt.Errorf("%w: no routes provided", waypoint.ErrBadConfig)
	}

	table := make([]compiledRoute, 0, len(routes))
	for _, route := range routes {
		if route.OnEnter == nil {
			return nil, fmt.Errorf("%w: route %q has no OnEnter", waypoint.ErrBadConfig, route.Pattern)
		}

		m, err := pattern.Compile(route.Pattern)
		if err != nil {
			return nil, err
		}

		route.Inject = append([]any(nil), route.Inject...)
		table = append(table, compiledRoute{Route: route, keys: m.Keys(), matcher: m})
	}

	return table, nil
}

// match binds the values cr captures from pathname to its keys.
func (cr *compiledRoute) match(pathname string) (Params, bool) {
	vals, ok := cr.matcher.Test(pathname)
	if !ok {
		return nil, false
	}

	params := make(Params, len(vals))
	for i, val := range vals {
		params[i] = Param{Key: cr.keys[i], Value: val}
	}

	return params, true
}

// An ActiveRoute is the Route matching the current location
// along with the values its params bound to.
//
// An ActiveRoute is replaced, never modified, on each transition.
type ActiveRoute struct {
	Pattern string
	Params  Params

	route *compiledRoute
}

// Same asserts whether ar and other are the same pattern bound to the same params.
// Callbacks and injected values play no part.
// Two nil ActiveRoutes are the same; a nil and a non-nil one are not.
func (ar *ActiveRoute) Same(other *ActiveRoute) bool {
	if ar == nil || other == nil {
		return ar == nil && other == nil
	}

	return ar.Pattern == other.Pattern && ar.Params.Equal(other.Params)
}
