package router

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/query"
)

// Navigate pushes pathname, along with q, onto the [history.Stack].
// pathname may carry its own query string; q is merged over it.
// If merge is true, both are merged over the query string of the current location.
// A "#fragment" in pathname is pushed as well,
// but a stack in [history.ModeHash] drops it since its URL already lives in the fragment.
//
// Navigate returns an error wrapping [waypoint.ErrMissingData] if pathname is empty,
// without pushing anything.
// Otherwise, Navigate returns what pushing returned,
// including errors from the callbacks of the transition it caused.
func (r *Router) Navigate(pathname string, q url.Values, merge bool) error {
	if pathname == "" {
		return fmt.Errorf("%w: no pathname provided to Navigate", waypoint.ErrMissingData)
	}

	if err := r.requireStack(); err != nil {
		return err
	}

	rest, hash, hasHash := strings.Cut(pathname, "#")
	path, inline, _ := strings.Cut(rest, "?")

	vals := query.Decode(inline)
	if merge {
		vals = query.Merge(query.Decode(r.stack.Location().Search), vals)
	}
	vals = query.Merge(vals, q)

	target := path
	if encoded := query.Encode(vals); encoded != "" {
		target += "?" + encoded
	}

	if hasHash {
		target += "#" + hash
	}

	r.l.Debug("navigating", &logger.LogContext{Location: target})
	return r.stack.Push(target)
}

// NavigateKeepQuery pushes pathname onto the [history.Stack]
// followed by the query string of the current location, as is.
//
// NavigateKeepQuery returns an error wrapping [waypoint.ErrMissingData] if pathname is empty.
func (r *Router) NavigateKeepQuery(pathname string) error {
	if pathname == "" {
		return fmt.Errorf("%w: no pathname provided to NavigateKeepQuery", waypoint.ErrMissingData)
	}

	if err := r.requireStack(); err != nil {
		return err
	}

	target := pathname + r.stack.Location().Search
	r.l.Debug("navigating", &logger.LogContext{Location: target})
	return r.stack.Push(target)
}

// AppendQuery navigates to the current pathname with q as its query string.
// If merge is true, q is merged over the current query string instead of replacing it.
//
// AppendQuery returns an error wrapping [waypoint.ErrMissingData] if q is nil.
// An empty, non-nil q clears the query string.
func (r *Router) AppendQuery(q url.Values, merge bool) error {
	if q == nil {
		return fmt.Errorf("%w: no query provided to AppendQuery", waypoint.ErrMissingData)
	}

	if err := r.requireStack(); err != nil {
		return err
	}

	return r.Navigate(r.stack.Location().Pathname, q, merge)
}

// AppendQueryString is [*Router.AppendQuery] for a query string such as "tab=settings&sort=asc".
//
// AppendQueryString returns an error wrapping [waypoint.ErrMissingData] if s is empty.
func (r *Router) AppendQueryString(s string, merge bool) error {
	if s == "" {
		return fmt.Errorf("%w: no query provided to AppendQueryString", waypoint.ErrMissingData)
	}

	return r.AppendQuery(query.Parse(s), merge)
}

func (r *Router) requireStack() error {
	if r.stack == nil {
		return fmt.Errorf("%w: Init must be called before navigating", waypoint.ErrBadConfig)
	}

	return nil
}
