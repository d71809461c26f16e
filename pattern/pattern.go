package pattern

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/waypoint"
)

var colonSegment = regexp.MustCompile(`^:([A-Za-z_][A-Za-z0-9_]*)(?:\((.+)\))?$`)

// A Matcher tests pathnames against a compiled pattern.
type Matcher struct {
	pattern string
	keys    []string
	re      *regexp.Regexp
}

// Compile compiles p into a [*Matcher].
// Matching ignores case: "/Users/1" matches "/users/:id".
//
// A colon segment names exactly one path segment.
// Optional and repeated segments (":id?", ":id+", ":id*") are not supported.
//
// Compile returns an error wrapping [waypoint.ErrBadConfig] when p is empty,
// does not begin with a slash, repeats a parameter name or is otherwise malformed.
func Compile(p string) (m *Matcher, err error) {
	// NOTE: mux panics on patterns containing capture groups
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("%w: pattern %q: %s", waypoint.ErrBadConfig, p, r)
		}
	}()

	if p == "" || p[0] != '/' {
		return nil, fmt.Errorf("%w: pattern %q must begin with /", waypoint.ErrBadConfig, p)
	}

	tmpl, err := toTemplate(p)
	if err != nil {
		return nil, err
	}

	route := mux.NewRouter().StrictSlash(true).NewRoute().Path(tmpl)
	if err := route.GetError(); err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %s", waypoint.ErrBadConfig, p, err)
	}

	expr, err := route.GetPathRegexp()
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %s", waypoint.ErrBadConfig, p, err)
	}

	keys, err := route.GetVarNames()
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %s", waypoint.ErrBadConfig, p, err)
	}

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return nil, fmt.Errorf("%w: pattern %q repeats parameter %q", waypoint.ErrBadConfig, p, k)
		}
		seen[k] = true
	}

	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %s", waypoint.ErrBadConfig, p, err)
	}

	return &Matcher{pattern: p, keys: keys, re: re}, nil
}

// MustCompile is like [Compile] but panics if p cannot be compiled.
func MustCompile(p string) *Matcher {
	m, err := Compile(p)
	if err != nil {
		panic(err)
	}

	return m
}

// Keys returns the names of the parameters in the pattern, in the order they appear.
func (m *Matcher) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Pattern returns the pattern m was compiled from.
func (m *Matcher) Pattern() string { return m.pattern }

// Test matches pathname against the pattern.
// When it matches, Test returns the value captured for each of [*Matcher.Keys], in the same order.
// Captured values are percent-decoded; a value that cannot be decoded is returned as is.
func (m *Matcher) Test(pathname string) ([]string, bool) {
	matches := m.re.FindStringSubmatch(pathname)
	if matches == nil {
		return nil, false
	}

	vals := make([]string, len(matches)-1)
	for i, raw := range matches[1:] {
		val, err := url.PathUnescape(raw)
		if err != nil {
			val = raw
		}
		vals[i] = val
	}

	return vals, true
}

// toTemplate rewrites colon segments in p into the brace segments mux understands.
func toTemplate(p string) (string, error) {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}

		parts := colonSegment.FindStringSubmatch(seg)
		if parts == nil {
			return "", fmt.Errorf("%w: pattern %q has malformed segment %q", waypoint.ErrBadConfig, p, seg)
		}

		if parts[2] == "" {
			segments[i] = "{" + parts[1] + "}"
			continue
		}

		segments[i] = "{" + parts[1] + ":" + parts[2] + "}"
	}

	return strings.Join(segments, "/"), nil
}
