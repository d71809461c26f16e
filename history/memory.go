package history

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/xy-planning-network/waypoint"
)

var _ Stack = (*Memory)(nil)

type subscription struct {
	id int
	fn Listener
}

// Memory is a [Stack] keeping its entries in memory.
//
// Memory is not safe for concurrent use.
// Like the browser history it stands in for, one goroutine drives it.
type Memory struct {
	mode      Mode
	entries   []Location
	index     int
	listeners []subscription
	nextID    int
}

// New constructs a [*Memory] in the provided [Mode] with initial as its only entry.
// An initial URL that cannot be parsed starts the stack at "/".
func New(mode Mode, initial string) (*Memory, error) {
	if err := mode.Valid(); err != nil {
		return nil, err
	}

	m := &Memory{mode: mode}
	loc, err := m.parse(initial)
	if err != nil {
		loc = Location{Pathname: "/"}
	}
	m.entries = []Location{loc}

	return m, nil
}

// NewBrowser constructs a [*Memory] in [ModeBrowser].
func NewBrowser(initial string) *Memory {
	m, _ := New(ModeBrowser, initial)
	return m
}

// NewHash constructs a [*Memory] in [ModeHash].
// initial may include the leading "#".
func NewHash(initial string) *Memory {
	m, _ := New(ModeHash, initial)
	return m
}

// Back moves one entry back, as in [*Memory.Go] with -1.
func (m *Memory) Back() error { return m.Go(-1) }

// Forward moves one entry forward, as in [*Memory.Go] with 1.
func (m *Memory) Forward() error { return m.Go(1) }

// Go moves n entries through the stack and notifies every Listener.
// Moving past either end of the stack does nothing.
func (m *Memory) Go(n int) error {
	idx := m.index + n
	if n == 0 || idx < 0 || idx >= len(m.entries) {
		return nil
	}

	m.index = idx
	return m.notify(m.entries[idx])
}

// Href renders the current Location as the URL the browser would show for it.
func (m *Memory) Href() string {
	loc := m.Location()
	if m.mode == ModeHash {
		return "#" + loc.Pathname + loc.Search
	}

	return loc.String()
}

// Len returns the number of entries in the stack.
func (m *Memory) Len() int { return len(m.entries) }

// Listen subscribes fn to changes.
// Calling the returned function more than once does nothing.
func (m *Memory) Listen(fn Listener) func() {
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range m.listeners {
			if sub.id == id {
				m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Location returns the current Location.
func (m *Memory) Location() Location { return m.entries[m.index] }

// Mode returns the [Mode] of m.
func (m *Memory) Mode() Mode { return m.mode }

// Push drops every entry after the current one, adds rawURL on top and notifies every Listener.
//
// In [ModeBrowser], a relative rawURL resolves against the current Location.
// In [ModeHash], rawURL is read as the fragment; a leading "/" is added if missing.
func (m *Memory) Push(rawURL string) error {
	loc, err := m.parse(rawURL)
	if err != nil {
		return err
	}

	m.entries = append(m.entries[:m.index+1], loc)
	m.index++

	return m.notify(loc)
}

// Replace swaps the current entry for rawURL and notifies every Listener.
func (m *Memory) Replace(rawURL string) error {
	loc, err := m.parse(rawURL)
	if err != nil {
		return err
	}

	m.entries[m.index] = loc
	return m.notify(loc)
}

// notify calls every Listener with loc, returning the first error.
// Listeners after a failing one still run.
func (m *Memory) notify(loc Location) error {
	subs := make([]subscription, len(m.listeners))
	copy(subs, m.listeners)

	var first error
	for _, sub := range subs {
		if err := sub.fn(loc); err != nil && first == nil {
			first = err
		}
	}

	return first
}

func (m *Memory) parse(raw string) (Location, error) {
	if m.mode == ModeHash {
		raw = strings.TrimPrefix(raw, "#")
		if !strings.HasPrefix(raw, "/") {
			raw = "/" + raw
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w: url %q: %s", waypoint.ErrNotValid, raw, err)
	}

	if m.mode == ModeBrowser && len(m.entries) > 0 && !strings.HasPrefix(raw, "/") {
		cur, err := url.Parse(m.Location().String())
		if err == nil {
			u = cur.ResolveReference(u)
		}
	}

	loc := Location{Pathname: u.EscapedPath()}
	if loc.Pathname == "" {
		loc.Pathname = "/"
	}

	if u.RawQuery != "" {
		loc.Search = "?" + u.RawQuery
	}

	// NOTE: in hash mode the fragment already carries the routed URL
	if m.mode == ModeBrowser && u.Fragment != "" {
		loc.Hash = "#" + u.EscapedFragment()
	}

	return loc, nil
}
