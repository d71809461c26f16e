package history

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/waypoint"
)

// A Location is the part of a URL a router cares about.
// Search begins with "?" and Hash begins with "#" when either is not empty.
type Location struct {
	Pathname string
	Search   string
	Hash     string
}

// String stitches the parts of l back together.
func (l Location) String() string { return l.Pathname + l.Search + l.Hash }

// A Listener is notified with the new [Location] every time a [Stack] changes.
type Listener func(Location) error

// A Stack is the navigation stack a router listens to.
//
//go:generate mockgen -destination=historytest/mock_stack.go -package=historytest . Stack
type Stack interface {
	// Location returns the current Location.
	Location() Location

	// Push adds url to the top of the Stack and notifies every Listener.
	// Push returns the first error a Listener returns, as is.
	Push(url string) error

	// Listen subscribes fn to changes.
	// Calling the returned function unsubscribes fn.
	Listen(fn Listener) (unlisten func())
}

// A Mode is how a [*Memory] represents its locations as URLs.
type Mode string

const (
	ModeBrowser Mode = "browser"
	ModeHash    Mode = "hash"
)

var _ waypoint.Enumerable = ModeHash

func (m Mode) String() string { return string(m) }

func (m Mode) Valid() error {
	switch m {
	case ModeBrowser, ModeHash:
		return nil
	default:
		return fmt.Errorf("%w: history mode %q", waypoint.ErrNotValid, string(m))
	}
}

// ParseMode casts s into a [Mode], ignoring case.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Valid(); err != nil {
		return "", err
	}

	return m, nil
}
