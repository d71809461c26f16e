package ranger_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/history"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/ranger"
	"github.com/xy-planning-network/waypoint/router"
)

func TestNewFromEnv(t *testing.T) {
	// Arrange
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("ENVIRONMENT", "testing")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("ROUTER_HISTORY", "browser")
	t.Setenv("ROUTER_INITIAL_PATH", "/users/1?tab=settings")

	var entered []string
	routes := []router.Route{
		{Pattern: "/users/:id", OnEnter: func(ctx router.EnterContext) error {
			entered = append(entered, ctx.Params.Get("id"), ctx.Query.Get("tab"))
			return nil
		}},
	}

	// Act
	rng, err := ranger.New(routes)

	// Assert
	require.Nil(t, err)
	require.Equal(t, waypoint.Testing, rng.EmitEnv())
	require.Equal(t, logger.LogLevelError, rng.EmitLogger().LogLevel())

	stack, ok := rng.EmitStack().(*history.Memory)
	require.True(t, ok)
	require.Equal(t, history.ModeBrowser, stack.Mode())
	require.Empty(t, entered)

	// Act
	err = rng.Guide()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{"1", "settings"}, entered)
	require.Equal(t, "/users/:id", rng.Current().Pattern)

	// Act
	rng.Shutdown()
	require.Nil(t, stack.Push("/users/2"))

	// Assert
	require.Equal(t, []string{"1", "settings"}, entered)
}

func TestNewDefaults(t *testing.T) {
	// Arrange
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ROUTER_HISTORY", "")
	t.Setenv("ROUTER_INITIAL_PATH", "")

	// Act
	rng, err := ranger.New([]router.Route{})

	// Assert
	require.Nil(t, err)
	require.Equal(t, waypoint.Development, rng.EmitEnv())
	require.Equal(t, logger.LogLevelInfo, rng.EmitLogger().LogLevel())

	stack, ok := rng.EmitStack().(*history.Memory)
	require.True(t, ok)
	require.Equal(t, history.ModeHash, stack.Mode())
	require.Equal(t, "#/", stack.Href())
}

func TestNewOptions(t *testing.T) {
	// Arrange
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("ROUTER_HISTORY", "carrier-pigeon")
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelDebug))
	stack := history.NewHash("#/a")

	var changes []string
	routes := []router.Route{{Pattern: "/a", OnEnter: func(router.EnterContext) error { return nil }}}

	// Act
	rng, err := ranger.New(
		routes,
		ranger.WithEnv("STAGING"),
		ranger.WithLogger(l),
		ranger.WithStack(stack),
		ranger.WithOnChange(func(loc history.Location) error {
			changes = append(changes, loc.String())
			return nil
		}),
	)

	// Assert
	require.Nil(t, err)
	require.Equal(t, waypoint.Staging, rng.EmitEnv())
	require.Same(t, stack, rng.EmitStack())
	require.Contains(t, b.String(), "using env STAGING")

	// Act
	require.Nil(t, rng.Guide())
	require.Nil(t, rng.Navigate("/b", nil, false))

	// Assert
	require.Equal(t, []string{"/a", "/b"}, changes)
}

func TestNewErr(t *testing.T) {
	// Arrange
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("ROUTER_HISTORY", "carrier-pigeon")

	// Act
	rng, err := ranger.New([]router.Route{})

	// Assert
	require.Nil(t, rng)
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Arrange
	t.Setenv("ROUTER_HISTORY", "")

	// Act
	rng, err = ranger.New(nil)

	// Assert
	require.Nil(t, rng)
	require.ErrorIs(t, err, waypoint.ErrBadConfig)

	// Act
	rng, err = ranger.New([]router.Route{}, ranger.WithLogger(nil))

	// Assert
	require.Nil(t, rng)
	require.ErrorIs(t, err, waypoint.ErrBadConfig)
}
