package router_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/history"
	"github.com/xy-planning-network/waypoint/history/historytest"
	"github.com/xy-planning-network/waypoint/router"
)

// newMocked constructs and initializes a Router listening to a mock stack sitting at loc.
func newMocked(t *testing.T, loc history.Location) (*router.Router, *historytest.MockStack) {
	t.Helper()

	ctrl := gomock.NewController(t)
	stack := historytest.NewMockStack(ctrl)
	stack.EXPECT().Listen(gomock.Any()).Return(func() {})
	stack.EXPECT().Location().Return(loc).AnyTimes()

	r := router.New(router.WithLogger(quietLogger()))
	require.Nil(t, r.Init([]router.Route{}, router.WithStack(stack)))

	return r, stack
}

func TestNavigate(t *testing.T) {
	for _, tc := range []struct {
		name     string
		current  history.Location
		pathname string
		q        url.Values
		merge    bool
		expected string
	}{
		{"Path", history.Location{Pathname: "/"}, "/users/1", nil, false, "/users/1"},
		{"Empty-Query", history.Location{Pathname: "/"}, "/users/1", url.Values{}, false, "/users/1"},
		{"Query", history.Location{Pathname: "/"}, "/users/1", url.Values{"tab": {"settings"}}, false, "/users/1?tab=settings"},
		{"Inline-Query", history.Location{Pathname: "/"}, "/users/1?tab=settings", nil, false, "/users/1?tab=settings"},
		{"Inline-Query-Overridden", history.Location{Pathname: "/"}, "/users/1?tab=settings&a=1", url.Values{"tab": {"profile"}}, false, "/users/1?a=1&tab=profile"},
		{"Hash", history.Location{Pathname: "/"}, "/docs?v=2#install", url.Values{"lang": {"go"}}, false, "/docs?lang=go&v=2#install"},
		{"No-Merge-Drops-Current", history.Location{Pathname: "/users", Search: "?b=2"}, "/users/1", url.Values{"a": {"1"}}, false, "/users/1?a=1"},
		{"Merge", history.Location{Pathname: "/users", Search: "?b=2"}, "/users/1", url.Values{"a": {"1"}}, true, "/users/1?a=1&b=2"},
		{"Merge-Replaces-Key", history.Location{Pathname: "/users", Search: "?a=0&b=2"}, "/users/1", url.Values{"a": {"1"}}, true, "/users/1?a=1&b=2"},
		{"Merge-Nil", history.Location{Pathname: "/users", Search: "?b=2"}, "/users/1", nil, true, "/users/1?b=2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r, stack := newMocked(t, tc.current)
			stack.EXPECT().Push(tc.expected).Return(nil)

			// Act
			err := r.Navigate(tc.pathname, tc.q, tc.merge)

			// Assert
			require.Nil(t, err)
		})
	}
}

func TestNavigateMissingPathname(t *testing.T) {
	// Arrange
	r, _ := newMocked(t, history.Location{Pathname: "/"})

	// Act
	err := r.Navigate("", url.Values{"a": {"1"}}, true)

	// Assert
	require.ErrorIs(t, err, waypoint.ErrMissingData)
}

func TestNavigatePushErr(t *testing.T) {
	// Arrange
	r, stack := newMocked(t, history.Location{Pathname: "/"})
	pushErr := errors.New("push failed")
	stack.EXPECT().Push("/a").Return(pushErr)

	// Act
	err := r.Navigate("/a", nil, false)

	// Assert
	require.Equal(t, pushErr, err)
}

func TestNavigateBeforeInit(t *testing.T) {
	// Arrange
	r := router.New(router.WithLogger(quietLogger()))

	// Act + Assert
	require.ErrorIs(t, r.Navigate("/a", nil, false), waypoint.ErrBadConfig)
	require.ErrorIs(t, r.NavigateKeepQuery("/a"), waypoint.ErrBadConfig)
	require.ErrorIs(t, r.AppendQuery(url.Values{}, false), waypoint.ErrBadConfig)
	require.ErrorIs(t, r.AppendQueryString("a=1", false), waypoint.ErrBadConfig)
}

func TestNavigateKeepQuery(t *testing.T) {
	// Arrange
	r, stack := newMocked(t, history.Location{Pathname: "/users", Search: "?b=2&a=1"})
	stack.EXPECT().Push("/users/1?b=2&a=1").Return(nil)

	// Act
	err := r.NavigateKeepQuery("/users/1")

	// Assert
	require.Nil(t, err)

	// Act
	err = r.NavigateKeepQuery("")

	// Assert
	require.ErrorIs(t, err, waypoint.ErrMissingData)
}

func TestAppendQuery(t *testing.T) {
	for _, tc := range []struct {
		name     string
		q        url.Values
		merge    bool
		expected string
	}{
		{"Replace", url.Values{"a": {"1"}}, false, "/users?a=1"},
		{"Merge", url.Values{"a": {"1"}}, true, "/users?a=1&b=2"},
		{"Clear", url.Values{}, false, "/users"},
		{"Merge-Empty", url.Values{}, true, "/users?b=2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r, stack := newMocked(t, history.Location{Pathname: "/users", Search: "?b=2"})
			stack.EXPECT().Push(tc.expected).Return(nil)

			// Act
			err := r.AppendQuery(tc.q, tc.merge)

			// Assert
			require.Nil(t, err)
		})
	}

	// Arrange
	r, _ := newMocked(t, history.Location{Pathname: "/users", Search: "?b=2"})

	// Act
	err := r.AppendQuery(nil, true)

	// Assert
	require.ErrorIs(t, err, waypoint.ErrMissingData)
}

func TestAppendQueryString(t *testing.T) {
	// Arrange
	r, stack := newMocked(t, history.Location{Pathname: "/users", Search: "?b=2"})
	stack.EXPECT().Push("/users?a=1&b=2").Return(nil)

	// Act
	err := r.AppendQueryString("a=1", true)

	// Assert
	require.Nil(t, err)

	// Act
	err = r.AppendQueryString("", true)

	// Assert
	require.ErrorIs(t, err, waypoint.ErrMissingData)
}

func TestStartUsesStackLocation(t *testing.T) {
	// Arrange
	var entered []string
	ctrl := gomock.NewController(t)
	stack := historytest.NewMockStack(ctrl)
	unlistened := false
	stack.EXPECT().Listen(gomock.Any()).Return(func() { unlistened = true })
	stack.EXPECT().Location().Return(history.Location{Pathname: "/users/7", Search: "?tab=posts"})

	r := router.New(router.WithLogger(quietLogger()))
	require.Nil(t, r.Init([]router.Route{
		{Pattern: "/users/:id", OnEnter: func(ctx router.EnterContext) error {
			entered = append(entered, ctx.Params.Get("id"), ctx.Query.Get("tab"))
			return nil
		}},
	}, router.WithStack(stack)))

	// Act
	err := r.Start()
	r.Close()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []string{"7", "posts"}, entered)
	require.True(t, unlistened)
}
