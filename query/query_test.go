package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/query"
)

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		name     string
		search   string
		expected url.Values
	}{
		{"Empty", "", url.Values{}},
		{"Question-Mark", "?", url.Values{}},
		{"One", "?tab=settings", url.Values{"tab": {"settings"}}},
		{"No-Question-Mark", "tab=settings", url.Values{"tab": {"settings"}}},
		{"Many", "?a=1&b=2", url.Values{"a": {"1"}, "b": {"2"}}},
		{"Repeated", "?a=1&a=2", url.Values{"a": {"1", "2"}}},
		{"Escaped", "?q=annual%20report", url.Values{"q": {"annual report"}}},
		{"No-Value", "?flag", url.Values{"flag": {""}}},
		{"Skips-Bad-Pair", "?a=%zz&b=2", url.Values{"b": {"2"}}},
		{"Skips-Empty-Pair", "?a=1&&b=2", url.Values{"a": {"1"}, "b": {"2"}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, query.Decode(tc.search))
		})
	}
}

func TestEncode(t *testing.T) {
	require.Equal(t, "", query.Encode(url.Values{}))
	require.Equal(t, "", query.Encode(nil))
	require.Equal(t, "a=1&b=2", query.Encode(url.Values{"b": {"2"}, "a": {"1"}}))
	require.Equal(t, "q=annual+report", query.Encode(url.Values{"q": {"annual report"}}))
}

func TestMerge(t *testing.T) {
	// Arrange
	existing := url.Values{"a": {"1"}, "b": {"2"}}
	incoming := url.Values{"b": {"3", "4"}, "c": {"5"}}

	// Act
	actual := query.Merge(existing, incoming)

	// Assert
	require.Equal(t, url.Values{"a": {"1"}, "b": {"3", "4"}, "c": {"5"}}, actual)
	require.Equal(t, url.Values{"a": {"1"}, "b": {"2"}}, existing)
	require.Equal(t, url.Values{"b": {"3", "4"}, "c": {"5"}}, incoming)

	// Act
	actual["a"][0] = "mutated"

	// Assert
	require.Equal(t, "1", existing.Get("a"))

	// Act + Assert
	require.Equal(t, url.Values{}, query.Merge(nil, nil))
}
