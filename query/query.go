// Package query decodes, encodes and merges the query strings of a location.
package query

import (
	"net/url"
	"strings"
)

// Decode parses search into its key-value pairs.
// search may or may not begin with "?".
//
// Decode never fails: pairs that cannot be parsed are skipped.
func Decode(search string) url.Values {
	search = strings.TrimPrefix(search, "?")
	vals := make(url.Values)
	for search != "" {
		var pair string
		pair, search, _ = strings.Cut(search, "&")
		if pair == "" {
			continue
		}

		// NOTE: url.ParseQuery stops at the first bad pair, so parse each one alone
		parsed, err := url.ParseQuery(pair)
		if err != nil {
			continue
		}

		for k, vs := range parsed {
			vals[k] = append(vals[k], vs...)
		}
	}

	return vals
}

// Parse is an alias of [Decode] reading a query string written by hand,
// e.g., "tab=settings&sort=asc".
func Parse(s string) url.Values { return Decode(s) }

// Encode renders v as a query string sorted by key, without a leading "?".
func Encode(v url.Values) string { return v.Encode() }

// Merge returns a new url.Values holding every key in existing and incoming.
// A key in incoming replaces all values of the same key in existing.
// Neither existing nor incoming is modified.
func Merge(existing, incoming url.Values) url.Values {
	merged := make(url.Values, len(existing)+len(incoming))
	for k, vs := range existing {
		merged[k] = append([]string(nil), vs...)
	}

	for k, vs := range incoming {
		merged[k] = append([]string(nil), vs...)
	}

	return merged
}
