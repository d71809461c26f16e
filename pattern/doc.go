/*
Package pattern compiles path patterns into matchers.

A pattern is a path whose segments are either static or named parameters.
Two spellings of a named parameter are understood:

	/users/:id          colon-prefixed segment
	/users/:id(\d+)     colon-prefixed segment with its own expression
	/users/{id}         brace segment
	/users/{id:[0-9]+}  brace segment with its own expression

Compilation is done by [github.com/gorilla/mux]; colon segments are rewritten to brace segments first.
A [*Matcher] holds the compiled expression together with the ordered names of its parameters,
so the values [*Matcher.Test] captures line up with [*Matcher.Keys] by position.

A location with a trailing slash matches a pattern without one:
"/users/1/" matches "/users/:id".
*/
package pattern
