/*
Package history defines the navigation stack a router listens to
and in-memory implementations of it.

A [Stack] exposes the current [Location], pushes new entries with [Stack.Push]
and notifies every [Listener] subscribed with [Stack.Listen] of each change.
Listeners run synchronously, inside the call that changed the location,
in the order they subscribed.

[*Memory] implements [Stack] in either of two modes.
In [ModeHash], the routed URL lives in the fragment, as in "#/users/1?tab=settings".
In [ModeBrowser], the routed URL is the path itself, as in "/users/1?tab=settings#top".
Both keep their entries in memory, so a router runs the same
in tests, in a WebAssembly host bridging to window.history, or in a terminal app.
*/
package history
