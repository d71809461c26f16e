/*
Package router binds path patterns to enter and exit callbacks
and runs them as the location of a [history.Stack] changes.

# Routes

A [Route] pairs a pattern, as understood by package pattern, with an [EnterFunc]
and, optionally, an [ExitFunc] and values to inject into both.
Routes are declared as a slice: the first Route whose pattern matches a location wins,
even if a later one matches more specifically.

	r := router.New()
	err := r.Init([]router.Route{
		{Pattern: "/users/:id", OnEnter: showUser, OnExit: hideUser, Inject: []any{store}},
		{Pattern: "/", OnEnter: showHome},
	})

# Transitions

[*Router.Start] runs the route matching the location the stack holds at startup.
After that, every change to the stack is a transition:

 1. the [ChangeFunc] set with [WithOnChange] is called, matched or not
 2. the first Route matching the new pathname becomes the [ActiveRoute], or none does
 3. if the ActiveRoute now differs from the one before it, by pattern or by params,
    the previous Route's ExitFunc runs, then the new Route's EnterFunc

Two locations differing only by their query string do not differ as ActiveRoutes,
so "/users/1" to "/users/1?tab=settings" runs no callbacks.

An error returned by a callback ends the transition and is returned, as is,
to whatever changed the stack; usually [*Router.Navigate].
A [*Router] does not roll back: the ActiveRoute is already replaced.

# Navigating from a callback

A callback may navigate.
Since a [*Router] runs one transition at a time,
the location the callback navigates to waits in a queue
until the transition running the callback is done.
Queued locations then run in the order they arrived, each as a full transition.
The call to [*Router.Navigate] inside the callback returns before its transition runs.

# Concurrency

A [*Router] is driven by one goroutine, as is the [history.Stack] it listens to.
Many routers may exist at once; none of them is global.
*/
package router
