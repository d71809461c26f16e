/*
Package waypoint binds path patterns to enter and exit callbacks
fired as the location of a navigation stack changes.

waypoint knows nothing about rendering.
A callback does whatever the application needs when a route becomes active or inactive:
fetch data, toggle a view, update a store.

# Layout

The root package holds what every other package shares:
the sentinel errors callers check with [errors.Is] and the [Environment] an application runs in.

  - package pattern compiles "/users/:id" style patterns into matchers
  - package query decodes, encodes and merges query strings
  - package history defines the navigation stack a router listens to and in-memory implementations of it
  - package router compiles a route table and runs transitions between routes
  - package logger writes the logs of all of the above
  - package ranger assembles a router from environment variables

# Errors

A missing route table or a misconfigured route is an [ErrBadConfig].
Calling a navigation method without its required argument is an [ErrMissingData].
An error returned by an application callback is never wrapped:
it reaches whoever triggered the navigation exactly as the callback returned it.
*/
package waypoint
