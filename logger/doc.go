/*
Package logger provides logging functionality to a waypoint app by defining the required behavior in [Logger]
and providing an implementation of it with [WaypointLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [WaypointLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*WaypointLogger.Warn], [*WaypointLogger.Error], and [*WaypointLogger.Fatal] produce messages.

# WaypointLogger

Log messages emitted by [WaypointLogger] are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2022/04/28 15:55:21 [DEBUG] router/transition.go:43 'entering route' log_context: {"location":"/users/1","pattern":"/users/:id"}

The file, line number, and parent directory of where a [WaypointLogger] was called comprise the call site.
The log context is a JSON-encoded [*LogContext]:
the location and route a router was handling, plus any other data inessential to the message proper.

# SentryLogger

When the SENTRY_DSN environment variable is set, [NewLogger] returns a [*SentryLogger].
It logs like [WaypointLogger] and also ships the errors of Error and Fatal logs to Sentry,
tagged with the location and route pattern being handled.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
