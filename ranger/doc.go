/*
Package ranger assembles a router with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New] using the routes of the application.
[New] builds the logger, the navigation stack and the router, and initializes the router;
[*Ranger.Guide] starts it, running the route matching the initial location.
[*Ranger.Shutdown] stops the router from listening to further location changes.

# Configuration

A developer configures a waypoint app through environment variables
and by passing [RangerOption] to [New].
Options override environment variables.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - ENVIRONMENT: the environment the application is running in; default: DEVELOPMENT; cf. [waypoint.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - ROUTER_HISTORY: how the navigation stack renders URLs, "hash" or "browser"; default: hash; cf. [history.Mode]
  - ROUTER_INITIAL_PATH: the location the navigation stack starts at; default: /
  - SENTRY_DSN: when set, errors are also reported to Sentry; cf. [logger.SentryLogger]
*/
package ranger
