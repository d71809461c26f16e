package ranger

import (
	"fmt"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/history"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/router"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithStack is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// The default logger is an example of the second:
// it needs the Environment, which is only settled once every RangerOption has run.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

func defaultOpts() []RangerOption {
	return []RangerOption{
		WithEnv(""),
		defaultLogger(),
		defaultStack(),
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	e := waypoint.Environment(envVar)
	if err := e.Valid(); err == nil {
		return func(rng *Ranger) (OptFollowup, error) {
			rng.env = e
			return nil, nil
		}
	}

	return func(rng *Ranger) (OptFollowup, error) {
		rng.env = waypoint.EnvVarOrEnv(environmentEnvVar, waypoint.Development)
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the waypoint app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("nil logger")
		}

		rng.l = l
		return nil, nil
	}
}

// WithOnChange has the router call fn on every location change.
func WithOnChange(fn router.ChangeFunc) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.onChange = fn
		return nil, nil
	}
}

// WithStack exposes the provided history.Stack to the waypoint app,
// replacing the one built from ROUTER_HISTORY and ROUTER_INITIAL_PATH.
func WithStack(s history.Stack) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("nil stack")
		}

		rng.stack = s
		return nil, nil
	}
}

// defaultLogger constructs a followup option that, when called,
// builds a logger.Logger for the settled Environment at LOG_LEVEL,
// unless WithLogger already set one.
func defaultLogger() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if rng.l != nil {
				return nil
			}

			rng.l = logger.NewLogger(
				logger.WithEnv(rng.env),
				logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, defaultLogLvl)),
			)

			return nil
		}, nil
	}
}

// defaultStack constructs a followup option that, when called,
// builds a history.Stack from ROUTER_HISTORY and ROUTER_INITIAL_PATH,
// unless WithStack already set one.
func defaultStack() RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if rng.stack != nil {
				return nil
			}

			mode, err := history.ParseMode(waypoint.EnvVarOrString(historyEnvVar, defaultHistory.String()))
			if err != nil {
				return err
			}

			stack, err := history.New(mode, waypoint.EnvVarOrString(initialPathEnvVar, defaultInitialPath))
			if err != nil {
				return err
			}

			rng.stack = stack
			return nil
		}, nil
	}
}
