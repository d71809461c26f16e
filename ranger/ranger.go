package ranger

import (
	"fmt"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/history"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/router"
)

const (
	environmentEnvVar = "ENVIRONMENT"

	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = logger.LogLevelInfo

	historyEnvVar      = "ROUTER_HISTORY"
	defaultHistory     = history.ModeHash
	initialPathEnvVar  = "ROUTER_INITIAL_PATH"
	defaultInitialPath = "/"
)

// A Ranger manages and exposes all components of a waypoint app to one another.
type Ranger struct {
	*router.Router

	env      waypoint.Environment
	l        logger.Logger
	onChange router.ChangeFunc
	stack    history.Stack
}

// New constructs a Ranger from the provided options and initializes its router with routes.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(routes []router.Route, opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", waypoint.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", waypoint.ErrBadConfig, err)
		}
	}

	initOpts := []router.Option{router.WithStack(r.stack)}
	if r.onChange != nil {
		initOpts = append(initOpts, router.WithOnChange(r.onChange))
	}

	r.Router = router.New(router.WithLogger(r.l))
	if err := r.Router.Init(routes, initOpts...); err != nil {
		return nil, err
	}

	r.l.Debug(fmt.Sprintf("using env %s", r.env), nil)
	r.l.Debug(fmt.Sprintf("using stack %T", r.stack), nil)

	return r, nil
}

func (r *Ranger) EmitEnv() waypoint.Environment { return r.env }
func (r *Ranger) EmitLogger() logger.Logger     { return r.l }
func (r *Ranger) EmitStack() history.Stack      { return r.stack }

// Guide starts the router, running the route matching the initial location.
func (r *Ranger) Guide() error {
	r.l.Info(fmt.Sprintf("starting router at %s", r.stack.Location()), nil)
	return r.Start()
}

// Shutdown stops the router from handling further location changes.
func (r *Ranger) Shutdown() {
	r.l.Info("shutting down router", nil)
	r.Close()
}

// envVarOrLogLevel gets the environment variable from the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is an unknown logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	val := waypoint.EnvVarOrString(key, "")
	if val == "" {
		return def
	}

	ll := logger.NewLogLevel(val)
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}
