package waypoint

import (
	"os"
	"strings"
)

// An Environment is a different context in which a waypoint app operates.
type Environment string

const (
	Demo        Environment = "DEMO"
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Review      Environment = "REVIEW"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

var _ Enumerable = Development

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Demo, Development, Production, Review, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsTesting() bool {
	return e == Testing
}

// EnvVarOrBool gets the environment variable for the provided key and
// returns whether it matches "true" or "false" (after lower casing it)
// or the default value.
func EnvVarOrBool(key string, def bool) bool {
	val := os.Getenv(key)
	if strings.ToLower(val) == "true" {
		return true
	}

	if strings.ToLower(val) == "false" {
		return false
	}

	return def
}

// EnvVarOrEnv gets the environment variable for the provided key,
// casts it into an [Environment],
// or returns the provided default [Environment] if key is not a valid [Environment].
func EnvVarOrEnv(key string, def Environment) Environment {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	env := Environment(strings.ToUpper(val))
	if err := env.Valid(); err != nil {
		return def
	}

	return env
}

// EnvVarOrString gets the environment variable for the provided key or the provided default string.
func EnvVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}
