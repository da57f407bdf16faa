package enums

import (
	"slices"
	"strings"
)

// AppEnvironment is the deployment environment the application runs in.
type AppEnvironment string

const (
	EnvProduction  AppEnvironment = "production"
	EnvUAT         AppEnvironment = "uat"
	EnvDevelopment AppEnvironment = "development"
	EnvLocal       AppEnvironment = "local"
	EnvTesting     AppEnvironment = "testing"
)

func AppEnvironmentValues() []AppEnvironment {
	return []AppEnvironment{EnvProduction, EnvUAT, EnvDevelopment, EnvLocal, EnvTesting}
}

func ParseAppEnvironment(raw string) (AppEnvironment, error) {
	return parse("environment", raw, AppEnvironmentValues())
}

// CurrentEnvironment maps a raw environment name onto a known value.
// Unknown names report false.
func CurrentEnvironment(raw string) (AppEnvironment, bool) {
	env := AppEnvironment(strings.ToLower(strings.TrimSpace(raw)))
	return env, env.Valid()
}

func (e AppEnvironment) Valid() bool {
	return slices.Contains(AppEnvironmentValues(), e)
}

func (e AppEnvironment) IsProduction() bool {
	return e == EnvProduction
}

func (e AppEnvironment) Description() string {
	switch e {
	case EnvProduction:
		return "Production"
	case EnvUAT:
		return "User acceptance testing"
	case EnvDevelopment:
		return "Shared development"
	case EnvLocal:
		return "Local workstation"
	case EnvTesting:
		return "Automated tests"
	default:
		return "Unknown environment"
	}
}
