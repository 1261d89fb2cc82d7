package configs

import (
	"strconv"
	"strings"
)

// Environment variable names read by the resolver. Flags override all of
// these; the two Loaded indicators and the child sentinel are read-only
// signals from the surrounding process tree.
const (
	// EnvClientID carries the machine identity client id.
	EnvClientID = "INFISICAL_CLIENT_ID"

	// EnvClientSecret carries the machine identity client secret.
	EnvClientSecret = "INFISICAL_CLIENT_SECRET"

	// EnvToken carries a pre-obtained access token, skipping the
	// authentication exchange entirely.
	EnvToken = "INFISICAL_TOKEN"

	// EnvProjectID carries the project id.
	EnvProjectID = "INFISICAL_PROJECT_ID"

	// EnvEnvironment carries the environment slug.
	EnvEnvironment = "INFISICAL_ENV"

	// EnvSecretsLoaded and EnvLoaded are the already-loaded indicators.
	// Either being truthy suppresses the secrets fetch unless --force is
	// given. EnvLoaded is the generic name other tooling tends to set.
	EnvSecretsLoaded = "INFISICAL_SECRETS_LOADED"
	EnvLoaded        = "SECRETS_LOADED"

	// EnvChildSentinel is the re-entrancy guard. It is set for the child
	// and must not be set by end users: a nested invocation that sees it
	// launches its command without resolving anything.
	EnvChildSentinel = "INFISICAL_RUN_CHILD"

	// DefaultEnvironmentName is the environment slug used when none is
	// supplied and the project config file doesn't name one.
	DefaultEnvironmentName = "dev"
)

// Truthy reports whether an indicator variable's value counts as true.
// Accepts everything strconv.ParseBool does plus the common shell
// spellings "yes", "y", and "on". An unset or empty value is false.
func Truthy(value string) bool {
	if value == "" {
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	switch strings.ToLower(value) {
	case "yes", "y", "on":
		return true
	}
	return false
}
