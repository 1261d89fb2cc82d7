package errors

import "errors"

// Configuration errors indicate required inputs could not be resolved
// from flags, the environment, or the project config file.
var (
	// ErrMissingCredentials indicates neither a token nor a complete
	// machine identity (client id and client secret) was provided.
	ErrMissingCredentials = errors.New("missing machine identity credentials")

	// ErrMissingProjectID indicates no project id was supplied and none
	// could be read from the project config file.
	ErrMissingProjectID = errors.New("missing project id")
)

// Resource errors indicate a file the user explicitly asked for is not usable.
var (
	// ErrDotenvFileNotFound indicates an explicitly requested dotenv file
	// does not exist. The default .env file is exempt: its absence is a
	// soft no-op, never this error.
	ErrDotenvFileNotFound = errors.New("dotenv file not found")
)

// External service errors indicate the secrets manager call failed.
// Neither call is retried; a single failure aborts the run with no
// partial secret set applied.
var (
	// ErrAuthFailed indicates the machine identity could not be exchanged
	// for an access token.
	ErrAuthFailed = errors.New("secrets manager authentication failed")

	// ErrFetchFailed indicates the secret export call failed or returned
	// output that could not be parsed.
	ErrFetchFailed = errors.New("secrets manager fetch failed")
)

// Usage errors indicate the invocation itself is malformed.
var (
	// ErrNoCommand indicates no target command followed the -- delimiter.
	ErrNoCommand = errors.New("no command specified after '--'")
)
