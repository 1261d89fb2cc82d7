// Package errors provides typed error values for infisical-run.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Configuration errors: required inputs unresolvable (ErrMissingCredentials, ErrMissingProjectID)
//   - Resource errors: explicitly named files missing (ErrDotenvFileNotFound)
//   - External service errors: secrets manager failures (ErrAuthFailed, ErrFetchFailed)
//   - Usage errors: malformed invocation (ErrNoCommand)
//
// # Usage
//
// Return errors from internal packages:
//
//	if clientID == "" || clientSecret == "" {
//	    return nil, kerrors.ErrMissingCredentials
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Run(ctx, opts)
//	if errors.Is(err, kerrors.ErrMissingProjectID) {
//	    // Show user-friendly message pointing at .infisical.json
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s", kerrors.ErrDotenvFileNotFound, path)
package errors
