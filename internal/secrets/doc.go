// Package secrets defines the secrets-manager client consumed by the
// resolver and its production implementation.
//
// The Client interface exposes exactly the two operations the resolver
// needs: exchanging a machine identity for a token, and fetching the flat
// secret set for a (project, environment) pair. Keeping it an interface
// lets the resolver's merge logic be tested against a fake with no
// network or external binary involved.
//
// CLIClient is the real implementation. It treats the Infisical CLI as an
// opaque external process: one login call, one export call, no retries,
// and any failure is returned as ErrAuthFailed or ErrFetchFailed with the
// CLI's stderr attached.
package secrets
