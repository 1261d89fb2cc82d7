package secrets

import (
	"context"

	"github.com/enerflo/infisical-run/internal/env"
)

// Client is the secrets-manager capability consumed by the resolver.
// Both operations are opaque, potentially slow, network-bound calls.
// The resolver imposes no retry policy: a single failure is fatal.
type Client interface {
	// Authenticate exchanges a machine identity for an access token.
	Authenticate(ctx context.Context, clientID, clientSecret string) (string, error)

	// FetchSecrets retrieves the flat secret set for a project and
	// environment using a previously obtained token.
	FetchSecrets(ctx context.Context, token, projectID, environment string) (env.Set, error)
}
