package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/enerflo/infisical-run/internal/configs"
	"github.com/enerflo/infisical-run/internal/dotenv"
	"github.com/enerflo/infisical-run/internal/env"
	kerrors "github.com/enerflo/infisical-run/internal/errors"
	logger "github.com/enerflo/infisical-run/internal/logging"
	"github.com/enerflo/infisical-run/internal/secrets"
)

// RunOptions configures the run workflow. Credential and identity fields
// hold flag values only; environment-variable fallbacks are resolved
// inside the workflow against the running merge, so that values carried
// by the default dotenv file can serve as credentials.
type RunOptions struct {
	// ClientID and ClientSecret are the machine identity from flags.
	ClientID     string
	ClientSecret string

	// Token is a pre-obtained access token from flags. When present the
	// authentication exchange is skipped.
	Token string

	// ProjectID and Environment identify the secret set from flags.
	ProjectID   string
	Environment string

	// EnvFiles are extra dotenv files in ascending precedence order.
	// Each must exist.
	EnvFiles []string

	// Force fetches secrets even when an already-loaded indicator is set.
	Force bool

	// SkipSecrets skips the secrets manager entirely.
	SkipSecrets bool

	// SkipDotenv skips the default .env file (both passes).
	SkipDotenv bool

	// KeepShellEnv reapplies the shell snapshot at top precedence.
	KeepShellEnv bool

	// Dir is the working directory; the default dotenv file, relative
	// extra files, and the project config search all resolve against it.
	Dir string

	// Base is the shell-inherited environment captured at startup. It is
	// never mutated: it doubles as the shell snapshot.
	Base env.Set

	Client secrets.Client
	Logger logger.Logger
}

// RunResult contains the outcome of environment resolution.
type RunResult struct {
	// Env is the fully merged environment for the child process.
	Env env.Set

	// Reentrant reports that a parent infisical-run already resolved the
	// environment and this invocation passed it through untouched.
	Reentrant bool

	// SecretsFetched reports that the secrets manager was called.
	SecretsFetched bool

	// SecretsSkipped reports that the fetch was skipped, either by flag
	// or by an already-loaded indicator.
	SecretsSkipped bool

	// DefaultDotenvLoaded reports that the default .env file existed and
	// was applied.
	DefaultDotenvLoaded bool

	// EnvFilesLoaded is the number of extra dotenv files applied.
	EnvFilesLoaded int

	// ProjectID and Environment are the resolved identity used for the
	// fetch; empty when no fetch happened.
	ProjectID   string
	Environment string
}

// Run resolves the child environment from the layered sources.
//
// Load order is the contract: base snapshot, default dotenv (pre-auth),
// secrets, default dotenv again (so it outranks secrets), extra files in
// given order, then the shell snapshot back on top when kept. The default
// file's second pass is deliberate; extra files are loaded exactly once,
// after secrets.
//
// Returns ErrMissingCredentials, ErrMissingProjectID, or
// ErrDotenvFileNotFound for configuration and resource failures, and
// propagates client errors unchanged. On any error no result is produced:
// there is no partial-success mode.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	log := opts.Logger
	result := &RunResult{}

	// A parent invocation already did the work. Pass its environment
	// through so nested wrapping stays idempotent and the secrets
	// manager is not called twice.
	if v, ok := opts.Base.Lookup(configs.EnvChildSentinel); ok && configs.Truthy(v) {
		log.Debugf("Detected %s, skipping resolution", configs.EnvChildSentinel)
		result.Env = opts.Base.Clone()
		result.Reentrant = true
		return result, nil
	}

	merged := opts.Base.Clone()
	merged[configs.EnvChildSentinel] = "1"

	skip := opts.SkipSecrets
	if skip {
		log.Debugf("Secrets fetch disabled by flag")
	} else if !opts.Force && alreadyLoaded(opts.Base) {
		log.Infof("Secrets already loaded by surrounding tooling, skipping fetch (use --force to refetch)")
		skip = true
	}
	result.SecretsSkipped = skip

	// Pre-auth pass over the default dotenv file: its values may carry
	// the credentials used for the fetch below.
	var defaults env.Set
	if !opts.SkipDotenv {
		defaultPath := filepath.Join(opts.Dir, dotenv.DefaultFile)
		vals, found, err := dotenv.LoadOptional(defaultPath)
		if err != nil {
			return nil, err
		}
		if found {
			log.Infof("Loaded %d variable(s) from %s", len(vals), defaultPath)
		}
		defaults = vals
		result.DefaultDotenvLoaded = found
		merged.Merge(vals)
	}

	if !skip {
		if err := fetchSecrets(ctx, opts, merged, result); err != nil {
			return nil, err
		}
		// The default dotenv file regains precedence over the freshly
		// merged secrets. Without this second pass the secrets merge
		// would bury the pre-auth values.
		merged.Merge(defaults)
	}

	for _, file := range opts.EnvFiles {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(opts.Dir, path)
		}
		vals, err := dotenv.Load(path)
		if err != nil {
			return nil, err
		}
		log.Infof("Loaded %d variable(s) from %s", len(vals), path)
		merged.Merge(vals)
		result.EnvFilesLoaded++
	}

	// Shell and command-line variables win over every other source.
	if opts.KeepShellEnv {
		merged.Merge(opts.Base)
	}

	result.Env = merged
	return result, nil
}

// fetchSecrets resolves credentials and project identity, calls the
// client, and merges the fetched set into merged.
func fetchSecrets(ctx context.Context, opts RunOptions, merged env.Set, result *RunResult) error {
	log := opts.Logger

	token := firstNonEmpty(opts.Token, merged[configs.EnvToken])
	if token == "" {
		clientID := firstNonEmpty(opts.ClientID, merged[configs.EnvClientID])
		clientSecret := firstNonEmpty(opts.ClientSecret, merged[configs.EnvClientSecret])
		if clientID == "" || clientSecret == "" {
			return fmt.Errorf("%w: need --token, or both --client-id and --client-secret", kerrors.ErrMissingCredentials)
		}

		exchanged, err := opts.Client.Authenticate(ctx, clientID, clientSecret)
		if err != nil {
			return err
		}
		token = exchanged
	}

	config, err := configs.LoadProjectConfig(opts.Dir)
	if err != nil {
		return err
	}
	if config.Path != "" {
		log.Debugf("Using project config at %s", config.Path)
	}

	projectID := firstNonEmpty(opts.ProjectID, merged[configs.EnvProjectID], config.WorkspaceID)
	if projectID == "" {
		return fmt.Errorf("%w: set --project-id, %s, or workspaceId in %s", kerrors.ErrMissingProjectID, configs.EnvProjectID, configs.ProjectConfigFile)
	}

	environment := firstNonEmpty(opts.Environment, merged[configs.EnvEnvironment], config.DefaultEnvironment, configs.DefaultEnvironmentName)

	fetched, err := opts.Client.FetchSecrets(ctx, token, projectID, environment)
	if err != nil {
		return err
	}
	merged.Merge(fetched)

	// Let nested non-forced wrappers see that secrets are present.
	merged[configs.EnvSecretsLoaded] = "true"
	merged[configs.EnvLoaded] = "true"

	result.SecretsFetched = true
	result.ProjectID = projectID
	result.Environment = environment
	return nil
}

// alreadyLoaded reports whether the surrounding process tree claims the
// secrets are already present. Only the inherited environment counts;
// dotenv files cannot suppress the fetch.
func alreadyLoaded(base env.Set) bool {
	for _, name := range []string{configs.EnvSecretsLoaded, configs.EnvLoaded} {
		if v, ok := base.Lookup(name); ok && configs.Truthy(v) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
