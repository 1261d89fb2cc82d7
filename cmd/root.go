package cmd

import (
	logger "github.com/enerflo/infisical-run/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	clientID       string
	clientSecret   string
	token          string
	projectID      string
	environment    string
	chdir          string
	envFiles       []string
	domain         string
	force          bool
	noSecrets      bool
	noDotenv       bool
	noKeepShellEnv bool

	RootCmd = &cobra.Command{
		Use:   "infisical-run [flags] -- command [args...]",
		Short: "Run a command with its environment resolved from Infisical and dotenv files",
		Long: `Resolves a process environment from layered sources before launching a
command: the inherited shell environment, the default .env file, secrets
fetched from Infisical, and any extra dotenv files, merged in a fixed
precedence order.

Precedence (highest first):
  1. shell variables (unless --no-keep-shell-env)
  2. extra --env-file files, later files winning over earlier
  3. the default .env file (reapplied after the secrets merge)
  4. Infisical secrets

Credentials come from flags or the environment (INFISICAL_TOKEN, or
INFISICAL_CLIENT_ID and INFISICAL_CLIENT_SECRET); the .env file may also
carry them. The project is resolved from --project-id, INFISICAL_PROJECT_ID,
or the workspaceId field of .infisical.json.

Everything after -- is the command to run; the delimiter is mandatory.
On success infisical-run replaces itself with the command, so the exit
code is the command's own.

Examples:
  # Run a dev server with secrets from the project's dev environment
  infisical-run -- npm run dev

  # Explicit project and environment, plus a local override file
  infisical-run --project-id 05c3... --env prod --env-file .env.prod -- ./serve

  # Skip the secrets manager entirely
  infisical-run --no-secrets -- make test`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing infisical-run with verbose=%t, debug=%t", verbose, debug)
		},
		RunE: runE,
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.Flags().StringVar(&clientID, "client-id", "", "machine identity client id (env: INFISICAL_CLIENT_ID)")
	RootCmd.Flags().StringVar(&clientSecret, "client-secret", "", "machine identity client secret (env: INFISICAL_CLIENT_SECRET)")
	RootCmd.Flags().StringVar(&token, "token", "", "pre-obtained access token, skips authentication (env: INFISICAL_TOKEN)")
	RootCmd.Flags().StringVar(&projectID, "project-id", "", "project id (env: INFISICAL_PROJECT_ID, or workspaceId in .infisical.json)")
	RootCmd.Flags().StringVar(&environment, "env", "", "environment slug (env: INFISICAL_ENV; default \"dev\")")
	RootCmd.Flags().StringVarP(&chdir, "chdir", "C", "", "change to this directory before resolving")
	RootCmd.Flags().StringArrayVar(&envFiles, "env-file", nil, "extra dotenv file, repeatable, later files win (must exist)")
	RootCmd.Flags().StringVar(&domain, "domain", "", "self-hosted Infisical instance to talk to")
	RootCmd.Flags().BoolVar(&force, "force", false, "fetch secrets even when an already-loaded indicator is set")
	RootCmd.Flags().BoolVar(&noSecrets, "no-secrets", false, "skip the secrets manager entirely")
	RootCmd.Flags().BoolVar(&noDotenv, "no-dotenv", false, "skip the default .env file")
	RootCmd.Flags().BoolVar(&noKeepShellEnv, "no-keep-shell-env", false, "let dotenv and secret values override shell variables")
}
