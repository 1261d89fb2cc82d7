package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enerflo/infisical-run/internal/env"
	kerrors "github.com/enerflo/infisical-run/internal/errors"
	"github.com/enerflo/infisical-run/internal/launcher"
	"github.com/enerflo/infisical-run/internal/secrets"
	"github.com/enerflo/infisical-run/internal/ui"
	"github.com/enerflo/infisical-run/internal/workflows"
)

func runE(cmd *cobra.Command, args []string) error {
	command, err := commandFromArgs(args, cmd.ArgsLenAtDash())
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.EnsureNewline(usageMessage(err)))
		return err
	}

	if chdir != "" {
		Logger.Debugf("Changing working directory to %s", chdir)
		if err := os.Chdir(chdir); err != nil {
			return Logger.ErrorfAndReturn("failed to change directory: %v", err)
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to get working directory: %v", err)
	}

	base := env.Capture()
	client := &secrets.CLIClient{Domain: domain, Logger: Logger}

	spinner, cleanup := startSpinner("Resolving environment...", verbose)

	result, err := workflows.Run(cmd.Context(), workflows.RunOptions{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Token:        token,
		ProjectID:    projectID,
		Environment:  environment,
		EnvFiles:     envFiles,
		Force:        force,
		SkipSecrets:  noSecrets,
		SkipDotenv:   noDotenv,
		KeepShellEnv: !noKeepShellEnv,
		Dir:          dir,
		Base:         base,
		Client:       client,
		Logger:       Logger,
	})
	if err != nil {
		spinner.FinalMSG = fatalMessage(err)
		cleanup()
		return err
	}

	if result.Reentrant {
		Logger.Debugf("Nested invocation, launching with inherited environment")
	} else if result.SecretsFetched {
		Logger.Infof("Resolved environment for project %s (%s)", result.ProjectID, result.Environment)
	}

	// Stop the spinner before the exec handoff: from here the terminal
	// belongs to the child.
	cleanup()

	if err := launcher.Exec(command, result.Env.Environ()); err != nil {
		return Logger.ErrorfAndReturn("failed to launch %s: %v", command[0], err)
	}
	return nil
}

// commandFromArgs extracts the target command from the arguments after
// the -- delimiter. lenAtDash is cobra's ArgsLenAtDash: the number of
// positional arguments before the dash, or -1 when no dash was given.
func commandFromArgs(args []string, lenAtDash int) ([]string, error) {
	if lenAtDash == -1 {
		return nil, fmt.Errorf("%w: missing '--' delimiter", kerrors.ErrNoCommand)
	}
	if lenAtDash > 0 {
		return nil, fmt.Errorf("unexpected argument %q before '--'", args[0])
	}
	if len(args) == 0 {
		return nil, kerrors.ErrNoCommand
	}
	return args, nil
}

// usageMessage renders a usage error.
func usageMessage(err error) string {
	return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
		ui.Info.Sprint("→") + " Usage: " + ui.Code.Sprint("infisical-run [flags] -- command [args...]")
}

// fatalMessage maps a resolution error to a user-facing message in the
// spinner's final output.
func fatalMessage(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrMissingCredentials):
		return ui.Error.Sprint("✗") + " Missing machine identity credentials\n" +
			ui.Info.Sprint("→") + " Set " + ui.Code.Sprint("INFISICAL_CLIENT_ID") + " and " + ui.Code.Sprint("INFISICAL_CLIENT_SECRET") + ",\n" +
			"   pass " + ui.Flag.Sprint("--client-id") + "/" + ui.Flag.Sprint("--client-secret") + ", or provide a token via " + ui.Flag.Sprint("--token") + "\n" +
			ui.Info.Sprint("→") + " Or skip the secrets manager with " + ui.Flag.Sprint("--no-secrets")

	case errors.Is(err, kerrors.ErrMissingProjectID):
		return ui.Error.Sprint("✗") + " No project id could be resolved\n" +
			ui.Info.Sprint("→") + " Pass " + ui.Flag.Sprint("--project-id") + ", set " + ui.Code.Sprint("INFISICAL_PROJECT_ID") + ",\n" +
			"   or add a " + ui.Code.Sprint("workspaceId") + " field to " + ui.Path.Sprint(".infisical.json")

	case errors.Is(err, kerrors.ErrDotenvFileNotFound):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Files named with " + ui.Flag.Sprint("--env-file") + " must exist; no command was launched"

	case errors.Is(err, kerrors.ErrAuthFailed):
		return ui.Error.Sprint("✗") + " Authentication with the secrets manager failed\n" +
			ui.Info.Sprint("→") + " " + ui.Muted.Sprint(err.Error())

	case errors.Is(err, kerrors.ErrFetchFailed):
		return ui.Error.Sprint("✗") + " Fetching secrets failed\n" +
			ui.Info.Sprint("→") + " " + ui.Muted.Sprint(err.Error())

	default:
		return ui.Error.Sprint("✗") + " " + err.Error()
	}
}
