package secrets

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"

	"github.com/enerflo/infisical-run/internal/env"
	kerrors "github.com/enerflo/infisical-run/internal/errors"
	logger "github.com/enerflo/infisical-run/internal/logging"
)

// DefaultBinary is the secrets-manager CLI invoked by CLIClient.
const DefaultBinary = "infisical"

// CLIClient implements Client by shelling out to the Infisical CLI.
// The CLI handles transport, retries, and response validation; this
// client only builds invocations and parses their output.
type CLIClient struct {
	// Binary is the executable to invoke. Defaults to DefaultBinary.
	Binary string

	// Domain optionally points the CLI at a self-hosted instance.
	Domain string

	Logger logger.Logger
}

func (c *CLIClient) binary() string {
	if c.Binary != "" {
		return c.Binary
	}
	return DefaultBinary
}

// Authenticate exchanges the machine identity for an access token via
// `infisical login --method=universal-auth --plain`.
func (c *CLIClient) Authenticate(ctx context.Context, clientID, clientSecret string) (string, error) {
	args := c.authArgs(clientID, clientSecret)
	c.Logger.Debugf("Authenticating with %s using client id %s", c.binary(), clientID)

	out, err := c.run(ctx, args)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrAuthFailed, err)
	}

	// With --plain the token is the only thing on stdout.
	token := strings.TrimSpace(out)
	if token == "" {
		return "", fmt.Errorf("%w: empty token from %s login", kerrors.ErrAuthFailed, c.binary())
	}
	return token, nil
}

// FetchSecrets exports the secret set for a project and environment via
// `infisical export --format=dotenv` and parses it into a variable set.
func (c *CLIClient) FetchSecrets(ctx context.Context, token, projectID, environment string) (env.Set, error) {
	args := c.exportArgs(token, projectID, environment)
	c.Logger.Debugf("Fetching secrets for project %s environment %s", projectID, environment)

	out, err := c.run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrFetchFailed, err)
	}

	vars, err := godotenv.Unmarshal(out)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing export output: %v", kerrors.ErrFetchFailed, err)
	}

	c.Logger.Infof("Fetched %d secret(s) from %s", len(vars), c.binary())
	return env.Set(vars), nil
}

func (c *CLIClient) authArgs(clientID, clientSecret string) []string {
	args := []string{
		"login",
		"--method=universal-auth",
		"--client-id", clientID,
		"--client-secret", clientSecret,
		"--plain",
		"--silent",
	}
	if c.Domain != "" {
		args = append(args, "--domain", c.Domain)
	}
	return args
}

func (c *CLIClient) exportArgs(token, projectID, environment string) []string {
	args := []string{
		"export",
		"--format", "dotenv",
		"--token", token,
		"--projectId", projectID,
		"--env", environment,
	}
	if c.Domain != "" {
		args = append(args, "--domain", c.Domain)
	}
	return args
}

// run executes the CLI and returns its stdout. Stderr is folded into the
// error so auth and fetch failures carry the CLI's own diagnostics.
func (c *CLIClient) run(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("%s %s: %v", c.binary(), args[0], err)
		}
		return "", fmt.Errorf("%s %s: %v: %s", c.binary(), args[0], err, msg)
	}
	return stdout.String(), nil
}
