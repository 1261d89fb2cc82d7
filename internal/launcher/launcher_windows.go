//go:build !unix

package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Exec emulates process replacement on platforms without execve: it runs
// the command with inherited stdio and exits with the child's exit code.
// Only returns on launch failure.
func Exec(argv []string, environ []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("executing %s: %w", argv[0], err)
	}
	os.Exit(0)
	return nil
}
