//go:build unix

package launcher

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process with argv[0], handing it the given
// environment. Only returns on error: after a successful exec this
// process image is gone and the child's exit code is the caller's.
func Exec(argv []string, environ []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("finding %s: %w", argv[0], err)
	}

	if err := unix.Exec(path, argv, environ); err != nil {
		return fmt.Errorf("executing %s: %w", path, err)
	}
	return nil
}
