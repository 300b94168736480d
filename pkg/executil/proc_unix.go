//go:build !windows

package executil

import (
	"os/exec"
	"syscall"
)

// notFoundExitCode is what POSIX shells return for an unknown command.
const notFoundExitCode = 127

func shellCommand(line string) (string, []string) {
	return "sh", []string{"-c", line}
}

// configureProcess puts the shell in its own process group and makes
// cancellation kill the group rather than only the shell.
func configureProcess(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		if c.Process == nil {
			return nil
		}
		return syscall.Kill(-c.Process.Pid, syscall.SIGKILL)
	}
}
