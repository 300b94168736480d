//go:build windows

package executil

import "os/exec"

// notFoundExitCode is what cmd.exe returns for an unknown command.
const notFoundExitCode = 9009

func shellCommand(line string) (string, []string) {
	return "cmd", []string{"/C", line}
}

func configureProcess(c *exec.Cmd) {
	c.Cancel = func() error {
		if c.Process == nil {
			return nil
		}
		return c.Process.Kill()
	}
}
