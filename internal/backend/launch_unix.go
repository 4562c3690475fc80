//go:build !windows

package backend

import (
	"os/exec"
	"syscall"
)

// command runs argv directly in its own session with no controlling terminal.
func (l DetachedLauncher) command(argv []string) *exec.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd
}
