//go:build windows

package backend

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// command wraps argv in the configured shell so the new console closes on
// success and stays open on failure.
func (l DetachedLauncher) command(argv []string) *exec.Cmd {
	line := windows.ComposeCommandLine(argv)
	cmd := exec.Command(l.Window.Shell)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:       windows.EscapeArg(l.Window.Shell) + " " + l.Window.ShellArgs(line),
		CreationFlags: windows.CREATE_NEW_CONSOLE,
	}
	return cmd
}
