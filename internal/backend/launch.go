package backend

import (
	"errors"
	"fmt"

	"github.com/conn-castle/weget/internal/config"
	"github.com/conn-castle/weget/internal/messages"
)

// Launcher starts a process that outlives weget. Only the start is observed;
// the process's own outcome is never collected.
type Launcher interface {
	Launch(argv []string) error
}

// DetachedLauncher opens argv in a new console window on Windows and in a new
// session elsewhere.
type DetachedLauncher struct {
	Window config.WindowConfig
}

// NewLauncher returns a DetachedLauncher using the window settings in cfg.
func NewLauncher(cfg config.WindowConfig) DetachedLauncher {
	return DetachedLauncher{Window: cfg}
}

// Launch starts argv and returns as soon as the process exists.
func (l DetachedLauncher) Launch(argv []string) error {
	if len(argv) == 0 {
		return errors.New(messages.LaunchEmptyCommand)
	}
	cmd := l.command(argv)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf(messages.LaunchFailedFmt, argv[0], err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf(messages.LaunchReleaseFmt, argv[0], err)
	}
	return nil
}
