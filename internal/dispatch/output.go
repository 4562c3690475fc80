package dispatch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/weget/internal/messages"
)

// Test seams.
var (
	absPath  = filepath.Abs
	mkdirAll = os.MkdirAll
)

// prepareOutputDir expands a leading ~, makes path absolute, and creates it with parents.
func prepareOutputDir(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.DispatchResolveOutputFmt, path, err)
	}
	abs, err := absPath(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.DispatchResolveOutputFmt, path, err)
	}
	if err := mkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf(messages.DispatchCreateOutputFmt, abs, err)
	}
	return abs, nil
}

func (d *Dispatcher) warn(msg string) {
	if d.Err == nil {
		return
	}
	_, _ = color.New(color.FgYellow).Fprintln(d.Err, fmt.Sprintf(messages.WarningFmt, msg))
}

func (d *Dispatcher) fail(msg string) {
	if d.Err == nil {
		return
	}
	_, _ = fmt.Fprintln(d.Err, color.RedString("%s", msg))
}
