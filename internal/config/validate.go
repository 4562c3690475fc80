package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/weget/internal/messages"
)

// Validate ensures the settings are complete and consistent.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.Backend.Executable) == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "backend.executable")
	}
	if len(c.Backend.VersionArgs) == 0 {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "backend.version_args")
	}
	if len(c.Backend.UpgradeListArgs) == 0 {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "backend.upgrade_list_args")
	}
	if len(c.Platform.Supported) == 0 {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "platform.supported")
	}
	if strings.TrimSpace(c.Downloads.DirName) == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "downloads.dir_name")
	}
	if err := c.Installers.validate(source); err != nil {
		return err
	}
	if strings.TrimSpace(c.Window.Shell) == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "window.shell")
	}
	if !strings.Contains(c.Window.CommandTemplate, CommandPlaceholder) {
		return fmt.Errorf(messages.ConfigTemplatePlaceholder, source, CommandPlaceholder)
	}
	return nil
}

func (i InstallersConfig) validate(source string) error {
	if len(i.Extensions) == 0 {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, "installers.extensions")
	}
	known := make(map[string]struct{}, len(i.Extensions))
	for _, ext := range i.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf(messages.ConfigExtensionFormatFmt, source, ext)
		}
		known[strings.ToLower(ext)] = struct{}{}
	}
	for ext, launcher := range i.Launchers {
		if _, ok := known[strings.ToLower(ext)]; !ok {
			return fmt.Errorf(messages.ConfigLauncherUnknownFmt, source, ext)
		}
		if len(launcher) == 0 || strings.TrimSpace(launcher[0]) == "" {
			return fmt.Errorf(messages.ConfigLauncherEmptyFmt, source, ext)
		}
	}
	return nil
}
