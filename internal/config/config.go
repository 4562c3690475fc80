// Package config holds the settings compiled into weget.
package config

import "strings"

// CommandPlaceholder marks where the backend command line goes in window.command_template.
const CommandPlaceholder = "{command}"

// Config is the full weget settings document.
type Config struct {
	Backend    BackendConfig    `toml:"backend"`
	Platform   PlatformConfig   `toml:"platform"`
	Downloads  DownloadsConfig  `toml:"downloads"`
	Installers InstallersConfig `toml:"installers"`
	Window     WindowConfig     `toml:"window"`
}

// BackendConfig describes the package-management executable and the queries weget issues to it.
type BackendConfig struct {
	Executable      string   `toml:"executable"`
	VersionArgs     []string `toml:"version_args"`
	UpgradeListArgs []string `toml:"upgrade_list_args"`
}

// PlatformConfig lists the operating systems (GOOS values) weget runs on.
type PlatformConfig struct {
	Supported []string `toml:"supported"`
}

// DownloadsConfig locates the folder the backend downloads into.
type DownloadsConfig struct {
	DirName string `toml:"dir_name"`
}

// InstallersConfig controls which downloaded files count as installers and how they are started.
// Launchers maps a lower-case extension to the program prefix that opens it.
type InstallersConfig struct {
	Extensions []string            `toml:"extensions"`
	Launchers  map[string][]string `toml:"launchers"`
}

// WindowConfig describes the console used for detached batch launches on Windows.
type WindowConfig struct {
	Shell           string `toml:"shell"`
	CommandTemplate string `toml:"command_template"`
}

// Supports reports whether goos is one of the supported platforms.
func (p PlatformConfig) Supports(goos string) bool {
	for _, name := range p.Supported {
		if strings.EqualFold(strings.TrimSpace(name), goos) {
			return true
		}
	}
	return false
}

// PlatformList joins the supported platforms for display.
func (p PlatformConfig) PlatformList() string {
	return strings.Join(p.Supported, ", ")
}

// ShellArgs expands the command template around commandLine.
func (w WindowConfig) ShellArgs(commandLine string) string {
	return strings.ReplaceAll(w.CommandTemplate, CommandPlaceholder, commandLine)
}
