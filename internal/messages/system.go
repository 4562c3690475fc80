package messages

// Backend, settings, and platform messages.
const (
	// BackendUnavailable is the sentinel text for availability failures.
	BackendUnavailable        = "backend unavailable"
	BackendWrongPlatformFmt   = "this application requires %s"
	BackendNotAccessibleFmt   = "%s is not installed or not accessible"
	BackendNotOnPathFmt       = "%s is not installed or not in PATH"
	BackendProbeFailedFmt     = "error checking %s: %v"
	BackendStartFailedFmt     = "error running %s: %w"
	BackendExecutableRequired = "backend executable is required"

	LaunchEmptyCommand = "launch command is empty"
	LaunchFailedFmt    = "launch %s: %w"
	LaunchReleaseFmt   = "release launched process %s: %w"

	// ConfigInvalidFmt wraps TOML syntax errors in the settings document.
	ConfigInvalidFmt          = "invalid settings %s: %w"
	ConfigUnrecognizedKeysFmt = "settings %s contain unrecognized keys: %v"
	ConfigFieldRequiredFmt    = "%s: %s is required"
	ConfigExtensionFormatFmt  = "%s: installers.extensions entry %q must start with \".\""
	ConfigLauncherUnknownFmt  = "%s: installers.launchers key %q is not listed in installers.extensions"
	ConfigLauncherEmptyFmt    = "%s: installers.launchers.%q must name a program"
	ConfigTemplatePlaceholder = "%s: window.command_template must contain %s"
)
