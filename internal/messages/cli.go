package messages

// CLI messages for the root command, usage text, and argument errors.
const (
	// RootUse is the CLI command name.
	RootUse = "weget"
	// RootShort is the short description for the root command.
	RootShort = "winget enhancement wrapper"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// UsageTemplate is the cobra help template printed when weget runs without arguments.
	UsageTemplate = `{{.Name}} {{.Version}} - winget enhancement wrapper

Features:
  • Multi-package install/upgrade/download operations (each in a new window)
  • Upgrade every package with a pending update (-a, --all)  | "weget upgrade" exclusive
  • Custom download paths (-o, --output)                      | "weget download" exclusive
  • Archive downloaded installers (-a, --archive)             | "weget download" exclusive
  • Run installer after download (-r, --run)                  | "weget download" exclusive
  • Forward extra winget arguments after --

Examples:
  weget install pkg1 pkg2 pkg3
  weget upgrade --all
  weget download pkg1 -o C:\path\to\dir
  weget download pkg1 -a
  weget download pkg1 -r
  weget install pkg1 -- --silent

Info:
  To get winget help, type "weget -h" or other common help argument.
`

	// ErrorFmt prefixes fatal errors printed before exiting.
	ErrorFmt   = "Error: %v"
	WarningFmt = "Warning: %s"

	ArgsUsageError         = "invalid arguments"
	ArgsNoArguments        = "no arguments"
	ArgsMissingOutputValue = "output path not specified after -o/--output"
	ArgsUnknownOptionFmt   = "unknown option: %s"
	ArgsArchiveRunConflict = "--run is ignored when --archive is used. Only archiving will be performed."
)
