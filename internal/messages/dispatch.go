package messages

// Dispatch and download post-processing messages.
const (
	DispatchOutputDownloadOnly    = "output path can only be specified for the download command"
	DispatchPostProcessingIgnored = "--archive and --run need a package to act on; forwarding to winget without them"
	DispatchBackendRequired       = "dispatcher backend is required"
	DispatchLauncherRequired      = "dispatcher launcher is required"
	DispatchSelfPathRequired      = "weget executable path is required to launch batch downloads"
	DispatchSelfPathFmt           = "weget executable path is required to launch batch downloads: %w"
	DispatchArtifactsRequired     = "dispatcher artifact manager is required"
	DispatchResolveOutputFmt      = "resolve output path %s: %w"
	DispatchCreateOutputFmt       = "create output directory %s: %w"
	DispatchBatchHeaderFmt        = "%s %d packages, each in a new window...\n"
	DispatchProgressFmt           = "[%d/%d] %s\n"
	DispatchLaunchFailedFmt       = "Failed to launch window for %s: %v"
	DispatchLaunchFailedHeader    = "Failed to launch for packages:"
	DispatchLaunchAllFailedFmt    = "Failed to launch any of the %d packages."
	DispatchFailedListItemFmt     = "- %s\n"
	DispatchPackageFailedFmt      = "Failed to %s %s"
	DispatchPackageStageFailedFmt = "Failed to %s %s (%s): %v"
	DispatchUpgradeQueryFailedFmt = "upgrade query failed: %v"
	DispatchUpgradeQueryExitFmt   = "upgrade query exited with status %d"
	DispatchUpgradeNone           = "No packages to upgrade."
	DispatchUpgradeFoundFmt       = "Found %d package(s) to upgrade.\n"

	ArtifactSystemRequired    = "artifact system is required"
	ArtifactResolveHomeFmt    = "resolve home dir: %w"
	ArtifactScanFmt           = "scan %s: %w"
	ArtifactNotFoundFmt       = "download folder not found for %s"
	ArtifactMovedFmt          = "Installer moved: %s\n"
	ArtifactMoveFmt           = "move %s to %s: %w"
	ArtifactCreateOutputFmt   = "create output directory %s: %w"
	ArtifactRemoveStaleFmt    = "remove existing %s: %w"
	ArtifactCheckDestFmt      = "check %s: %w"
	ArtifactUnsupportedEntry  = "unsupported file type %s"
	ArtifactArchivingFmt      = "Attempting to archive installer: %s\n"
	ArtifactArchivedFmt       = "Archived installer: %s\n"
	ArtifactArchiveFmt        = "archive %s: %w"
	ArtifactRemoveArchivedFmt = "remove archived folder %s: %w"
	ArtifactNoExecutableFmt   = "No executable found in %s to run.\n"
	ArtifactRunningFmt        = "Running installer: %s\n"
	ArtifactRunFmt            = "run installer %s: %w"
	ArtifactInstallerEmpty    = "installer command is empty"
	ArtifactCleanupFmt        = "remove downloaded folder %s: %w"
	ArtifactStageErrorFmt     = "%s: %v"
)
