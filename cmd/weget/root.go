package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/weget/internal/artifact"
	"github.com/conn-castle/weget/internal/backend"
	"github.com/conn-castle/weget/internal/command"
	"github.com/conn-castle/weget/internal/config"
	"github.com/conn-castle/weget/internal/dispatch"
	"github.com/conn-castle/weget/internal/messages"
)

// Test seams.
var (
	loadConfig   = config.Default
	goos         = runtime.GOOS
	downloadsDir = artifact.DefaultDownloadsDir
	selfPath     = os.Executable
	newLauncher  = func(cfg config.WindowConfig) backend.Launcher { return backend.NewLauncher(cfg) }
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.RootUse,
		Short: messages.RootShort,
		// Every token belongs to weget's own scanner or to the backend.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runRoot,
	}
	cmd.SetHelpTemplate(messages.UsageTemplate)
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Platform.Supports(goos) {
		return fmt.Errorf("%w: "+messages.BackendWrongPlatformFmt, backend.ErrUnavailable, cfg.Platform.PlatformList())
	}
	client := backend.New(cfg.Backend)
	client.Stdin = cmd.InOrStdin()
	client.Stdout = cmd.OutOrStdout()
	client.Stderr = cmd.ErrOrStderr()
	if err := client.Probe(cmd.Context()); err != nil {
		return err
	}

	desc, warnings, err := command.Parse(args)
	if errors.Is(err, command.ErrNoArguments) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		printWarning(cmd.ErrOrStderr(), warning)
	}

	downloads, err := downloadsDir(cfg.Downloads.DirName)
	if err != nil {
		return err
	}
	// A missing executable path only matters for batch downloads, so the error travels with the dispatcher.
	self, selfErr := selfPath()
	dispatcher := &dispatch.Dispatcher{
		Backend:         client,
		Launcher:        newLauncher(cfg.Window),
		Artifacts:       artifact.NewManager(cfg.Installers, downloads, cmd.OutOrStdout()),
		UpgradeListArgs: cfg.Backend.UpgradeListArgs,
		SelfPath:        self,
		SelfPathErr:     selfErr,
		Out:             cmd.OutOrStdout(),
		Err:             cmd.ErrOrStderr(),
	}
	summary, err := dispatcher.Run(cmd.Context(), desc)
	if err != nil {
		return err
	}
	if code := summary.ExitCode(); code != 0 {
		return &SilentExitError{Code: code}
	}
	return nil
}

func printWarning(out io.Writer, msg string) {
	warnColor := color.New(color.FgYellow)
	_, _ = warnColor.Fprintln(out, fmt.Sprintf(messages.WarningFmt, msg))
}
