package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		want         Descriptor
		wantWarnings int
	}{
		{
			name: "install several packages",
			args: []string{"install", "Git.Git", "Microsoft.Edge"},
			want: Descriptor{Verb: VerbInstall, Packages: []string{"Git.Git", "Microsoft.Edge"}},
		},
		{
			name: "verb is lower-cased",
			args: []string{"DOWNLOAD", "Git.Git"},
			want: Descriptor{Verb: VerbDownload, Packages: []string{"Git.Git"}},
		},
		{
			name: "download flags in any order",
			args: []string{"download", "-o", "out", "Git.Git", "--archive"},
			want: Descriptor{Verb: VerbDownload, Packages: []string{"Git.Git"}, OutputPath: "out", Archive: true},
		},
		{
			name: "download run long form",
			args: []string{"download", "Git.Git", "--run", "--output", "dir"},
			want: Descriptor{Verb: VerbDownload, Packages: []string{"Git.Git"}, OutputPath: "dir", Run: true},
		},
		{
			name:         "archive demotes run",
			args:         []string{"download", "Git.Git", "-r", "-a"},
			want:         Descriptor{Verb: VerbDownload, Packages: []string{"Git.Git"}, Archive: true},
			wantWarnings: 1,
		},
		{
			name: "upgrade short all",
			args: []string{"upgrade", "-a"},
			want: Descriptor{Verb: VerbUpgrade, Packages: []string{}, UpgradeAll: true},
		},
		{
			name: "upgrade long all",
			args: []string{"upgrade", "--all"},
			want: Descriptor{Verb: VerbUpgrade, Packages: []string{}, UpgradeAll: true},
		},
		{
			name: "output accepted for any verb at parse time",
			args: []string{"install", "Git.Git", "-o", "dir"},
			want: Descriptor{Verb: VerbInstall, Packages: []string{"Git.Git"}, OutputPath: "dir"},
		},
		{
			name: "separator forwards the rest",
			args: []string{"install", "Git.Git", "--", "--silent", "-a"},
			want: Descriptor{Verb: VerbInstall, Packages: []string{"Git.Git"}, Extra: []string{"--silent", "-a"}},
		},
		{
			name: "passthrough verb",
			args: []string{"search", "vscode"},
			want: Descriptor{Verb: "search", Packages: []string{"vscode"}},
		},
		{
			name: "help token becomes the verb",
			args: []string{"-h"},
			want: Descriptor{Verb: "-h", Packages: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings, err := Parse(tt.args)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Len(t, warnings, tt.wantWarnings)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "output without value", args: []string{"download", "Git.Git", "-o"}, wantMsg: "-o/--output"},
		{name: "archive outside download", args: []string{"install", "Git.Git", "--archive"}, wantMsg: "--archive"},
		{name: "run outside download", args: []string{"upgrade", "Git.Git", "-r"}, wantMsg: "-r"},
		{name: "all outside upgrade", args: []string{"install", "--all"}, wantMsg: "--all"},
		{name: "short all outside upgrade", args: []string{"search", "-a"}, wantMsg: "-a"},
		{name: "unknown flag", args: []string{"download", "Git.Git", "--zip"}, wantMsg: "--zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.args)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrUsage))
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseNoArguments(t *testing.T) {
	_, _, err := Parse(nil)
	require.ErrorIs(t, err, ErrNoArguments)
	require.False(t, errors.Is(err, ErrUsage))
}

func TestArchiveRunWarningText(t *testing.T) {
	got, warnings, err := Parse([]string{"download", "X", "--archive", "--run"})
	require.NoError(t, err)
	require.False(t, got.Run)
	require.True(t, got.Archive)
	require.Equal(t, []string{"--run is ignored when --archive is used. Only archiving will be performed."}, warnings)
}

func TestVerb(t *testing.T) {
	require.True(t, VerbInstall.BatchCapable())
	require.True(t, VerbUpgrade.BatchCapable())
	require.True(t, VerbDownload.BatchCapable())
	require.False(t, Verb("search").BatchCapable())
	require.Equal(t, "Downloading", VerbDownload.Label())
	require.Equal(t, "search", Verb("search").Label())
}
