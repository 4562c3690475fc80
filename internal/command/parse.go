// Package command turns weget's raw argument list into a Descriptor.
//
// Flags are scanned by hand rather than by cobra because their meaning depends
// on the verb (-a is --archive for download and --all for upgrade) and because
// everything unrecognized is forwarded to the backend.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/weget/internal/messages"
)

const (
	flagOutputShort  = "-o"
	flagOutput       = "--output"
	flagArchiveShort = "-a"
	flagArchive      = "--archive"
	flagRunShort     = "-r"
	flagRun          = "--run"
	flagAll          = "--all"
	argsSeparator    = "--"
)

// ErrUsage marks argument errors: malformed flags, missing values, or disallowed combinations.
var ErrUsage = errors.New(messages.ArgsUsageError)

// ErrNoArguments is returned when weget is run without arguments; callers print usage and succeed.
var ErrNoArguments = errors.New(messages.ArgsNoArguments)

// Descriptor is the parsed form of one weget invocation.
type Descriptor struct {
	Verb       Verb
	Packages   []string
	OutputPath string
	Archive    bool
	Run        bool
	UpgradeAll bool
	// Extra holds the tokens after a standalone "--", forwarded to the backend unchanged.
	Extra []string
}

// Parse interprets args, the tokens after the program name.
// It returns the descriptor and any warnings to show the user.
func Parse(args []string) (Descriptor, []string, error) {
	if len(args) == 0 {
		return Descriptor{}, nil, ErrNoArguments
	}
	desc := Descriptor{
		Verb:     Verb(strings.ToLower(args[0])),
		Packages: []string{},
	}
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == argsSeparator:
			desc.Extra = append([]string{}, rest[i+1:]...)
			i = len(rest)
		case arg == flagOutputShort || arg == flagOutput:
			if i+1 >= len(rest) {
				return Descriptor{}, nil, fmt.Errorf("%w: %s", ErrUsage, messages.ArgsMissingOutputValue)
			}
			desc.OutputPath = rest[i+1]
			i++
		case desc.Verb == VerbDownload && (arg == flagArchiveShort || arg == flagArchive):
			desc.Archive = true
		case desc.Verb == VerbDownload && (arg == flagRunShort || arg == flagRun):
			desc.Run = true
		case desc.Verb == VerbUpgrade && (arg == flagArchiveShort || arg == flagAll):
			desc.UpgradeAll = true
		case strings.HasPrefix(arg, "-"):
			return Descriptor{}, nil, fmt.Errorf("%w: "+messages.ArgsUnknownOptionFmt, ErrUsage, arg)
		default:
			desc.Packages = append(desc.Packages, arg)
		}
	}

	var warnings []string
	if desc.Archive && desc.Run {
		warnings = append(warnings, messages.ArgsArchiveRunConflict)
		desc.Run = false
	}
	return desc, warnings, nil
}

// PostProcessing reports whether a download asks for relocation, archiving, or running.
func (d Descriptor) PostProcessing() bool {
	return d.OutputPath != "" || d.Archive || d.Run
}
