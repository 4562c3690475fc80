package dispatch

import (
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/conn-castle/weget/internal/artifact"
)

type fakeBackend struct {
	runs      [][]string
	runCode   int
	runErr    error
	queries   [][]string
	report    string
	queryCode int
	queryErr  error
}

func (f *fakeBackend) Run(_ context.Context, args ...string) (int, error) {
	f.runs = append(f.runs, args)
	return f.runCode, f.runErr
}

func (f *fakeBackend) Output(_ context.Context, args ...string) (int, string, error) {
	f.queries = append(f.queries, args)
	return f.queryCode, f.report, f.queryErr
}

func (f *fakeBackend) Argv(args ...string) []string {
	return append([]string{"winget"}, args...)
}

// fakeLauncher fails launches whose command line mentions a package in failFor.
type fakeLauncher struct {
	launched [][]string
	failFor  map[string]error
}

func (f *fakeLauncher) Launch(argv []string) error {
	f.launched = append(f.launched, argv)
	for _, arg := range argv {
		if err, ok := f.failFor[arg]; ok {
			return err
		}
	}
	return nil
}

type processCall struct {
	packageID string
	opts      artifact.Options
}

type fakeArtifacts struct {
	calls []processCall
	err   error
}

func (f *fakeArtifacts) Process(_ context.Context, packageID string, opts artifact.Options) (artifact.Report, error) {
	f.calls = append(f.calls, processCall{packageID: packageID, opts: opts})
	return artifact.Report{}, f.err
}

type harness struct {
	backend   *fakeBackend
	launcher  *fakeLauncher
	artifacts *fakeArtifacts
	out       strings.Builder
	errOut    strings.Builder
	d         *Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	h := &harness{
		backend:   &fakeBackend{},
		launcher:  &fakeLauncher{failFor: map[string]error{}},
		artifacts: &fakeArtifacts{},
	}
	h.d = &Dispatcher{
		Backend:         h.backend,
		Launcher:        h.launcher,
		Artifacts:       h.artifacts,
		UpgradeListArgs: []string{"upgrade"},
		SelfPath:        "/usr/local/bin/weget",
		Out:             &h.out,
		Err:             &h.errOut,
	}
	return h
}
