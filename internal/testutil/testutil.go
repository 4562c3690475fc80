// Package testutil holds helpers shared by weget tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Stub describes a shell stub that stands in for the backend executable.
type Stub struct {
	// Stdout is printed verbatim on every invocation.
	Stdout string
	// Exit is the exit status of every invocation.
	Exit int
	// LogPath, when set, receives one line per invocation holding the space-joined arguments.
	LogPath string
}

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteScriptStub(t, dir, name, Stub{Exit: exitCode})
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	content := fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg)
	writeExecutable(t, filepath.Join(dir, name), content)
}

// WriteScriptStub writes an executable shell stub that behaves as described by stub.
// It returns the stub path.
func WriteScriptStub(t *testing.T, dir string, name string, stub Stub) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	if stub.LogPath != "" {
		fmt.Fprintf(&b, "printf '%%s\\n' \"$*\" >> '%s'\n", stub.LogPath)
	}
	if stub.Stdout != "" {
		// printf is a shell builtin, so the stub works with PATH limited to its own directory.
		quoted := strings.ReplaceAll(strings.TrimSuffix(stub.Stdout, "\n"), "'", `'\''`)
		fmt.Fprintf(&b, "printf '%%s\\n' '%s'\n", quoted)
	}
	fmt.Fprintf(&b, "exit %d\n", stub.Exit)
	path := filepath.Join(dir, name)
	writeExecutable(t, path, b.String())
	return path
}

// ReadLog returns the invocations recorded by a stub with LogPath set.
// A missing log means the stub never ran and yields no lines.
func ReadLog(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read stub log: %v", err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func writeExecutable(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}
