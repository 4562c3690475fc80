//go:build tools
// +build tools

// Package tools pins the lint and test runners in go.mod.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "gotest.tools/gotestsum"
)
