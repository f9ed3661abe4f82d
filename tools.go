//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through `go generate` from contract/contract.go;
// importing it here keeps its version pinned in go.mod.
package daily_pick

import (
	_ "go.uber.org/mock/mockgen"
)
