//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// goose is managed through the go.mod tool directive and used for
// schema migrations (see migrations/).
