//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools are pinned in the go.mod tool block:
// - github.com/matryer/moq (mocks for service dependencies, see go:generate lines)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migrations; cmd/migrate embeds them)
