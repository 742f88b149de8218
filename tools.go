//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into any binary.
//
//   - github.com/matryer/moq: regenerates *_mock_test.go via go generate ./...
//   - github.com/pressly/goose/v3/cmd/goose: ad-hoc work on migrations/;
//     kotobactl migrate covers the normal up/down/status flow.
