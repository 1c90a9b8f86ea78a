// SPDX-License-Identifier: GPL-3.0-or-later

// Package report defines the contract shared by the site reports.
package report

import (
	"context"
	"errors"
)

// Failure kinds surfaced by report generation, wrapped with %w.
var (
	// ErrQueryFailure means a directory or tool query did not return usable data.
	ErrQueryFailure = errors.New("query failure")

	// ErrQueryTimeout means a query did not complete within the configured timeout.
	ErrQueryTimeout = errors.New("query timeout")
)

// Reporter produces one human-readable report.
type Reporter interface {
	Name() string
	Init() error
	Generate(ctx context.Context) (string, error)
}
