// SPDX-License-Identifier: GPL-3.0-or-later

package runcmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/gridcf/gipreport/logger"
)

const stderrLimit = 8 << 10 // 8 KiB

// Run executes binPath with a timeout. No shell is involved; args are passed separately.
// Returns stdout. On error, wraps the original error and includes a trimmed stderr snippet.
func Run(log *logger.Logger, timeout time.Duration, binPath string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ex := exec.CommandContext(ctx, binPath, args...)

	log.Debugf("executing: %v", ex)

	var stderr bytes.Buffer
	ex.Stderr = &stderr

	out, err := ex.Output()
	if err != nil {
		s := stderr.String()
		if len(s) > stderrLimit {
			s = s[:stderrLimit] + "… (truncated)"
		}
		// Normalize context-related errors so callers can errors.Is(..., context.DeadlineExceeded)
		if ctx.Err() != nil {
			err = ctx.Err()
		}

		return out, fmt.Errorf("%v: %w (stderr: %s)", ex, err, strings.TrimSpace(s))
	}

	return out, nil
}
