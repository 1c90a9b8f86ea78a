// SPDX-License-Identifier: GPL-3.0-or-later

package sebyvo

import (
	"strings"
)

// ParseListing extracts storage element identifiers from the query tool's
// line-oriented output for one VO. Each non-blank line is a colon-delimited
// record; the identifier is the trimmed remainder after the first colon.
// Blank lines and lines without a colon are skipped. No deduplication is
// performed: repeated identifiers repeat in the output, mirroring the tool's
// raw emission.
func ParseListing(lines []string) []string {
	var ids []string

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		_, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		ids = append(ids, strings.TrimSpace(rest))
	}

	return ids
}
