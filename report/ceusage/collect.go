// SPDX-License-Identifier: GPL-3.0-or-later

package ceusage

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/go-ldap/ldap/v3"

	"github.com/gridcf/gipreport/pkg/glue"
	"github.com/gridcf/gipreport/report"
)

const searchFilter = "(|(objectClass=GlueCE)(objectClass=GlueVOView))"

func (r *Reporter) collect(_ context.Context) ([]*glue.CEGroup, error) {
	conn := r.newConn(r.Config)

	if err := conn.connect(); err != nil {
		return nil, fmt.Errorf("%w: connecting to '%s': %v", queryErr(err), r.URL, err)
	}
	defer func() {
		if err := conn.disconnect(); err != nil {
			r.Warningf("error on disconnect: %v", err)
		}
	}()

	req := newUsageSearchRequest(r.Site)

	res, err := conn.search(req)
	if err != nil {
		return nil, fmt.Errorf("%w: searching '%s': %v", queryErr(err), req.BaseDN, err)
	}

	entries := make([]*glue.Entry, 0, len(res.Entries))
	for _, le := range res.Entries {
		entries = append(entries, glue.FromLDAPEntry(le))
	}

	r.Debugf("site '%s': received %d entries", r.Site, len(entries))

	correlator := glue.Correlator{Logger: r.Logger, WarnOrphans: r.Strict}

	return correlator.Correlate(entries)
}

// queryErr picks the failure kind: dialer and search deadline expiry counts
// as a timeout, anything else as a plain query failure.
func queryErr(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return report.ErrQueryTimeout
	}
	return report.ErrQueryFailure
}

func newUsageSearchRequest(site string) *ldap.SearchRequest {
	base := fmt.Sprintf("mds-vo-name=%s,mds-vo-name=local,o=grid", site)

	return ldap.NewSearchRequest(
		base,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		0,
		false,
		searchFilter,
		nil,
		nil,
	)
}
