// SPDX-License-Identifier: GPL-3.0-or-later

package ceusage

import (
	"net"

	"github.com/go-ldap/ldap/v3"
)

type ldapConn interface {
	connect() error
	disconnect() error
	search(*ldap.SearchRequest) (*ldap.SearchResult, error)
}

func newLdapConn(cfg Config) ldapConn {
	return &ldapClient{Config: cfg}
}

type ldapClient struct {
	Config

	conn *ldap.Conn
}

func (c *ldapClient) search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	return c.conn.Search(req)
}

func (c *ldapClient) connect() error {
	d := &net.Dialer{
		Timeout: c.Timeout.Duration(),
	}

	conn, err := ldap.DialURL(c.URL, ldap.DialWithDialer(d))
	if err != nil {
		return err
	}

	// The information directory is world-readable; no credentials involved.
	if err := conn.UnauthenticatedBind(""); err != nil {
		_ = conn.Close()
		return err
	}

	c.conn = conn

	return nil
}

func (c *ldapClient) disconnect() error {
	defer func() { c.conn = nil }()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
