// SPDX-License-Identifier: GPL-3.0-or-later

// Package ceusage reports the availability and per-VO usage of every
// Computing Element a site publishes to the information directory.
package ceusage

import (
	"context"
	"errors"
	"time"

	"github.com/gridcf/gipreport/logger"
	"github.com/gridcf/gipreport/pkg/confopt"
)

func New() *Reporter {
	return &Reporter{
		Config: Config{
			URL:     "ldap://is.grid.iu.edu:2170",
			Timeout: confopt.Duration(time.Second * 5),
		},

		newConn: newLdapConn,
	}
}

type Config struct {
	URL     string           `yaml:"url" json:"url"`
	Site    string           `yaml:"site" json:"site"`
	Timeout confopt.Duration `yaml:"timeout,omitempty" json:"timeout"`
	Strict  bool             `yaml:"strict,omitempty" json:"strict"`
}

type Reporter struct {
	*logger.Logger
	Config `yaml:",inline" json:""`

	newConn func(Config) ldapConn
}

func (r *Reporter) Name() string { return "ceusage/" + r.Site }

func (r *Reporter) Init() error {
	if r.URL == "" {
		return errors.New("empty directory url")
	}
	if r.Site == "" {
		return errors.New("empty site name")
	}

	return nil
}

// Generate queries the site subtree, joins VO views to their CEs and renders
// one text block per CE. Any missing required attribute fails the whole
// report; there is no partial output.
func (r *Reporter) Generate(ctx context.Context) (string, error) {
	groups, err := r.collect(ctx)
	if err != nil {
		return "", err
	}

	return renderUsage(groups)
}
