// SPDX-License-Identifier: GPL-3.0-or-later

// Package sebyvo lists the Storage Elements visible to each configured VO,
// as reported by an external query tool run once per VO.
package sebyvo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gridcf/gipreport/logger"
	"github.com/gridcf/gipreport/pkg/confopt"
	"github.com/gridcf/gipreport/report"
)

func New() *Reporter {
	return &Reporter{
		Config: Config{
			BinaryPath: "lcg-infosites",
			BDII:       "is.grid.iu.edu:2170",
			VOs:        []string{"mis", "ops", "cms", "atlas"},
			Timeout:    confopt.Duration(time.Second * 10),
		},
	}
}

type Config struct {
	BinaryPath string           `yaml:"binary_path,omitempty" json:"binary_path"`
	BDII       string           `yaml:"bdii" json:"bdii"`
	VOs        []string         `yaml:"vos,omitempty" json:"vos"`
	Timeout    confopt.Duration `yaml:"timeout,omitempty" json:"timeout"`
}

type Reporter struct {
	*logger.Logger
	Config `yaml:",inline" json:""`

	exec infositesBinary
}

func (r *Reporter) Name() string { return "sebyvo" }

func (r *Reporter) Init() error {
	if err := r.validateConfig(); err != nil {
		return fmt.Errorf("config validation: %v", err)
	}

	exec, err := r.initInfositesExec()
	if err != nil {
		return fmt.Errorf("init query tool exec: %v", err)
	}
	r.exec = exec

	return nil
}

func (r *Reporter) validateConfig() error {
	if r.BinaryPath == "" {
		return errors.New("no query tool binary path specified")
	}
	if r.BDII == "" {
		return errors.New("empty directory address")
	}
	if len(r.VOs) == 0 {
		return errors.New("empty VO list")
	}
	return nil
}

// Generate runs the query tool once per configured VO, sequentially. A
// failed or timed-out VO query spoils only that VO's block; the remaining
// VOs are still attempted.
func (r *Reporter) Generate(_ context.Context) (string, error) {
	var sb strings.Builder

	for _, vo := range r.VOs {
		sb.WriteString("\t* VO: " + vo + "\n")

		ids, err := r.listVO(vo)
		if err != nil {
			r.Errorf("vo '%s': %v", vo, err)
			sb.WriteString("\t\t(no data: " + reason(err) + ")\n")
			continue
		}

		for _, id := range ids {
			sb.WriteString("\t\t" + id + "\n")
		}
	}

	return sb.String(), nil
}

func (r *Reporter) listVO(vo string) ([]string, error) {
	out, err := r.exec.listSEs(vo)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", report.ErrQueryTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", report.ErrQueryFailure, err)
	}

	return ParseListing(strings.Split(string(out), "\n")), nil
}

func reason(err error) string {
	if errors.Is(err, report.ErrQueryTimeout) {
		return "query timeout"
	}
	return "query failure"
}
