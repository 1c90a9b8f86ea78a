// SPDX-License-Identifier: GPL-3.0-or-later

package sebyvo

import (
	"time"

	"github.com/gridcf/gipreport/logger"
	"github.com/gridcf/gipreport/pkg/runcmd"
)

type infositesBinary interface {
	listSEs(vo string) ([]byte, error)
}

func newInfositesExec(binPath, bdii string, timeout time.Duration, log *logger.Logger) *infositesExec {
	return &infositesExec{
		Logger:  log,
		binPath: binPath,
		bdii:    bdii,
		timeout: timeout,
	}
}

type infositesExec struct {
	*logger.Logger

	binPath string
	bdii    string
	timeout time.Duration
}

func (e *infositesExec) listSEs(vo string) ([]byte, error) {
	return runcmd.Run(e.Logger, e.timeout, e.binPath, "--is", e.bdii, "--vo", vo, "se")
}
