// SPDX-License-Identifier: GPL-3.0-or-later

package sebyvo

import (
	"os"
	"os/exec"
	"strings"
)

func (r *Reporter) initInfositesExec() (infositesBinary, error) {
	binPath := r.BinaryPath

	if !strings.HasPrefix(binPath, "/") {
		path, err := exec.LookPath(binPath)
		if err != nil {
			return nil, err
		}
		binPath = path
	}

	if _, err := os.Stat(binPath); err != nil {
		return nil, err
	}

	return newInfositesExec(binPath, r.BDII, r.Timeout.Duration(), r.Logger), nil
}
