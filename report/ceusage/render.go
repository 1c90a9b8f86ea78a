// SPDX-License-Identifier: GPL-3.0-or-later

package ceusage

import (
	"strings"

	"github.com/gridcf/gipreport/pkg/glue"
)

// Rendered attribute names ("Glue" prefix stripped).
const (
	attrLRMSType      = "CEInfoLRMSType"
	attrLRMSVersion   = "CEInfoLRMSVersion"
	attrFreeSlots     = "CEStateFreeJobSlots"
	attrRunningSlots  = "CEStateRunningJobs"
	attrAssignedSlots = "CEPolicyAssignedJobSlots"
	attrMaxWallTime   = "CEPolicyMaxWallClockTime"
	attrVOLocalID     = "VOViewLocalID"
	attrVORunning     = "CEStateRunningJobs"
	attrVOWaiting     = "CEStateWaitingJobs"
)

var ceFields = []struct {
	label string
	attr  string
}{
	{"LRMS type", attrLRMSType},
	{"LRMS version", attrLRMSVersion},
	{"Free job slots", attrFreeSlots},
	{"Running job slots", attrRunningSlots},
	{"Assigned job slots", attrAssignedSlots},
	{"Max wall time", attrMaxWallTime},
}

// renderUsage emits one block per CE group, in group order. The indentation
// is a wire contract consumed by downstream log viewers; keep it byte exact.
func renderUsage(groups []*glue.CEGroup) (string, error) {
	var sb strings.Builder

	for _, g := range groups {
		if err := renderCEBlock(&sb, g); err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}

func renderCEBlock(sb *strings.Builder, g *glue.CEGroup) error {
	id, err := g.CE.Get(glue.AttrCEUniqueID)
	if err != nil {
		return err
	}
	sb.WriteString("\t* CE: " + id + "\n")

	for _, f := range ceFields {
		v, err := g.CE.Get(f.attr)
		if err != nil {
			return err
		}
		sb.WriteString("\t\t" + f.label + ": " + v + "\n")
	}

	for _, view := range g.VOViews {
		if err := renderVOLines(sb, view); err != nil {
			return err
		}
	}

	return nil
}

func renderVOLines(sb *strings.Builder, view *glue.Entry) error {
	vo, err := view.Get(attrVOLocalID)
	if err != nil {
		return err
	}
	sb.WriteString("\t\t- VO: " + vo + "\n")

	running, err := view.Get(attrVORunning)
	if err != nil {
		return err
	}
	waiting, err := view.Get(attrVOWaiting)
	if err != nil {
		return err
	}
	sb.WriteString("\t\t\tRunning jobs: " + running + "\n")
	sb.WriteString("\t\t\tWaiting jobs: " + waiting + "\n")

	return nil
}
