// SPDX-License-Identifier: GPL-3.0-or-later

package glue

import (
	"strings"

	"github.com/gridcf/gipreport/logger"
)

// Schema classes of interest ("Glue" prefix stripped, see FromLDAPEntry).
const (
	ClassCE     = "CE"
	ClassVOView = "VOView"
	ClassCETop  = "CETop"
)

// Attribute names of interest ("Glue" prefix stripped).
const (
	AttrCEUniqueID = "CEUniqueID"
	AttrChunkKey   = "ChunkKey"
)

const chunkKeyPrefix = "GlueCEUniqueID="

// ChunkKeyRefersTo reports whether a VO view chunk key references the CE with
// the given unique ID. The relation is an exact match on the formatted key
// string, not a structural parse.
func ChunkKeyRefersTo(chunkKey, ceUniqueID string) bool {
	return chunkKey == chunkKeyPrefix+ceUniqueID
}

// CEGroup is one Computing Element entry with the VO usage views joined to it.
type CEGroup struct {
	CE      *Entry
	VOViews []*Entry
}

// Correlator joins VO view entries to their owning CE entries.
type Correlator struct {
	*logger.Logger

	// WarnOrphans logs a warning for every VO view whose chunk key matches
	// no CE instead of dropping it silently.
	WarnOrphans bool
}

// Correlate partitions entries into CE entries (class CE) and VO view entries
// (classes VOView and CETop, i.e. views attached directly under a CE) and
// joins each view to the CE its chunk key refers to.
//
// Groups come back in first-seen CE order; views keep their input order. A
// view joins at most one CE; views matching no CE are dropped. A CE entry
// without CEUniqueID or a view without ChunkKey aborts the whole correlation
// with *MissingAttributeError.
func (c *Correlator) Correlate(entries []*Entry) ([]*CEGroup, error) {
	var groups []*CEGroup
	byID := make(map[string]*CEGroup)

	for _, e := range entries {
		if !e.HasClass(ClassCE) {
			continue
		}
		id, err := e.Get(AttrCEUniqueID)
		if err != nil {
			return nil, err
		}
		g := &CEGroup{CE: e}
		groups = append(groups, g)
		if _, ok := byID[id]; !ok {
			byID[id] = g
		}
	}

	for _, e := range entries {
		if !e.HasClass(ClassVOView) || !e.HasClass(ClassCETop) {
			continue
		}
		key, err := e.Get(AttrChunkKey)
		if err != nil {
			return nil, err
		}

		// Index lookup, equivalent to probing ChunkKeyRefersTo against every CE.
		var owner *CEGroup
		if id, ok := strings.CutPrefix(key, chunkKeyPrefix); ok {
			owner = byID[id]
		}
		if owner == nil {
			if c.WarnOrphans {
				c.Warningf("dropping VO view '%s': chunk key '%s' matches no CE", e.DN(), key)
			} else {
				c.Debugf("dropping VO view '%s': chunk key '%s' matches no CE", e.DN(), key)
			}
			continue
		}

		owner.VOViews = append(owner.VOViews, e)
	}

	return groups, nil
}
