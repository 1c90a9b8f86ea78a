// SPDX-License-Identifier: GPL-3.0-or-later

// Package glue models GLUE-schema records published by a grid information
// directory and joins Computing Element records to their per-VO usage views.
package glue

import (
	"fmt"
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// Entry is one schema-tagged record from the information directory.
// It is immutable after construction.
type Entry struct {
	dn      string
	classes map[string]bool
	attrs   map[string][]string
}

// MissingAttributeError is returned when a required attribute is absent on an entry.
type MissingAttributeError struct {
	DN   string
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("entry '%s': missing required attribute '%s'", e.DN, e.Attr)
}

// NewEntry constructs an Entry. Value order within a multi-valued attribute is preserved.
func NewEntry(dn string, classes []string, attrs map[string][]string) *Entry {
	e := &Entry{
		dn:      dn,
		classes: make(map[string]bool, len(classes)),
		attrs:   make(map[string][]string, len(attrs)),
	}
	for _, c := range classes {
		e.classes[c] = true
	}
	for name, values := range attrs {
		e.attrs[name] = append([]string(nil), values...)
	}
	return e
}

// FromLDAPEntry converts a directory search entry.
//
// The "Glue" prefix is stripped from objectClass values and attribute names,
// mirroring the record model of the information provider itself. The
// objectClass and mds-vo-name attributes are not kept as attributes.
func FromLDAPEntry(le *ldap.Entry) *Entry {
	e := &Entry{
		dn:      le.DN,
		classes: make(map[string]bool),
		attrs:   make(map[string][]string),
	}

	for _, attr := range le.Attributes {
		switch {
		case attr.Name == "objectClass":
			for _, v := range attr.Values {
				e.classes[strings.TrimPrefix(v, "Glue")] = true
			}
		case strings.EqualFold(attr.Name, "mds-vo-name"):
		default:
			name := strings.TrimPrefix(attr.Name, "Glue")
			e.attrs[name] = append(e.attrs[name], attr.Values...)
		}
	}

	return e
}

// DN returns the entry distinguished name.
func (e *Entry) DN() string { return e.dn }

// HasClass reports whether the entry carries the given schema class.
func (e *Entry) HasClass(class string) bool { return e.classes[class] }

// Get returns the first value of the named attribute.
// It fails with *MissingAttributeError if the attribute is absent.
func (e *Entry) Get(name string) (string, error) {
	values := e.attrs[name]
	if len(values) == 0 {
		return "", &MissingAttributeError{DN: e.dn, Attr: name}
	}
	return values[0], nil
}

// GetAll returns all values of the named attribute in original order, or nil
// if the attribute is absent. Absence is not an error here; callers for whom
// absence is exceptional must use Get.
func (e *Entry) GetAll(name string) []string {
	values := e.attrs[name]
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}
