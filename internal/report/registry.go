// Package report assembles ordered per-interface field reports.
package report

import (
	"firestige.xyz/ifreport/internal/ifquery"
)

// Field names accepted by Build.
const (
	FieldName    = "name"
	FieldStatus  = "status"
	FieldIP      = "ip"
	FieldNetmask = "netmask"
	FieldMAC     = "mac"
)

// recipe describes how one report field is produced: which selector to
// query, which region of the buffer to slice, and how to normalize it.
// Recipes with query == false never touch the kernel.
type recipe struct {
	query     bool
	selector  ifquery.Selector
	kind      ifquery.FieldKind
	normalize func([]byte) (string, error)
}

// recipes binds field names to their extraction pipeline. It is the
// single source of truth: adding a report field means adding one entry
// here, not touching the builder. Never mutated after init.
var recipes = map[string]recipe{
	FieldName: {query: false},
	FieldStatus: {
		query:     true,
		selector:  ifquery.SelectorFlags,
		kind:      ifquery.KindFlags,
		normalize: ifquery.NormalizeStatus,
	},
	FieldIP: {
		query:     true,
		selector:  ifquery.SelectorAddr,
		kind:      ifquery.KindIPv4Addr,
		normalize: ifquery.NormalizeIPv4,
	},
	FieldNetmask: {
		query:     true,
		selector:  ifquery.SelectorNetmask,
		kind:      ifquery.KindIPv4Netmask,
		normalize: ifquery.NormalizeIPv4,
	},
	FieldMAC: {
		query:     true,
		selector:  ifquery.SelectorHWAddr,
		kind:      ifquery.KindHardwareAddr,
		normalize: ifquery.NormalizeHardwareAddr,
	},
}

// Fields returns all supported field names in canonical order.
func Fields() []string {
	return []string{FieldName, FieldStatus, FieldIP, FieldNetmask, FieldMAC}
}

// Supported reports whether field has a registered recipe.
func Supported(field string) bool {
	_, ok := recipes[field]
	return ok
}
