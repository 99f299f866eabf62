// Package names classifies the reserved object names the storage engine
// creates for its own use. Callers treat these as opaque predicates; the
// patterns belong to the engine, not to them.
package names

import "strings"

const (
	tempPrefix      = "#sql"
	blobPrefix      = "NDB$BLOB"
	indexStatPrefix = "ndb_index_stat"
)

// IsTemp reports whether name is a temporary table created during schema
// changes.
func IsTemp(name string) bool {
	return strings.HasPrefix(name, tempPrefix)
}

// IsBlobBacking reports whether name is a hidden table backing a blob or
// text column.
func IsBlobBacking(name string) bool {
	return strings.HasPrefix(name, blobPrefix)
}

// IsIndexStat reports whether name is an index-statistics system table.
func IsIndexStat(name string) bool {
	return strings.HasPrefix(name, indexStatPrefix)
}
