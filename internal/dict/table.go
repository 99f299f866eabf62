package dict

// HiddenPKName is the reserved identifier of the single-column key the
// storage engine synthesizes when a user table defines no primary key.
const HiddenPKName = "$PK"

// Table is an opaque handle on one table's schema as known to the
// dictionary. A handle may have been fetched from the live dictionary or
// constructed locally while defining a new table; in the latter case the
// tablespace name is not resolvable and only the id is set.
type Table interface {
	Name() string
	NumColumns() int
	// Column returns the column at index i, nil when out of range.
	Column(i int) *Column
	// ColumnByName returns the named column, nil when absent.
	ColumnByName(name string) *Column
	NumPrimaryKeys() int
	// TablespaceName returns the resolved tablespace name, empty when none
	// is known locally.
	TablespaceName() string
	// TablespaceID returns the internal tablespace id and whether one is set.
	TablespaceID() (uint32, bool)
	// ExtraMetadata returns the opaque versioned blob the SQL layer attaches
	// to the table definition, if any.
	ExtraMetadata() (version uint32, data []byte, err error)
}

// TableHasBlobs reports whether any column of the table is a large-object
// kind (binary or text).
func TableHasBlobs(tab Table) bool {
	for i := 0; i < tab.NumColumns(); i++ {
		t := tab.Column(i).Type
		if t == TypeBlob || t == TypeText {
			return true
		}
	}
	return false
}

// TableHasHiddenPrimaryKey reports whether the table's only primary key is
// the synthesized hidden key. The column must match the exact signature the
// engine uses when it adds the key: big unsigned, length 1, not nullable,
// primary key, auto increment, no default. Any mismatch means the key was
// user-defined.
func TableHasHiddenPrimaryKey(tab Table) bool {
	if tab.NumPrimaryKeys() != 1 {
		return false
	}
	col := tab.ColumnByName(HiddenPKName)
	return col != nil &&
		col.Type == TypeBigUnsigned &&
		col.Length == 1 &&
		!col.Nullable &&
		col.PrimaryKey &&
		col.AutoIncrement &&
		col.DefaultValue == nil
}

// TableHasTablespace reports whether the table is associated with a
// tablespace. A handle fetched from the dictionary carries the tablespace id
// even when the name has not been resolved, so either signal counts.
func TableHasTablespace(tab Table) bool {
	if _, ok := TableTablespaceName(tab); ok {
		return true
	}
	if _, ok := tab.TablespaceID(); ok {
		// Resolving the name would need another dictionary round trip; the
		// id alone is proof enough.
		return true
	}
	return false
}
