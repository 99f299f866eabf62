package dict

import (
	"fmt"

	"github.com/tuannm99/clusterdict/internal/names"
)

// Listing queries. Each one requests a fresh typed listing from the
// dictionary, then filters into a caller-owned collection. The only hard
// failure is the listing request itself: it is returned with the collection
// untouched. Secondary per-object lookups never fail a query; an object that
// cannot be resolved simply does not match.

// LogfileGroupNames collects the names of all logfile groups.
func LogfileGroupNames(d Dictionary, groupNames map[string]struct{}) error {
	list, err := d.ListObjects(KindLogfileGroup)
	if err != nil {
		return fmt.Errorf("list logfile groups: %w", err)
	}
	for _, elmt := range list {
		groupNames[elmt.Name] = struct{}{}
	}
	return nil
}

// TablespaceNames collects the names of all tablespaces.
func TablespaceNames(d Dictionary, tablespaceNames map[string]struct{}) error {
	list, err := d.ListObjects(KindTablespace)
	if err != nil {
		return fmt.Errorf("list tablespaces: %w", err)
	}
	for _, elmt := range list {
		tablespaceNames[elmt.Name] = struct{}{}
	}
	return nil
}

// TableNamesInSchema collects the names of the usable user tables owned by
// the given database. Reserved names (temporary, blob-backing,
// index-statistics) are excluded, and only tables that are usable now
// (online, backup) or expected to be soon (building) are returned.
func TableNamesInSchema(d Dictionary, database string, tableNames map[string]struct{}) error {
	list, err := d.ListObjects(KindUserTable)
	if err != nil {
		return fmt.Errorf("list user tables: %w", err)
	}
	for _, elmt := range list {
		if elmt.Database != database {
			continue
		}
		if names.IsTemp(elmt.Name) ||
			names.IsBlobBacking(elmt.Name) ||
			names.IsIndexStat(elmt.Name) {
			continue
		}
		switch elmt.State {
		case StateOnline, StateBackup, StateBuilding:
			tableNames[elmt.Name] = struct{}{}
		}
	}
	return nil
}

// UndofileNames appends the names of the undofiles belonging to the given
// logfile group. Ownership is resolved per undofile with a secondary lookup;
// names compare by exact string equality.
func UndofileNames(d Dictionary, logfileGroup string, undofileNames []string) ([]string, error) {
	list, err := d.ListObjects(KindUndofile)
	if err != nil {
		return undofileNames, fmt.Errorf("list undofiles: %w", err)
	}
	for _, elmt := range list {
		uf, err := d.Undofile(elmt.Name)
		if err != nil {
			// Unresolvable undofile, does not belong to the group.
			continue
		}
		if uf.LogfileGroup == logfileGroup {
			undofileNames = append(undofileNames, elmt.Name)
		}
	}
	return undofileNames, nil
}

// DatafileNames appends the names of the datafiles belonging to the given
// tablespace. Symmetric to UndofileNames.
func DatafileNames(d Dictionary, tablespace string, datafileNames []string) ([]string, error) {
	list, err := d.ListObjects(KindDatafile)
	if err != nil {
		return datafileNames, fmt.Errorf("list datafiles: %w", err)
	}
	for _, elmt := range list {
		df, err := d.Datafile(elmt.Name)
		if err != nil {
			continue
		}
		if df.Tablespace == tablespace {
			datafileNames = append(datafileNames, elmt.Name)
		}
	}
	return datafileNames, nil
}

// DatabaseNames collects the owning database of every user table that is in
// a ready state (online or building) and not a temporary or blob-backing
// table.
func DatabaseNames(d Dictionary, databaseNames map[string]struct{}) error {
	list, err := d.ListObjects(KindUserTable)
	if err != nil {
		return fmt.Errorf("list user tables: %w", err)
	}
	for _, elmt := range list {
		if elmt.State != StateOnline && elmt.State != StateBuilding {
			continue
		}
		if names.IsTemp(elmt.Name) || names.IsBlobBacking(elmt.Name) {
			continue
		}
		databaseNames[elmt.Database] = struct{}{}
	}
	return nil
}
