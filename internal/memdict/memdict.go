// Package memdict is an in-memory dictionary service. It implements
// dict.Dictionary over plain slices, listing objects in insertion order. It
// backs the dictls tool (seeded from a JSON snapshot) and the package tests;
// there is no durability and no synchronization.
package memdict

import (
	"fmt"

	"github.com/tuannm99/clusterdict/internal/dict"
)

// Error codes reported through dict.Error.
const (
	codeNoSuchObject = 723
	codeUnknownKind  = 4241
)

func errNotFound(kind dict.ObjectKind, name string) error {
	return &dict.Error{
		Code:    codeNoSuchObject,
		Message: fmt.Sprintf("no such %s: %s", kind, name),
	}
}

// Dictionary holds the dictionary objects. Zero value is usable and empty.
type Dictionary struct {
	tables        []*Table
	tablespaces   []dict.Tablespace
	logfileGroups []string
	undofiles     []dict.Undofile
	datafiles     []dict.Datafile
}

func New() *Dictionary { return &Dictionary{} }

func (d *Dictionary) AddTable(t *Table)                { d.tables = append(d.tables, t) }
func (d *Dictionary) AddTablespace(ts dict.Tablespace) { d.tablespaces = append(d.tablespaces, ts) }
func (d *Dictionary) AddLogfileGroup(name string)      { d.logfileGroups = append(d.logfileGroups, name) }
func (d *Dictionary) AddUndofile(uf dict.Undofile)     { d.undofiles = append(d.undofiles, uf) }
func (d *Dictionary) AddDatafile(df dict.Datafile)     { d.datafiles = append(d.datafiles, df) }

// Table looks up a table by database and name.
func (d *Dictionary) Table(database, name string) (*Table, bool) {
	for _, t := range d.tables {
		if t.database == database && t.name == name {
			return t, true
		}
	}
	return nil, false
}

// --- dict.Dictionary ---

func (d *Dictionary) ListObjects(kind dict.ObjectKind) ([]dict.Element, error) {
	switch kind {
	case dict.KindUserTable:
		out := make([]dict.Element, 0, len(d.tables))
		for _, t := range d.tables {
			out = append(out, dict.Element{Name: t.name, Database: t.database, State: t.state})
		}
		return out, nil

	case dict.KindTablespace:
		out := make([]dict.Element, 0, len(d.tablespaces))
		for _, ts := range d.tablespaces {
			out = append(out, dict.Element{Name: ts.Name, State: dict.StateOnline})
		}
		return out, nil

	case dict.KindLogfileGroup:
		out := make([]dict.Element, 0, len(d.logfileGroups))
		for _, name := range d.logfileGroups {
			out = append(out, dict.Element{Name: name, State: dict.StateOnline})
		}
		return out, nil

	case dict.KindUndofile:
		out := make([]dict.Element, 0, len(d.undofiles))
		for _, uf := range d.undofiles {
			out = append(out, dict.Element{Name: uf.Name, State: dict.StateOnline})
		}
		return out, nil

	case dict.KindDatafile:
		out := make([]dict.Element, 0, len(d.datafiles))
		for _, df := range d.datafiles {
			out = append(out, dict.Element{Name: df.Name, State: dict.StateOnline})
		}
		return out, nil

	default:
		return nil, &dict.Error{
			Code:    codeUnknownKind,
			Message: fmt.Sprintf("unknown object kind %d", kind),
		}
	}
}

func (d *Dictionary) TablespaceByID(id uint32) (dict.Tablespace, error) {
	for _, ts := range d.tablespaces {
		if ts.ID == id {
			return ts, nil
		}
	}
	return dict.Tablespace{}, errNotFound(dict.KindTablespace, fmt.Sprintf("id %d", id))
}

func (d *Dictionary) Undofile(name string) (dict.Undofile, error) {
	for _, uf := range d.undofiles {
		if uf.Name == name {
			return uf, nil
		}
	}
	return dict.Undofile{}, errNotFound(dict.KindUndofile, name)
}

func (d *Dictionary) Datafile(name string) (dict.Datafile, error) {
	for _, df := range d.datafiles {
		if df.Name == name {
			return df, nil
		}
	}
	return dict.Datafile{}, errNotFound(dict.KindDatafile, name)
}
