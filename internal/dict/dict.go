// Package dict is a thin, read-only adapter between the SQL layer and the
// clustered storage engine's metadata dictionary. It answers metadata
// questions (table attributes, tablespace linkage, object listings) and packs
// variable-length column values into the engine's on-the-wire layouts. Every
// operation is a single synchronous call sequence; nothing here caches,
// retries or locks.
package dict

import "fmt"

// ObjectKind selects which object class a dictionary listing enumerates.
type ObjectKind uint8

const (
	KindUserTable ObjectKind = iota + 1
	KindTablespace
	KindLogfileGroup
	KindUndofile
	KindDatafile
)

func (k ObjectKind) String() string {
	switch k {
	case KindUserTable:
		return "user table"
	case KindTablespace:
		return "tablespace"
	case KindLogfileGroup:
		return "logfile group"
	case KindUndofile:
		return "undofile"
	case KindDatafile:
		return "datafile"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ObjectState is the lifecycle state a dictionary listing reports per object.
type ObjectState uint8

const (
	StateOnline ObjectState = iota + 1
	StateBuilding
	StateDropping
	StateBroken
	// StateBackup marks tables restored from old backups. Obsolete, but
	// still produced by older dictionaries, so usable-table filters accept
	// it alongside online and building.
	StateBackup
)

func (s ObjectState) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateBuilding:
		return "building"
	case StateDropping:
		return "dropping"
	case StateBroken:
		return "broken"
	case StateBackup:
		return "backup"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Element is one entry of a dictionary listing. Listings are produced fresh
// on every query and never mutated after retrieval.
type Element struct {
	Name     string
	Database string
	State    ObjectState
}

// Tablespace is the record returned by single-tablespace resolution.
type Tablespace struct {
	ID   uint32
	Name string
}

// Undofile carries the name of the logfile group owning the undofile.
type Undofile struct {
	Name         string
	LogfileGroup string
}

// Datafile carries the name of the tablespace owning the datafile.
type Datafile struct {
	Name       string
	Tablespace string
}

// Error is the dictionary service's native failure: a numeric code plus a
// human-readable message. Implementations return it (wrapped or not) from
// every failing call.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dict: error %d: %s", e.Code, e.Message)
}

// Dictionary is the narrow slice of the storage engine's dictionary API this
// layer needs: listing by kind plus single-object resolution. Thread-safety
// is whatever the implementation provides; this layer adds none.
type Dictionary interface {
	// ListObjects enumerates all objects of the given kind.
	ListObjects(kind ObjectKind) ([]Element, error)

	// TablespaceByID resolves an internal tablespace id to its record.
	TablespaceByID(id uint32) (Tablespace, error)

	// Undofile resolves an undofile by name.
	Undofile(name string) (Undofile, error)

	// Datafile resolves a datafile by name.
	Datafile(name string) (Datafile, error)
}
