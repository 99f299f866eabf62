package memdict

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tuannm99/clusterdict/internal/dict"
)

// Snapshot is the JSON form of a dictionary's contents, as written by
// operators or test fixtures and consumed by dictls.
type Snapshot struct {
	Tables        []TableDef      `json:"tables"`
	Tablespaces   []TablespaceDef `json:"tablespaces,omitempty"`
	LogfileGroups []string        `json:"logfile_groups,omitempty"`
	Undofiles     []UndofileDef   `json:"undofiles,omitempty"`
	Datafiles     []DatafileDef   `json:"datafiles,omitempty"`
}

type TableDef struct {
	Database     string      `json:"database"`
	Name         string      `json:"name"`
	State        string      `json:"state,omitempty"` // default "online"
	Columns      []ColumnDef `json:"columns"`
	Tablespace   string      `json:"tablespace,omitempty"`
	TablespaceID *uint32     `json:"tablespace_id,omitempty"`
	ExtraVersion uint32      `json:"extra_version,omitempty"`
	ExtraData    []byte      `json:"extra_data,omitempty"`
}

type ColumnDef struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	ArrayType     string `json:"array_type,omitempty"` // default "fixed"
	Length        int    `json:"length"`
	Nullable      bool   `json:"nullable,omitempty"`
	PrimaryKey    bool   `json:"primary_key,omitempty"`
	AutoIncrement bool   `json:"auto_increment,omitempty"`
	Default       []byte `json:"default,omitempty"`
}

type TablespaceDef struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

type UndofileDef struct {
	Name         string `json:"name"`
	LogfileGroup string `json:"logfile_group"`
}

type DatafileDef struct {
	Name       string `json:"name"`
	Tablespace string `json:"tablespace"`
}

// LoadSnapshot reads a JSON snapshot file and builds a dictionary from it.
func LoadSnapshot(path string) (*Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return FromSnapshot(&snap)
}

// FromSnapshot builds a dictionary from an already-decoded snapshot.
func FromSnapshot(snap *Snapshot) (*Dictionary, error) {
	d := New()
	for _, td := range snap.Tables {
		t, err := tableFromDef(td)
		if err != nil {
			return nil, fmt.Errorf("table %s.%s: %w", td.Database, td.Name, err)
		}
		d.AddTable(t)
	}
	for _, ts := range snap.Tablespaces {
		d.AddTablespace(dict.Tablespace{ID: ts.ID, Name: ts.Name})
	}
	for _, name := range snap.LogfileGroups {
		d.AddLogfileGroup(name)
	}
	for _, uf := range snap.Undofiles {
		d.AddUndofile(dict.Undofile{Name: uf.Name, LogfileGroup: uf.LogfileGroup})
	}
	for _, df := range snap.Datafiles {
		d.AddDatafile(dict.Datafile{Name: df.Name, Tablespace: df.Tablespace})
	}
	return d, nil
}

func tableFromDef(td TableDef) (*Table, error) {
	cols := make([]dict.Column, 0, len(td.Columns))
	for _, cd := range td.Columns {
		colType, err := parseColumnType(cd.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", cd.Name, err)
		}
		arrType, err := parseArrayType(cd.ArrayType)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", cd.Name, err)
		}
		cols = append(cols, dict.Column{
			Name:          cd.Name,
			Type:          colType,
			ArrayType:     arrType,
			Length:        cd.Length,
			Nullable:      cd.Nullable,
			PrimaryKey:    cd.PrimaryKey,
			AutoIncrement: cd.AutoIncrement,
			DefaultValue:  cd.Default,
		})
	}

	t := NewTable(td.Database, td.Name, cols...)
	state, err := parseState(td.State)
	if err != nil {
		return nil, err
	}
	t.SetState(state)
	if td.Tablespace != "" {
		t.SetTablespaceName(td.Tablespace)
	}
	if td.TablespaceID != nil {
		t.SetTablespaceID(*td.TablespaceID)
	}
	if td.ExtraVersion != 0 || td.ExtraData != nil {
		t.SetExtraMetadata(td.ExtraVersion, td.ExtraData)
	}
	return t, nil
}

func parseState(s string) (dict.ObjectState, error) {
	switch s {
	case "", "online":
		return dict.StateOnline, nil
	case "building":
		return dict.StateBuilding, nil
	case "dropping":
		return dict.StateDropping, nil
	case "broken":
		return dict.StateBroken, nil
	case "backup":
		return dict.StateBackup, nil
	default:
		return 0, fmt.Errorf("unknown state %q", s)
	}
}

func parseColumnType(s string) (dict.ColumnType, error) {
	switch s {
	case "int":
		return dict.TypeInt, nil
	case "unsigned":
		return dict.TypeUnsigned, nil
	case "bigint":
		return dict.TypeBigInt, nil
	case "bigunsigned":
		return dict.TypeBigUnsigned, nil
	case "char":
		return dict.TypeChar, nil
	case "varchar":
		return dict.TypeVarchar, nil
	case "blob":
		return dict.TypeBlob, nil
	case "text":
		return dict.TypeText, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}

func parseArrayType(s string) (dict.ArrayType, error) {
	switch s {
	case "", "fixed":
		return dict.ArrayTypeFixed, nil
	case "shortvar":
		return dict.ArrayTypeShortVar, nil
	case "mediumvar":
		return dict.ArrayTypeMediumVar, nil
	default:
		return 0, fmt.Errorf("unknown array type %q", s)
	}
}
