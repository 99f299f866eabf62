package memdict

import "github.com/tuannm99/clusterdict/internal/dict"

// Table is an in-memory table definition implementing dict.Table. New tables
// start online with no tablespace and no extra metadata; setters chain so
// tests and snapshot loading stay compact.
type Table struct {
	database string
	name     string
	state    dict.ObjectState
	cols     []dict.Column

	tablespaceName  string
	tablespaceID    uint32
	hasTablespaceID bool

	extraVersion uint32
	extraData    []byte
}

func NewTable(database, name string, cols ...dict.Column) *Table {
	return &Table{
		database: database,
		name:     name,
		state:    dict.StateOnline,
		cols:     cols,
	}
}

func (t *Table) Database() string        { return t.database }
func (t *Table) State() dict.ObjectState { return t.state }

func (t *Table) SetState(s dict.ObjectState) *Table {
	t.state = s
	return t
}

func (t *Table) SetTablespaceName(name string) *Table {
	t.tablespaceName = name
	return t
}

func (t *Table) SetTablespaceID(id uint32) *Table {
	t.tablespaceID = id
	t.hasTablespaceID = true
	return t
}

func (t *Table) SetExtraMetadata(version uint32, data []byte) *Table {
	t.extraVersion = version
	t.extraData = data
	return t
}

// --- dict.Table ---

func (t *Table) Name() string    { return t.name }
func (t *Table) NumColumns() int { return len(t.cols) }

func (t *Table) Column(i int) *dict.Column {
	if i < 0 || i >= len(t.cols) {
		return nil
	}
	return &t.cols[i]
}

func (t *Table) ColumnByName(name string) *dict.Column {
	for i := range t.cols {
		if t.cols[i].Name == name {
			return &t.cols[i]
		}
	}
	return nil
}

func (t *Table) NumPrimaryKeys() int {
	n := 0
	for i := range t.cols {
		if t.cols[i].PrimaryKey {
			n++
		}
	}
	return n
}

func (t *Table) TablespaceName() string { return t.tablespaceName }

func (t *Table) TablespaceID() (uint32, bool) {
	return t.tablespaceID, t.hasTablespaceID
}

func (t *Table) ExtraMetadata() (uint32, []byte, error) {
	return t.extraVersion, t.extraData, nil
}
