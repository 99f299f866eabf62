package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeTable struct {
	name    string
	cols    []Column
	numPKs  int
	tsName  string
	tsID    uint32
	hasTSID bool

	extraVersion uint32
	extraData    []byte
	extraErr     error
}

func (f *fakeTable) Name() string    { return f.name }
func (f *fakeTable) NumColumns() int { return len(f.cols) }

func (f *fakeTable) Column(i int) *Column {
	if i < 0 || i >= len(f.cols) {
		return nil
	}
	return &f.cols[i]
}

func (f *fakeTable) ColumnByName(name string) *Column {
	for i := range f.cols {
		if f.cols[i].Name == name {
			return &f.cols[i]
		}
	}
	return nil
}

func (f *fakeTable) NumPrimaryKeys() int    { return f.numPKs }
func (f *fakeTable) TablespaceName() string { return f.tsName }

func (f *fakeTable) TablespaceID() (uint32, bool) {
	return f.tsID, f.hasTSID
}

func (f *fakeTable) ExtraMetadata() (uint32, []byte, error) {
	return f.extraVersion, f.extraData, f.extraErr
}

// hiddenPKTable builds a table matching the synthesized-key signature
// exactly; tests mutate single attributes off it.
func hiddenPKTable() *fakeTable {
	return &fakeTable{
		name:   "t1",
		numPKs: 1,
		cols: []Column{{
			Name:          HiddenPKName,
			Type:          TypeBigUnsigned,
			Length:        1,
			PrimaryKey:    true,
			AutoIncrement: true,
		}},
	}
}

// ---- tests: TableHasBlobs ----

func TestTableHasBlobs(t *testing.T) {
	noBlobs := &fakeTable{cols: []Column{
		{Name: "id", Type: TypeBigUnsigned},
		{Name: "name", Type: TypeVarchar},
	}}
	require.False(t, TableHasBlobs(noBlobs))

	withBlob := &fakeTable{cols: []Column{
		{Name: "id", Type: TypeBigUnsigned},
		{Name: "payload", Type: TypeBlob},
	}}
	require.True(t, TableHasBlobs(withBlob))

	withText := &fakeTable{cols: []Column{
		{Name: "id", Type: TypeBigUnsigned},
		{Name: "body", Type: TypeText},
	}}
	require.True(t, TableHasBlobs(withText))
}

// ---- tests: TableHasHiddenPrimaryKey ----

func TestTableHasHiddenPrimaryKey_ExactSignature(t *testing.T) {
	require.True(t, TableHasHiddenPrimaryKey(hiddenPKTable()))
}

func TestTableHasHiddenPrimaryKey_AnyMismatchFlips(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*fakeTable)
	}{
		{"two primary keys", func(f *fakeTable) { f.numPKs = 2 }},
		{"no primary keys", func(f *fakeTable) { f.numPKs = 0 }},
		{"user-named column", func(f *fakeTable) { f.cols[0].Name = "id" }},
		{"signed type", func(f *fakeTable) { f.cols[0].Type = TypeBigInt }},
		{"length two", func(f *fakeTable) { f.cols[0].Length = 2 }},
		{"nullable", func(f *fakeTable) { f.cols[0].Nullable = true }},
		{"pk flag cleared", func(f *fakeTable) { f.cols[0].PrimaryKey = false }},
		{"no auto increment", func(f *fakeTable) { f.cols[0].AutoIncrement = false }},
		{"default value set", func(f *fakeTable) { f.cols[0].DefaultValue = []byte{0} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := hiddenPKTable()
			tc.mutate(f)
			require.False(t, TableHasHiddenPrimaryKey(f))
		})
	}
}

// ---- tests: TableHasTablespace ----

func TestTableHasTablespace(t *testing.T) {
	require.False(t, TableHasTablespace(&fakeTable{}))

	// Name resolved locally.
	require.True(t, TableHasTablespace(&fakeTable{tsName: "ts_alpha"}))

	// Fetched from the dictionary: id set, name not resolved.
	require.True(t, TableHasTablespace(&fakeTable{tsID: 7, hasTSID: true}))
}

// ---- tests: ExtraMetadataVersion ----

func TestExtraMetadataVersion(t *testing.T) {
	require.Equal(t, uint32(2), ExtraMetadataVersion(&fakeTable{
		extraVersion: 2,
		extraData:    []byte("serialized"),
	}))
}

func TestExtraMetadataVersion_FailureIsZero(t *testing.T) {
	// Failure collapses to the same sentinel as absence.
	tab := &fakeTable{
		extraVersion: 2,
		extraErr:     &Error{Code: 4243, Message: "unpack failed"},
	}
	require.Zero(t, ExtraMetadataVersion(tab))
}
