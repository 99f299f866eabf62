package dict

// ColumnType is the column's declared storage type.
type ColumnType uint8

const (
	TypeInt ColumnType = iota
	TypeUnsigned
	TypeBigInt
	TypeBigUnsigned
	TypeChar
	TypeVarchar
	TypeBlob // binary large object
	TypeText // character large object
)

// ArrayType is the on-the-wire encoding convention for the column's value:
// raw bytes, or a 1- or 2-byte length prefix followed by the bytes.
type ArrayType uint8

const (
	ArrayTypeFixed ArrayType = iota
	ArrayTypeShortVar
	ArrayTypeMediumVar
)

// Column describes one column as known to the dictionary. Read-only input to
// this layer; ownership stays with the table handle it came from.
type Column struct {
	Name          string
	Type          ColumnType
	ArrayType     ArrayType
	Length        int
	Nullable      bool
	PrimaryKey    bool
	AutoIncrement bool
	DefaultValue  []byte // nil means no default
}
