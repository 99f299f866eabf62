package dict

import (
	"bytes"

	"github.com/tuannm99/clusterdict/internal/alias/bx"
)

// MaxPackedValueSize is the row format's cap on one packed value, prefix
// included.
const MaxPackedValueSize = 512

// PackResult reports what PackValue wrote.
type PackResult struct {
	BytesWritten int
	Kind         ArrayType
}

// PackValue encodes src into dst according to the column's array type:
//
//	ArrayTypeFixed      raw bytes, no prefix (length known from the column)
//	ArrayTypeShortVar   1-byte length (len mod 256), then the bytes
//	ArrayTypeMediumVar  2-byte little-endian length, then the bytes
//
// Caller contract, not checked here: len(src) must fit the column's declared
// length minus the prefix bytes, and the declared length must not exceed
// MaxPackedValueSize. An unrecognized array type writes nothing and reports
// zero bytes written; the upstream enumeration is closed, so that arm should
// be unreachable, but the no-op is kept as-is.
func PackValue(dst *bytes.Buffer, col *Column, src []byte) PackResult {
	switch col.ArrayType {
	case ArrayTypeFixed:
		dst.Write(src)
		return PackResult{BytesWritten: len(src), Kind: ArrayTypeFixed}

	case ArrayTypeShortVar:
		dst.WriteByte(byte(len(src)))
		dst.Write(src)
		return PackResult{BytesWritten: 1 + len(src), Kind: ArrayTypeShortVar}

	case ArrayTypeMediumVar:
		var prefix [2]byte
		bx.PutU16(prefix[:], uint16(len(src)))
		dst.Write(prefix[:])
		dst.Write(src)
		return PackResult{BytesWritten: 2 + len(src), Kind: ArrayTypeMediumVar}
	}
	return PackResult{Kind: col.ArrayType}
}
