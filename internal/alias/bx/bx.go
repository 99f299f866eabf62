// Package bx holds the byte helpers for the engine's wire layouts, which are
// little-endian throughout.
package bx

import "encoding/binary"

var le = binary.LittleEndian

// --- read ---
func U16(b []byte) uint16 { return le.Uint16(b) }
func U32(b []byte) uint32 { return le.Uint32(b) }
func U64(b []byte) uint64 { return le.Uint64(b) }

// --- write ---
func PutU16(b []byte, v uint16) { le.PutUint16(b, v) }
func PutU32(b []byte, v uint32) { le.PutUint32(b, v) }
func PutU64(b []byte, v uint64) { le.PutUint64(b, v) }

// --- at offset ---
func U16At(b []byte, off int) uint16       { return U16(b[off:]) }
func PutU16At(b []byte, off int, v uint16) { PutU16(b[off:], v) }
