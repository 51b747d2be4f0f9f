package stream

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/crc32"
)

var crcTable = crc32.MakeTable(crc32.IEEE)

// ComputeCRC computes CRC-32 IEEE of the given bytes.
func ComputeCRC(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}

// EventsHash is the base hash a text frame carries for the events payload
// it depends on.
func EventsHash(payload []byte) [32]byte {
	return sha256.Sum256(payload)
}

// HashToHex converts a 32-byte hash to lowercase hex.
func HashToHex(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

// HexToHash parses a 64-character hex string to a 32-byte hash.
func HexToHash(s string) ([32]byte, bool) {
	var h [32]byte
	if len(s) != 64 {
		return h, false
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, false
	}
	return h, true
}
