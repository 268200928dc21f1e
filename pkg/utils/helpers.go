package utils

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HexToBytes32 converts a hex string (with or without 0x prefix) to a 32-byte
// array, left-padding short values. Storage values and log topics come back
// from nodes in inconsistent widths, so comparisons go through this first.
func HexToBytes32(hexStr string) ([32]byte, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	for len(hexStr) < 64 {
		hexStr = "0" + hexStr
	}
	if len(hexStr) > 64 {
		return [32]byte{}, fmt.Errorf("hex value longer than 32 bytes: %d chars", len(hexStr))
	}
	bytes, err := hex.DecodeString(hexStr)
	if err != nil {
		return [32]byte{}, err
	}
	var result [32]byte
	copy(result[:], bytes)
	return result, nil
}

// HexToBytes20 converts a hex string (with or without 0x prefix) to a 20-byte
// array, left-padding short values.
func HexToBytes20(hexStr string) ([20]byte, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	for len(hexStr) < 40 {
		hexStr = "0" + hexStr
	}
	if len(hexStr) > 40 {
		return [20]byte{}, fmt.Errorf("hex value longer than 20 bytes: %d chars", len(hexStr))
	}
	bytes, err := hex.DecodeString(hexStr)
	if err != nil {
		return [20]byte{}, err
	}
	var result [20]byte
	copy(result[:], bytes)
	return result, nil
}

// MustHexDecode decodes a 0x-prefixed hex string and panics on malformed
// input. Intended for compile-time constants only (fixture bytecode,
// calldata literals), never for node responses.
func MustHexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		panic(fmt.Sprintf("invalid hex literal: %v", err))
	}
	return b
}
