// Package revert classifies and decodes node-side execution errors.
//
// The node's error formatting is part of the conformance surface: revert
// reasons and not-found messages are asserted as literal strings, so this
// package both decodes ABI-encoded revert payloads and produces the exact
// message strings a conforming node must emit.
package revert

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// Kind is the failure taxonomy for node-side errors.
type Kind int

const (
	// KindUnknown is an error this package cannot classify (transport
	// failures, malformed responses).
	KindUnknown Kind = iota
	// KindNotFound is a lookup of an unknown transaction or block identifier.
	KindNotFound
	// KindRevert is an execution revert carrying an ABI-encoded payload.
	KindRevert
	// KindRevertNoData is an execution revert with no return data, typically
	// a call to a selector the contract does not dispatch.
	KindRevertNoData
)

const (
	// revertedPrefix is the message prefix a conforming node uses for every
	// execution revert.
	revertedPrefix = "execution reverted"

	// errorStringSelector is the 4-byte selector of Error(string), the
	// payload produced by Solidity's require/revert with a reason.
	errorStringSelector = "08c379a0"
)

// Error is a classified node-side execution error.
type Error struct {
	Kind    Kind
	Message string // node's error message, verbatim
	Reason  string // decoded Error(string) reason, empty when absent
	Data    string // 0x-prefixed raw revert payload, empty when absent
}

func (e *Error) Error() string {
	return e.Message
}

// Classify inspects an error returned by a call, estimate or lookup RPC and
// maps it onto the conformance taxonomy. The second return is false when the
// error is not a node-side JSON-RPC error (e.g. a transport failure).
func Classify(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}

	msg := err.Error()
	out := &Error{Kind: KindUnknown, Message: msg}

	if de, ok := err.(rpc.DataError); ok {
		if data, ok := de.ErrorData().(string); ok && data != "" && data != "0x" {
			out.Data = data
			if reason, ok := DecodeReason(data); ok {
				out.Reason = reason
			}
		}
	}

	switch {
	case strings.HasPrefix(msg, revertedPrefix):
		if out.Data == "" {
			out.Kind = KindRevertNoData
		} else {
			out.Kind = KindRevert
		}
	case strings.HasSuffix(msg, "not found."):
		out.Kind = KindNotFound
	}

	if _, isRPC := err.(rpc.Error); isRPC {
		return out, true
	}
	if _, isData := err.(rpc.DataError); isData {
		return out, true
	}
	return out, false
}

// DecodeReason unpacks an Error(string) payload into its human-readable
// reason. Returns false for payloads that are not Error(string) or are
// truncated.
func DecodeReason(data string) (string, bool) {
	raw, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return "", false
	}
	// selector + offset word + length word is the minimum well-formed payload
	if len(raw) < 4+32+32 {
		return "", false
	}
	if hex.EncodeToString(raw[:4]) != errorStringSelector {
		return "", false
	}

	// The offset and length words come from the node unvalidated; compare by
	// subtraction so near-2^64 values cannot wrap the bounds checks.
	body := raw[4:]
	offset := new(big.Int).SetBytes(body[:32])
	if !offset.IsUint64() || offset.Uint64() > uint64(len(body))-32 {
		return "", false
	}
	strOff := offset.Uint64()
	length := new(big.Int).SetBytes(body[strOff : strOff+32])
	if !length.IsUint64() || length.Uint64() > uint64(len(body))-strOff-32 {
		return "", false
	}
	return string(body[strOff+32 : strOff+32+length.Uint64()]), true
}

// EncodeReason builds the Error(string) payload for a reason, 0x-prefixed.
// Used by tests and by checks asserting the exact payload a node returns.
func EncodeReason(reason string) string {
	body := make([]byte, 0, 4+32+32+((len(reason)+31)/32)*32)
	body = append(body, mustDecode(errorStringSelector)...)

	offset := make([]byte, 32)
	offset[31] = 0x20
	body = append(body, offset...)

	length := new(big.Int).SetInt64(int64(len(reason))).FillBytes(make([]byte, 32))
	body = append(body, length...)

	padded := make([]byte, ((len(reason)+31)/32)*32)
	copy(padded, reason)
	body = append(body, padded...)

	return "0x" + hex.EncodeToString(body)
}

func mustDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// RevertedMessage is the exact message a conforming node emits for a revert
// carrying a reason string.
func RevertedMessage(reason string) string {
	return fmt.Sprintf("%s: revert: %s", revertedPrefix, reason)
}

// RevertedNoDataMessage is the exact message for a revert without a payload.
func RevertedNoDataMessage() string {
	return revertedPrefix
}

// TxNotFoundMessage is the exact message a conforming node emits when a
// transaction hash is unknown. The identifier is echoed back verbatim.
func TxNotFoundMessage(hash common.Hash) string {
	return fmt.Sprintf("Transaction with hash: '%s' not found.", hash.Hex())
}

// BlockNotFoundMessage is the exact message for an unknown block identifier.
func BlockNotFoundMessage(id string) string {
	return fmt.Sprintf("Block with id: '%s' not found.", id)
}
