package contracts

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Genesis system contracts of the node under test. These addresses and
// values are part of the chain's genesis fixture, not anything the suite
// deploys.
var (
	// SystemCallerContract exposes SYSTEM_CALLER() and reverts on any other
	// selector.
	SystemCallerContract = common.HexToAddress("0x3100000000000000000000000000000000000001")

	// BridgeContract holds the pre-minted supply, emits OperatorUpdated at
	// genesis, and guards withdraw(bytes32,bytes4) with a minimum amount.
	BridgeContract = common.HexToAddress("0x3100000000000000000000000000000000000002")

	// LightClientContract carries the runtime bytecode asserted by the code
	// query check.
	LightClientContract = common.HexToAddress("0x3200000000000000000000000000000000000001")

	// SystemCaller is the privileged address system transactions originate
	// from.
	SystemCaller = common.HexToAddress("0xdeaddeaddeaddeaddeaddeaddeaddeaddeaddead")
)

// BridgeStorageSlot0 is the expected value of the bridge contract's storage
// slot zero at genesis.
const BridgeStorageSlot0 = "0x0000000000000000000000deaddeaddeaddeaddeaddeaddeaddeaddeaddead01"

// OperatorUpdatedTopic is the event signature topic of the genesis
// OperatorUpdated(address,address) log emitted by the bridge in block 1.
var OperatorUpdatedTopic = common.HexToHash("0xfbe5b6cbafb274f445d7fed869dc77a838d8243a22c460de156560e8857cad03")

// OperatorUpdatedData is the non-indexed payload of that log: operator
// updated from the zero address to the system caller.
const OperatorUpdatedData = "0x0000000000000000000000000000000000000000000000000000000000000000" +
	"000000000000000000000000deaddeaddeaddeaddeaddeaddeaddeaddeaddead"

// BridgeWithdrawCalldata is withdraw(bytes32,bytes4) with arguments 0x1234
// and 0x01. The bridge requires a minimum withdrawal of 1 ether, so
// submitting this with a smaller value must revert.
const BridgeWithdrawCalldata = "0x8786dba7" +
	"1234000000000000000000000000000000000000000000000000000000000000" +
	"0100000000000000000000000000000000000000000000000000000000000000"

// WithdrawRevertReason is the exact reason the bridge reverts with when the
// attached value is below the minimum withdrawal amount.
const WithdrawRevertReason = "Invalid withdraw amount"

// SystemCallerSelector returns the 4-byte selector of SYSTEM_CALLER().
func SystemCallerSelector() []byte {
	return crypto.Keccak256([]byte("SYSTEM_CALLER()"))[:4]
}

// UnknownSelector returns a selector no system contract dispatches, used to
// provoke a data-less revert.
func UnknownSelector() []byte {
	return crypto.Keccak256([]byte("ERRONEUS_FUNC()"))[:4]
}

// SystemCallerReturnValue is the exact 32-byte return of SYSTEM_CALLER():
// the system caller address left-padded to a word.
const SystemCallerReturnValue = "0x000000000000000000000000deaddeaddeaddeaddeaddeaddeaddeaddeaddead"
