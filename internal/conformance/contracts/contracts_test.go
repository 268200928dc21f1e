package contracts

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolluplabs/evm-conformance/pkg/utils"
)

func TestSelectors(t *testing.T) {
	t.Parallel()

	assert.Len(t, SystemCallerSelector(), 4)
	assert.Len(t, UnknownSelector(), 4)
	assert.NotEqual(t, SystemCallerSelector(), UnknownSelector())

	// Canonical WETH9 selectors.
	assert.Equal(t, "0xd0e30db0", hexutil.Encode(PackWETHDeposit()))
	assert.Equal(t, "0x06fdde03", hexutil.Encode(PackWETHName()))

	owner := SystemCaller
	balanceOf := PackWETHBalanceOf(owner)
	require.Len(t, balanceOf, 4+32)
	assert.Equal(t, "0x70a08231", hexutil.Encode(balanceOf[:4]))
	assert.Equal(t, owner.Bytes(), balanceOf[4+12:])
}

func TestBridgeWithdrawCalldata(t *testing.T) {
	t.Parallel()

	raw := utils.MustHexDecode(BridgeWithdrawCalldata)
	require.Len(t, raw, 4+32+32)
	assert.Equal(t, []byte{0x87, 0x86, 0xdb, 0xa7}, raw[:4])
	assert.Equal(t, byte(0x12), raw[4])
	assert.Equal(t, byte(0x34), raw[5])
	assert.Equal(t, byte(0x01), raw[4+32])
}

func TestGenesisFixtures(t *testing.T) {
	t.Parallel()

	slot0, err := utils.HexToBytes32(BridgeStorageSlot0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), slot0[31])

	data := utils.MustHexDecode(OperatorUpdatedData)
	require.Len(t, data, 64)
	// Operator goes from the zero address to the system caller.
	assert.Equal(t, make([]byte, 32), data[:32])
	assert.Equal(t, SystemCaller.Bytes(), data[32+12:])

	ret := utils.MustHexDecode(SystemCallerReturnValue)
	require.Len(t, ret, 32)
	assert.Equal(t, SystemCaller.Bytes(), ret[12:])
}

func TestUnpackWETHName(t *testing.T) {
	t.Parallel()

	// ABI-encoded return of name(): offset, length, padded string.
	word := func(n int64) []byte {
		return new(big.Int).SetInt64(n).FillBytes(make([]byte, 32))
	}
	padded := make([]byte, 32)
	copy(padded, WETHName)

	ret := append(append(word(0x20), word(int64(len(WETHName)))...), padded...)
	name, err := UnpackWETHName(ret)
	require.NoError(t, err)
	assert.Equal(t, "Wrapped Ether", name)

	_, err = UnpackWETHName([]byte{0x01})
	require.Error(t, err)
}

func TestUnpackWETHBalanceOf(t *testing.T) {
	t.Parallel()

	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	ret := want.FillBytes(make([]byte, 32))

	got, err := UnpackWETHBalanceOf(ret)
	require.NoError(t, err)
	assert.Zero(t, want.Cmp(got))

	_, err = UnpackWETHBalanceOf([]byte{0x01})
	require.Error(t, err)
}

func TestBytecodeLiterals(t *testing.T) {
	t.Parallel()

	initCode := utils.MustHexDecode(WETHInitCode)
	assert.NotEmpty(t, initCode)
	// Solidity init code starts with a free-memory-pointer setup.
	assert.Equal(t, byte(0x60), initCode[0])

	runtime := utils.MustHexDecode(LightClientRuntimeCode)
	assert.NotEmpty(t, runtime)
	assert.Equal(t, byte(0x60), runtime[0])
}
