package conformance

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rolluplabs/evm-conformance/internal/conformance/contracts"
	"github.com/rolluplabs/evm-conformance/pkg/utils"
)

// stateChecks assert account state the genesis fixture pins down exactly:
// the bridge balance and storage, and the light client bytecode.
func stateChecks() []Check {
	return []Check{
		{
			Name: "balance_floor",
			Desc: "bridge contract holds at least the pre-minted supply",
			Run: func(ctx context.Context, env *Env) error {
				balance, err := env.Client.BalanceAt(ctx, contracts.BridgeContract, nil)
				if err != nil {
					return err
				}
				if floor := env.Expect.BridgeBalanceFloor(); balance.Cmp(floor) < 0 {
					return fmt.Errorf("bridge balance %s below floor %s", balance, floor)
				}
				return nil
			},
		},
		{
			Name: "storage_slot",
			Desc: "bridge storage slot 0 has the genesis value",
			Run: func(ctx context.Context, env *Env) error {
				got, err := env.Client.StorageAt(ctx, contracts.BridgeContract, common.Hash{}, nil)
				if err != nil {
					return err
				}
				want, err := utils.HexToBytes32(contracts.BridgeStorageSlot0)
				if err != nil {
					return err
				}
				if !bytes.Equal(got, want[:]) {
					return fmt.Errorf("storage slot 0 = %s, want %s", hexutil.Encode(got), contracts.BridgeStorageSlot0)
				}
				return nil
			},
		},
		{
			Name: "code_exact",
			Desc: "light client contract reports its exact runtime bytecode",
			Run: func(ctx context.Context, env *Env) error {
				got, err := env.Client.CodeAt(ctx, contracts.LightClientContract, nil)
				if err != nil {
					return err
				}
				want := utils.MustHexDecode(contracts.LightClientRuntimeCode)
				if !bytes.Equal(got, want) {
					return fmt.Errorf("runtime code mismatch: got %d bytes, want %d bytes", len(got), len(want))
				}
				return nil
			},
		},
		{
			Name:       "account_nonce",
			Desc:       "nonce increases after a submitted transaction",
			NeedsFunds: true,
			Run: func(ctx context.Context, env *Env) error {
				acct, _, _, err := env.Seed(ctx)
				if err != nil {
					return err
				}
				nonce, err := env.Client.NonceAt(ctx, acct.Address(), nil)
				if err != nil {
					return err
				}
				if nonce == 0 {
					return fmt.Errorf("nonce of %s is 0 after a mined transaction", acct.Address())
				}
				return nil
			},
		},
	}
}
