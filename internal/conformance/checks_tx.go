package conformance

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"

	"github.com/rolluplabs/evm-conformance/internal/conformance/contracts"
	"github.com/rolluplabs/evm-conformance/pkg/revert"
	"github.com/rolluplabs/evm-conformance/pkg/utils"
)

// txChecks assert transaction and receipt retrieval, gas estimation and
// access-list creation.
func txChecks() []Check {
	return []Check{
		{
			Name:       "transaction_by_hash",
			Desc:       "mined transaction is retrievable by hash with matching fields",
			NeedsFunds: true,
			Run: func(ctx context.Context, env *Env) error {
				acct, seedTx, _, err := env.Seed(ctx)
				if err != nil {
					return err
				}

				tx, pending, err := env.Client.TransactionByHash(ctx, seedTx.Hash())
				if err != nil {
					return err
				}
				if pending {
					return fmt.Errorf("transaction %s still pending after receipt", seedTx.Hash())
				}
				if tx.Hash() != seedTx.Hash() {
					return fmt.Errorf("hash %s, want %s", tx.Hash(), seedTx.Hash())
				}
				from, err := types.Sender(types.LatestSignerForChainID(acct.ChainID()), tx)
				if err != nil {
					return fmt.Errorf("recover sender: %w", err)
				}
				if from != acct.Address() {
					return fmt.Errorf("sender %s, want %s", from, acct.Address())
				}
				if tx.To() == nil || *tx.To() != (common.Address{}) {
					return fmt.Errorf("recipient %v, want zero address", tx.To())
				}
				return nil
			},
		},
		{
			Name:       "transaction_by_block_index",
			Desc:       "transaction is retrievable by (block hash, index)",
			NeedsFunds: true,
			Run: func(ctx context.Context, env *Env) error {
				_, seedTx, receipt, err := env.Seed(ctx)
				if err != nil {
					return err
				}
				tx, err := env.Client.TransactionInBlock(ctx, receipt.BlockHash, receipt.TransactionIndex)
				if err != nil {
					return err
				}
				if tx.Hash() != seedTx.Hash() {
					return fmt.Errorf("tx at (%s, %d) has hash %s, want %s",
						receipt.BlockHash, receipt.TransactionIndex, tx.Hash(), seedTx.Hash())
				}
				return nil
			},
		},
		{
			Name:       "receipt_fields",
			Desc:       "receipt carries parties, status and positive rollup fee fields",
			NeedsFunds: true,
			Run: func(ctx context.Context, env *Env) error {
				acct, seedTx, receipt, err := env.Seed(ctx)
				if err != nil {
					return err
				}
				if receipt.TxHash != seedTx.Hash() {
					return fmt.Errorf("receipt hash %s, want %s", receipt.TxHash, seedTx.Hash())
				}
				if receipt.Status != types.ReceiptStatusSuccessful {
					return fmt.Errorf("receipt status %d, want 1", receipt.Status)
				}
				if receipt.From != acct.Address() {
					return fmt.Errorf("receipt sender %s, want %s", receipt.From, acct.Address())
				}
				if receipt.To == nil || *receipt.To != (common.Address{}) {
					return fmt.Errorf("receipt recipient %v, want zero address", receipt.To)
				}
				if receipt.L1FeeRate == nil || receipt.L1FeeRate.Sign() <= 0 {
					return fmt.Errorf("l1FeeRate %v, want > 0", receipt.L1FeeRate)
				}
				if receipt.L1DiffSize == nil || receipt.L1DiffSize.Sign() <= 0 {
					return fmt.Errorf("l1DiffSize %v, want > 0", receipt.L1DiffSize)
				}
				return nil
			},
		},
		{
			Name: "transaction_unknown_hash",
			Desc: "unknown tx hash fails with the exact not-found message",
			Run: func(ctx context.Context, env *Env) error {
				_, _, err := env.Client.TransactionByHash(ctx, unknownHash)
				if err == nil {
					return fmt.Errorf("lookup of unknown tx %s succeeded", unknownHash)
				}
				want := revert.TxNotFoundMessage(unknownHash)
				if err.Error() != want {
					return fmt.Errorf("error %q, want %q", err.Error(), want)
				}
				return nil
			},
		},
		{
			Name: "receipt_unknown_hash",
			Desc: "unknown receipt hash fails with the exact not-found message",
			Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.TransactionReceipt(ctx, unknownHash)
				if err == nil {
					return fmt.Errorf("receipt lookup of unknown tx %s succeeded", unknownHash)
				}
				want := revert.TxNotFoundMessage(unknownHash)
				if err.Error() != want {
					return fmt.Errorf("error %q, want %q", err.Error(), want)
				}
				return nil
			},
		},
		{
			Name: "estimate_gas",
			Desc: "transfer estimate respects the protocol floor",
			Run: func(ctx context.Context, env *Env) error {
				to := common.Address{}
				estimate, err := env.Client.EstimateGas(ctx, ethereum.CallMsg{
					From:  env.Funder.Root().Address(),
					To:    &to,
					Value: new(big.Int).SetInt64(params.Ether),
				})
				if err != nil {
					return err
				}
				// The data-availability fee is charged as extra gas on top of
				// the 21000 transfer floor, so the estimate may exceed it.
				if estimate < env.Expect.TransferGasFloor {
					return fmt.Errorf("estimate %d below floor %d", estimate, env.Expect.TransferGasFloor)
				}
				return nil
			},
		},
		{
			Name: "access_list",
			Desc: "eth_createAccessList returns a non-empty access list",
			Run: func(ctx context.Context, env *Env) error {
				res, err := env.Client.CreateAccessList(ctx, ethereum.CallMsg{
					From:     env.Funder.Root().Address(),
					To:       &contracts.BridgeContract,
					Value:    new(big.Int).Mul(big.NewInt(10), big.NewInt(params.Ether)),
					Gas:      200_000,
					GasPrice: big.NewInt(params.GWei),
					Data:     utils.MustHexDecode(contracts.BridgeWithdrawCalldata),
				})
				if err != nil {
					return err
				}
				if len(res.AccessList) == 0 {
					return fmt.Errorf("access list is empty")
				}
				return nil
			},
		},
	}
}
