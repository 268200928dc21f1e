package conformance

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rolluplabs/evm-conformance/pkg/revert"
)

// unknownHash is an identifier no chain can contain; lookups with it must
// fail with the node's exact not-found message.
var unknownHash = common.HexToHash("0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")

// blockChecks assert block retrieval by tag, number and hash, and the
// consistency of those views with each other and with receipts.
func blockChecks() []Check {
	return []Check{
		{
			Name: "block_latest_consistency",
			Desc: "get-block(latest) agrees with eth_blockNumber",
			Run: func(ctx context.Context, env *Env) error {
				// The chain may advance between the two queries; one retry
				// distinguishes that from a genuinely inconsistent view.
				var lastErr error
				for range 2 {
					block, err := env.Client.BlockByNumber(ctx, nil)
					if err != nil {
						return err
					}
					n, err := env.Client.BlockNumber(ctx)
					if err != nil {
						return err
					}
					if block.NumberU64() == n {
						return nil
					}
					lastErr = fmt.Errorf("latest block %d but eth_blockNumber %d", block.NumberU64(), n)
				}
				return lastErr
			},
		},
		{
			Name:       "block_by_number_and_hash",
			Desc:       "block lookups by number and by hash agree with a known receipt",
			NeedsFunds: true,
			Run: func(ctx context.Context, env *Env) error {
				_, _, receipt, err := env.Seed(ctx)
				if err != nil {
					return err
				}

				byNumber, err := env.Client.BlockByNumber(ctx, receipt.BlockNumber)
				if err != nil {
					return err
				}
				if byNumber.Hash() != receipt.BlockHash {
					return fmt.Errorf("block %s by number has hash %s, receipt says %s",
						receipt.BlockNumber, byNumber.Hash(), receipt.BlockHash)
				}

				byHash, err := env.Client.BlockByHash(ctx, receipt.BlockHash)
				if err != nil {
					return err
				}
				if byHash.Hash() != receipt.BlockHash {
					return fmt.Errorf("block by hash %s returned hash %s", receipt.BlockHash, byHash.Hash())
				}

				header, err := env.Client.HeaderByNumber(ctx, receipt.BlockNumber)
				if err != nil {
					return err
				}
				if header.Hash() != receipt.BlockHash {
					return fmt.Errorf("header %s by number has hash %s, receipt says %s",
						receipt.BlockNumber, header.Hash(), receipt.BlockHash)
				}
				return nil
			},
		},
		{
			Name: "block_tx_count",
			Desc: "block transaction count agrees between number and hash lookups",
			Run: func(ctx context.Context, env *Env) error {
				number := new(big.Int).SetUint64(env.Expect.GenesisLogBlock)

				byNumber, err := env.Client.TransactionCountByNumber(ctx, number)
				if err != nil {
					return err
				}
				if byNumber != env.Expect.GenesisBlockTxCount {
					return fmt.Errorf("block %s has %d transactions, want %d",
						number, byNumber, env.Expect.GenesisBlockTxCount)
				}

				block, err := env.Client.BlockByNumber(ctx, number)
				if err != nil {
					return err
				}
				byHash, err := env.Client.TransactionCountByHash(ctx, block.Hash())
				if err != nil {
					return err
				}
				if byHash != byNumber {
					return fmt.Errorf("tx count by hash %d != by number %d", byHash, byNumber)
				}
				return nil
			},
		},
		{
			Name: "block_unknown_hash",
			Desc: "unknown block hash fails with the exact not-found message",
			Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.BlockByHash(ctx, unknownHash)
				if err == nil {
					return fmt.Errorf("lookup of unknown block %s succeeded", unknownHash)
				}
				want := revert.BlockNotFoundMessage(unknownHash.Hex())
				if err.Error() != want {
					return fmt.Errorf("error %q, want %q", err.Error(), want)
				}
				return nil
			},
		},
	}
}
