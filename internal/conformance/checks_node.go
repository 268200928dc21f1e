package conformance

import (
	"context"
	"fmt"
	"math/big"
)

// nodeChecks cover connectivity, chain identity and fee queries.
func nodeChecks() []Check {
	return []Check{
		{
			Name: "connectivity",
			Desc: "endpoint answers a basic query",
			Run: func(ctx context.Context, env *Env) error {
				if _, err := env.Client.ChainID(ctx); err != nil {
					return fmt.Errorf("endpoint unreachable: %w", err)
				}
				return nil
			},
		},
		{
			Name: "chain_id",
			Desc: "eth_chainId matches the expected chain",
			Run: func(ctx context.Context, env *Env) error {
				id, err := env.Client.ChainID(ctx)
				if err != nil {
					return err
				}
				if id.Cmp(new(big.Int).SetUint64(env.Expect.ChainID)) != 0 {
					return fmt.Errorf("chain id %s, want %d", id, env.Expect.ChainID)
				}
				return nil
			},
		},
		{
			Name: "gas_price",
			Desc: "eth_gasPrice is positive",
			Run: func(ctx context.Context, env *Env) error {
				price, err := env.Client.GasPrice(ctx)
				if err != nil {
					return err
				}
				if price.Sign() <= 0 {
					return fmt.Errorf("gas price %s, want > 0", price)
				}
				return nil
			},
		},
		{
			Name: "max_priority_fee",
			Desc: "eth_maxPriorityFeePerGas is positive",
			Run: func(ctx context.Context, env *Env) error {
				fee, err := env.Client.MaxPriorityFee(ctx)
				if err != nil {
					return err
				}
				if fee.Sign() <= 0 {
					return fmt.Errorf("max priority fee %s, want > 0", fee)
				}
				return nil
			},
		},
		{
			Name: "block_number",
			Desc: "eth_blockNumber is positive",
			Run: func(ctx context.Context, env *Env) error {
				n, err := env.Client.BlockNumber(ctx)
				if err != nil {
					return err
				}
				if n == 0 {
					return fmt.Errorf("block number 0, want > 0")
				}
				return nil
			},
		},
		{
			Name: "fee_history",
			Desc: "eth_feeHistory reports gas usage for the genesis log block",
			Run: func(ctx context.Context, env *Env) error {
				block := new(big.Int).SetUint64(env.Expect.GenesisLogBlock)
				fh, err := env.Client.FeeHistory(ctx, 1, block, nil)
				if err != nil {
					return err
				}
				if len(fh.GasUsedRatio) == 0 {
					return fmt.Errorf("fee history has no gasUsedRatio entries")
				}
				if fh.GasUsedRatio[0] <= 0 {
					return fmt.Errorf("gasUsedRatio[0] = %f, want > 0", fh.GasUsedRatio[0])
				}
				return nil
			},
		},
	}
}
