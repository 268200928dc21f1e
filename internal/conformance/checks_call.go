package conformance

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"

	"github.com/rolluplabs/evm-conformance/internal/conformance/contracts"
	"github.com/rolluplabs/evm-conformance/pkg/revert"
	"github.com/rolluplabs/evm-conformance/pkg/utils"
)

// callChecks assert read-only execution: exact return bytes, both revert
// shapes, and log filtering.
func callChecks() []Check {
	return []Check{
		{
			Name: "call_exact_return",
			Desc: "SYSTEM_CALLER() returns the system caller address word",
			Run: func(ctx context.Context, env *Env) error {
				ret, err := env.Client.CallContract(ctx, ethereum.CallMsg{
					To:    &contracts.SystemCallerContract,
					Value: big.NewInt(0),
					Data:  contracts.SystemCallerSelector(),
				}, nil)
				if err != nil {
					return err
				}
				want := utils.MustHexDecode(contracts.SystemCallerReturnValue)
				if !bytes.Equal(ret, want) {
					return fmt.Errorf("return %s, want %s", hexutil.Encode(ret), contracts.SystemCallerReturnValue)
				}
				return nil
			},
		},
		{
			Name: "call_unknown_selector_reverts",
			Desc: "unknown selector reverts with no data",
			Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.CallContract(ctx, ethereum.CallMsg{
					To:    &contracts.SystemCallerContract,
					Value: big.NewInt(0),
					Data:  contracts.UnknownSelector(),
				}, nil)
				if err == nil {
					return fmt.Errorf("call with unknown selector succeeded")
				}
				decoded, ok := revert.Classify(err)
				if !ok {
					return fmt.Errorf("expected node-side error, got %w", err)
				}
				if decoded.Kind != revert.KindRevertNoData {
					return fmt.Errorf("error %q with data %q, want bare %q",
						decoded.Message, decoded.Data, revert.RevertedNoDataMessage())
				}
				if decoded.Message != revert.RevertedNoDataMessage() {
					return fmt.Errorf("error %q, want %q", decoded.Message, revert.RevertedNoDataMessage())
				}
				return nil
			},
		},
		{
			Name: "call_withdraw_reverts_with_reason",
			Desc: "under-minimum withdraw call rejects with the exact ABI-encoded reason",
			Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.CallContract(ctx, withdrawBelowMinimumMsg(env), nil)
				if err == nil {
					return fmt.Errorf("under-minimum withdraw call succeeded")
				}
				decoded, ok := revert.Classify(err)
				if !ok {
					return fmt.Errorf("expected node-side error, got %w", err)
				}
				if wantMsg := revert.RevertedMessage(contracts.WithdrawRevertReason); decoded.Message != wantMsg {
					return fmt.Errorf("error %q, want %q", decoded.Message, wantMsg)
				}
				if wantData := revert.EncodeReason(contracts.WithdrawRevertReason); decoded.Data != wantData {
					return fmt.Errorf("revert data %s, want %s", decoded.Data, wantData)
				}
				return nil
			},
		},
		{
			Name: "logs_by_topic",
			Desc: "genesis OperatorUpdated log is returned with exact address and data",
			Run: func(ctx context.Context, env *Env) error {
				block := new(big.Int).SetUint64(env.Expect.GenesisLogBlock)
				logs, err := env.Client.FilterLogs(ctx, ethereum.FilterQuery{
					FromBlock: block,
					ToBlock:   block,
					Topics:    [][]common.Hash{{contracts.OperatorUpdatedTopic}},
				})
				if err != nil {
					return err
				}
				if len(logs) == 0 {
					return fmt.Errorf("no logs for topic %s in block %s", contracts.OperatorUpdatedTopic, block)
				}
				if logs[0].Address != contracts.BridgeContract {
					return fmt.Errorf("log address %s, want %s", logs[0].Address, contracts.BridgeContract)
				}
				want := utils.MustHexDecode(contracts.OperatorUpdatedData)
				if !bytes.Equal(logs[0].Data, want) {
					return fmt.Errorf("log data %s, want %s", hexutil.Encode(logs[0].Data), contracts.OperatorUpdatedData)
				}
				return nil
			},
		},
		{
			Name: "logs_unmatched_topic",
			Desc: "filtering on a non-existent topic yields empty, not an error",
			Run: func(ctx context.Context, env *Env) error {
				block := new(big.Int).SetUint64(env.Expect.GenesisLogBlock)
				logs, err := env.Client.FilterLogs(ctx, ethereum.FilterQuery{
					FromBlock: block,
					ToBlock:   block,
					Topics:    [][]common.Hash{{unknownHash}},
				})
				if err != nil {
					return fmt.Errorf("unmatched topic filter errored: %w", err)
				}
				if len(logs) != 0 {
					return fmt.Errorf("got %d logs for a topic that matches nothing", len(logs))
				}
				return nil
			},
		},
	}
}

// withdrawBelowMinimumMsg is the bridge withdraw call with 0.9 ether
// attached, below the 1 ether minimum.
func withdrawBelowMinimumMsg(env *Env) ethereum.CallMsg {
	value := new(big.Int).Mul(big.NewInt(9), big.NewInt(params.Ether))
	value.Div(value, big.NewInt(10))
	return ethereum.CallMsg{
		From:     env.Funder.Root().Address(),
		To:       &contracts.BridgeContract,
		Value:    value,
		Gas:      200_000,
		GasPrice: big.NewInt(params.GWei),
		Data:     utils.MustHexDecode(contracts.BridgeWithdrawCalldata),
	}
}
