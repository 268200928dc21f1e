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
	"github.com/rolluplabs/evm-conformance/internal/wallet"
	"github.com/rolluplabs/evm-conformance/pkg/revert"
	"github.com/rolluplabs/evm-conformance/pkg/utils"
)

const (
	deployGasLimit = 2_000_000
	callGasLimit   = 200_000
)

// contractChecks run full write scenarios on a fresh funded account: a WETH
// deploy-and-deposit round trip, and a withdraw that must mine with status 0.
func contractChecks() []Check {
	return []Check{
		{
			Name:       "weth_deposit_scenario",
			Desc:       "deploy WETH, deposit 1 ether, read the balance back",
			NeedsFunds: true,
			Run: func(ctx context.Context, env *Env) error {
				acct, err := env.FundedAccount(ctx)
				if err != nil {
					return err
				}
				gasPrice := big.NewInt(params.GWei)

				deployTx, deployReceipt, err := acct.Submit(ctx, env.Client, wallet.TxSpec{
					Value:    big.NewInt(0),
					Gas:      deployGasLimit,
					GasPrice: gasPrice,
					Data:     utils.MustHexDecode(contracts.WETHInitCode),
				})
				if err != nil {
					return fmt.Errorf("deploy: %w", err)
				}
				if deployReceipt.Status != types.ReceiptStatusSuccessful {
					return fmt.Errorf("deploy tx %s reverted", deployTx.Hash())
				}
				token := deployReceipt.ContractAddress
				if token == nil {
					return fmt.Errorf("deploy receipt %s has no contract address", deployTx.Hash())
				}

				ret, err := env.Client.CallContract(ctx, ethereum.CallMsg{
					To:   token,
					Data: contracts.PackWETHName(),
				}, nil)
				if err != nil {
					return fmt.Errorf("name(): %w", err)
				}
				name, err := contracts.UnpackWETHName(ret)
				if err != nil {
					return err
				}
				if name != contracts.WETHName {
					return fmt.Errorf("token name %q, want %q", name, contracts.WETHName)
				}

				balance, err := wethBalance(ctx, env, *token, acct)
				if err != nil {
					return err
				}
				if balance.Sign() != 0 {
					return fmt.Errorf("balance before deposit %s, want 0", balance)
				}

				deposit := new(big.Int).SetInt64(params.Ether)
				depositTx, depositReceipt, err := acct.Submit(ctx, env.Client, wallet.TxSpec{
					To:       token,
					Value:    deposit,
					Gas:      callGasLimit,
					GasPrice: gasPrice,
					Data:     contracts.PackWETHDeposit(),
				})
				if err != nil {
					return fmt.Errorf("deposit: %w", err)
				}
				if depositReceipt.Status != types.ReceiptStatusSuccessful {
					return fmt.Errorf("deposit tx %s reverted", depositTx.Hash())
				}

				balance, err = wethBalance(ctx, env, *token, acct)
				if err != nil {
					return err
				}
				if balance.Cmp(deposit) != 0 {
					return fmt.Errorf("balance after deposit %s, want %s", balance, deposit)
				}
				return nil
			},
		},
		{
			Name:       "bridge_withdraw_reverted_tx",
			Desc:       "under-minimum withdraw fails in simulation and mines with status 0",
			NeedsFunds: true,
			Run: func(ctx context.Context, env *Env) error {
				acct, err := env.FundedAccount(ctx)
				if err != nil {
					return err
				}

				// The node must reject the call in simulation with the
				// contract's reason before the transaction is ever submitted.
				msg := withdrawBelowMinimumMsg(env)
				msg.From = acct.Address()
				_, err = env.Client.CallContract(ctx, msg, nil)
				if err == nil {
					return fmt.Errorf("under-minimum withdraw simulation succeeded")
				}
				decoded, ok := revert.Classify(err)
				if !ok {
					return fmt.Errorf("expected node-side error, got %w", err)
				}
				if wantMsg := revert.RevertedMessage(contracts.WithdrawRevertReason); decoded.Message != wantMsg {
					return fmt.Errorf("simulation error %q, want %q", decoded.Message, wantMsg)
				}

				// Submitting anyway must still mine, with a failed receipt.
				tx, receipt, err := acct.Submit(ctx, env.Client, wallet.TxSpec{
					To:       &contracts.BridgeContract,
					Value:    msg.Value,
					Gas:      callGasLimit,
					GasPrice: big.NewInt(params.GWei),
					Data:     utils.MustHexDecode(contracts.BridgeWithdrawCalldata),
				})
				if err != nil {
					return fmt.Errorf("submit withdraw: %w", err)
				}
				if receipt.Status != types.ReceiptStatusFailed {
					return fmt.Errorf("withdraw tx %s has status %d, want 0", tx.Hash(), receipt.Status)
				}
				return nil
			},
		},
	}
}

func wethBalance(ctx context.Context, env *Env, token common.Address, acct *wallet.Account) (*big.Int, error) {
	ret, err := env.Client.CallContract(ctx, ethereum.CallMsg{
		To:   &token,
		Data: contracts.PackWETHBalanceOf(acct.Address()),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("balanceOf(%s): %w", acct.Address(), err)
	}
	return contracts.UnpackWETHBalanceOf(ret)
}
