package conformance

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"go.uber.org/zap"

	"github.com/rolluplabs/evm-conformance/internal/chainclient"
	"github.com/rolluplabs/evm-conformance/internal/wallet"
	"github.com/rolluplabs/evm-conformance/pkg/metrics"
)

// defaultFundingAmount covers one scenario's worth of value transfers and
// gas on a fresh account.
var defaultFundingAmount = new(big.Int).Mul(big.NewInt(3), big.NewInt(params.Ether))

// Env is the shared context checks run in: the endpoint handle, the account
// funder, the fixture expectations, and observability. Checks never share
// mutable state beyond this; accounts are handed out per check.
type Env struct {
	Client  chainclient.NodeClient
	Funder  *wallet.Funder
	Expect  Expectations
	Log     *zap.SugaredLogger
	Metrics *metrics.Metrics

	seedOnce    sync.Once
	seedAccount *wallet.Account
	seedTx      *types.Transaction
	seedReceipt *chainclient.Receipt
	seedErr     error
}

// FundedAccount hands the calling check a fresh account with enough balance
// for one scenario.
func (e *Env) FundedAccount(ctx context.Context) (*wallet.Account, error) {
	return e.Funder.NewFundedAccount(ctx, defaultFundingAmount)
}

// Seed returns a mined reference transaction: a small transfer to the zero
// address from a dedicated account. Checks that only need some included
// transaction to query against share this one; it is submitted at most once
// and blocks until inclusion, so no dependent assertion can race it.
func (e *Env) Seed(ctx context.Context) (*wallet.Account, *types.Transaction, *chainclient.Receipt, error) {
	e.seedOnce.Do(func() {
		acct, err := e.FundedAccount(ctx)
		if err != nil {
			e.seedErr = fmt.Errorf("fund seed account: %w", err)
			return
		}

		gasPrice, err := e.Client.GasPrice(ctx)
		if err != nil {
			e.seedErr = err
			return
		}

		to := common.Address{}
		tx, receipt, err := acct.Submit(ctx, e.Client, wallet.TxSpec{
			To:       &to,
			Value:    big.NewInt(params.GWei),
			Gas:      200_000,
			GasPrice: gasPrice,
		})
		if err != nil {
			e.seedErr = fmt.Errorf("submit seed transfer: %w", err)
			return
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			e.seedErr = fmt.Errorf("seed transfer %s reverted", tx.Hash())
			return
		}

		e.seedAccount = acct
		e.seedTx = tx
		e.seedReceipt = receipt
		e.Log.Debugw("seed transfer mined",
			"tx", tx.Hash(),
			"block", receipt.BlockNumber,
		)
	})
	return e.seedAccount, e.seedTx, e.seedReceipt, e.seedErr
}
