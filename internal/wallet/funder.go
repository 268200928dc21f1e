package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/rolluplabs/evm-conformance/internal/chainclient"
)

// fundingGasLimit leaves room for the data-availability fee the rollup adds
// on top of the 21000 transfer floor.
const fundingGasLimit = 200_000

// Funder hands out freshly generated accounts funded from a single root
// account. The root account's nonce is the only state shared across checks;
// the funder holds its own mutex across the entire sign, send and wait of
// every root submission, so a transaction with nonce n is always accepted by
// the node before nonce n+1 is signed. Checks then run concurrently on their
// own accounts without nonce races.
type Funder struct {
	root   *Account
	client chainclient.NodeClient
	log    *zap.SugaredLogger

	// mu spans whole root submissions, not just nonce allocation. The
	// account mutex alone would let two signed transactions race to the
	// node out of nonce order.
	mu sync.Mutex
}

// NewFunder creates a funder around the root fixture account. The root
// account's nonce must already be synced.
func NewFunder(root *Account, client chainclient.NodeClient, log *zap.SugaredLogger) *Funder {
	return &Funder{root: root, client: client, log: log}
}

// Root returns the root fixture account.
func (f *Funder) Root() *Account {
	return f.root
}

// NewFundedAccount generates a throwaway account and transfers amount wei to
// it from the root account, blocking until the funding transaction is mined.
// Root submissions are fully serialized; concurrent callers queue here.
func (f *Funder) NewFundedAccount(ctx context.Context, amount *big.Int) (*Account, error) {
	acct, err := NewRandom(f.root.chainID)
	if err != nil {
		return nil, err
	}

	gasPrice, err := f.client.GasPrice(ctx)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	to := acct.Address()
	tx, receipt, err := f.root.Submit(ctx, f.client, TxSpec{
		To:       &to,
		Value:    amount,
		Gas:      fundingGasLimit,
		GasPrice: gasPrice,
	})
	f.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("fund %s: %w", to, err)
	}
	if receipt.Status != 1 {
		return nil, fmt.Errorf("funding tx %s reverted", tx.Hash())
	}
	f.log.Debugw("funded account", "address", to, "amount", amount, "tx", tx.Hash())

	if err := acct.SyncNonce(ctx, f.client); err != nil {
		return nil, err
	}
	return acct, nil
}
