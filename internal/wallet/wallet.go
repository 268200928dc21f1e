// Package wallet holds the test accounts the harness signs with. Signing is
// always local; the node is never asked to sign anything.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/rolluplabs/evm-conformance/internal/chainclient"
)

// TxSpec describes a transaction to sign. The nonce is allocated by the
// account, everything else comes from the caller.
type TxSpec struct {
	To       *common.Address // nil deploys a contract
	Value    *big.Int
	Gas      uint64
	GasPrice *big.Int
	Data     []byte
}

// Account is an address plus the private key that controls it. The nonce
// sequence is strictly increasing and guarded by a mutex, so concurrent
// signers on the same account never collide.
type Account struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	signer  types.Signer

	mu     sync.Mutex
	nonce  uint64
	synced bool
}

// FromHexKey builds an account from a hex-encoded secp256k1 private key,
// with or without the 0x prefix.
func FromHexKey(hexKey string, chainID *big.Int) (*Account, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return newAccount(key, chainID), nil
}

// NewRandom generates a throwaway account. Used by the funder to give each
// check its own nonce sequence.
func NewRandom(chainID *big.Int) (*Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return newAccount(key, chainID), nil
}

func newAccount(key *ecdsa.PrivateKey, chainID *big.Int) *Account {
	return &Account{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		signer:  types.LatestSignerForChainID(chainID),
	}
}

// Address returns the account's address.
func (a *Account) Address() common.Address {
	return a.address
}

// ChainID returns the chain the account signs for.
func (a *Account) ChainID() *big.Int {
	return new(big.Int).Set(a.chainID)
}

// SyncNonce seeds the local nonce counter from the node's pending state.
// Must be called once before the first SignTx; later calls resynchronize.
func (a *Account) SyncNonce(ctx context.Context, client chainclient.NodeClient) error {
	nonce, err := client.PendingNonceAt(ctx, a.address)
	if err != nil {
		return fmt.Errorf("sync nonce of %s: %w", a.address, err)
	}
	a.mu.Lock()
	a.nonce = nonce
	a.synced = true
	a.mu.Unlock()
	return nil
}

// SignTx allocates the next nonce and signs a legacy transaction for the
// given spec.
func (a *Account) SignTx(spec TxSpec) (*types.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.synced {
		return nil, fmt.Errorf("account %s: nonce not synced", a.address)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    a.nonce,
		To:       spec.To,
		Value:    spec.Value,
		Gas:      spec.Gas,
		GasPrice: spec.GasPrice,
		Data:     spec.Data,
	})
	signed, err := types.SignTx(tx, a.signer, a.key)
	if err != nil {
		return nil, fmt.Errorf("sign tx from %s: %w", a.address, err)
	}
	a.nonce++
	return signed, nil
}

// Submit signs the spec, sends it, and blocks until the node reports a
// terminal receipt. The returned receipt may carry status 0; rejecting
// reverted transactions is the caller's decision.
func (a *Account) Submit(ctx context.Context, client chainclient.NodeClient, spec TxSpec) (*types.Transaction, *chainclient.Receipt, error) {
	tx, err := a.SignTx(spec)
	if err != nil {
		return nil, nil, err
	}
	if err := client.SendTransaction(ctx, tx); err != nil {
		return nil, nil, err
	}
	receipt, err := client.WaitForReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, nil, err
	}
	return tx, receipt, nil
}
