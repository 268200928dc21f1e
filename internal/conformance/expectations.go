package conformance

import (
	"fmt"
	"math/big"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/params"
)

// Expectations are the fixture literals the node under test must reproduce.
// Defaults match the reference devnet genesis; overrides come from the
// environment so the same binary can target other deployments.
type Expectations struct {
	ChainID uint64 `env:"CONFORMANCE_CHAIN_ID" envDefault:"5655"`

	// BridgeBalanceFloorEther is the minimum pre-minted balance of the
	// bridge system contract, in whole ether.
	BridgeBalanceFloorEther int64 `env:"CONFORMANCE_BRIDGE_BALANCE_FLOOR_ETHER" envDefault:"21000000"`

	// GenesisLogBlock is the block carrying the genesis OperatorUpdated log.
	GenesisLogBlock uint64 `env:"CONFORMANCE_GENESIS_LOG_BLOCK" envDefault:"1"`

	// GenesisBlockTxCount is the expected transaction count of that block.
	GenesisBlockTxCount uint `env:"CONFORMANCE_GENESIS_BLOCK_TX_COUNT" envDefault:"3"`

	// TransferGasFloor is the protocol minimum for a plain transfer. Gas
	// estimates may exceed it by the node's data-availability fee share but
	// must never fall below it.
	TransferGasFloor uint64 `env:"CONFORMANCE_TRANSFER_GAS_FLOOR" envDefault:"21000"`
}

// LoadExpectations reads expectation overrides from environment variables.
func LoadExpectations() (Expectations, error) {
	var e Expectations
	if err := env.Parse(&e); err != nil {
		return Expectations{}, fmt.Errorf("parse expectations from env: %w", err)
	}
	return e, nil
}

// BridgeBalanceFloor returns the bridge balance floor in wei.
func (e Expectations) BridgeBalanceFloor() *big.Int {
	return new(big.Int).Mul(big.NewInt(e.BridgeBalanceFloorEther), big.NewInt(params.Ether))
}
