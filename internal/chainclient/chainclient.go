package chainclient

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Receipt is a post-inclusion transaction record extended with the rollup
// fee fields the node reports alongside the standard Ethereum receipt.
type Receipt struct {
	TxHash            common.Hash
	Status            uint64
	From              common.Address
	To                *common.Address
	ContractAddress   *common.Address
	BlockHash         common.Hash
	BlockNumber       *big.Int
	TransactionIndex  uint
	GasUsed           uint64
	EffectiveGasPrice *big.Int
	L1FeeRate         *big.Int
	L1DiffSize        *big.Int
	Logs              []*types.Log
}

// AccessListResult is the response of an access-list creation call.
type AccessListResult struct {
	AccessList types.AccessList
	GasUsed    uint64
	Error      string
}

// NodeClient is the RPC surface of the execution node under test. All methods
// are synchronous request/response; WaitForReceipt blocks until the
// transaction reaches a terminal inclusion state or the context expires.
type NodeClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	MaxPriorityFee(ctx context.Context) (*big.Int, error)

	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	StorageAt(ctx context.Context, account common.Address, slot common.Hash, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)

	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	BlockByHash(ctx context.Context, hash common.Hash) (*types.Block, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	TransactionCountByNumber(ctx context.Context, number *big.Int) (uint, error)
	TransactionCountByHash(ctx context.Context, hash common.Hash) (uint, error)

	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionInBlock(ctx context.Context, blockHash common.Hash, index uint) (*types.Transaction, error)
	TransactionReceipt(ctx context.Context, hash common.Hash) (*Receipt, error)
	WaitForReceipt(ctx context.Context, hash common.Hash) (*Receipt, error)

	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CreateAccessList(ctx context.Context, msg ethereum.CallMsg) (*AccessListResult, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	FeeHistory(ctx context.Context, blockCount uint64, lastBlock *big.Int, rewardPercentiles []float64) (*ethereum.FeeHistory, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	Close()
}
