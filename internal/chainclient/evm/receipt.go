package evm

import (
	"context"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/rolluplabs/evm-conformance/internal/chainclient"
)

// rpcReceipt is the wire form of eth_getTransactionReceipt including the
// rollup fee fields the node appends to the standard Ethereum receipt.
type rpcReceipt struct {
	TransactionHash   common.Hash     `json:"transactionHash"`
	TransactionIndex  hexutil.Uint    `json:"transactionIndex"`
	Status            hexutil.Uint64  `json:"status"`
	From              common.Address  `json:"from"`
	To                *common.Address `json:"to"`
	ContractAddress   *common.Address `json:"contractAddress"`
	BlockHash         common.Hash     `json:"blockHash"`
	BlockNumber       *hexutil.Big    `json:"blockNumber"`
	GasUsed           hexutil.Uint64  `json:"gasUsed"`
	EffectiveGasPrice *hexutil.Big    `json:"effectiveGasPrice"`
	L1FeeRate         *hexutil.Big    `json:"l1FeeRate"`
	L1DiffSize        *hexutil.Big    `json:"l1DiffSize"`
	Logs              []*types.Log    `json:"logs"`
}

// accessListResult is the wire form of eth_createAccessList.
type accessListResult struct {
	AccessList *types.AccessList `json:"accessList"`
	Error      string            `json:"error,omitempty"`
	GasUsed    hexutil.Uint64    `json:"gasUsed"`
}

// TransactionReceipt fetches a receipt through the raw RPC client so the
// rollup-specific fields survive decoding. ethclient's typed receipt drops
// unknown fields.
func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (r *chainclient.Receipt, err error) {
	defer func(start time.Time) { c.record("TransactionReceipt", start, err) }(c.begin())

	var raw *rpcReceipt
	err = c.rpc.CallContext(ctx, &raw, "eth_getTransactionReceipt", hash)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ethereum.NotFound
	}

	r = &chainclient.Receipt{
		TxHash:           raw.TransactionHash,
		TransactionIndex: uint(raw.TransactionIndex),
		Status:           uint64(raw.Status),
		From:             raw.From,
		To:               raw.To,
		ContractAddress:  raw.ContractAddress,
		BlockHash:        raw.BlockHash,
		GasUsed:          uint64(raw.GasUsed),
		Logs:             raw.Logs,
	}
	if raw.BlockNumber != nil {
		r.BlockNumber = raw.BlockNumber.ToInt()
	}
	if raw.EffectiveGasPrice != nil {
		r.EffectiveGasPrice = raw.EffectiveGasPrice.ToInt()
	}
	if raw.L1FeeRate != nil {
		r.L1FeeRate = raw.L1FeeRate.ToInt()
	}
	if raw.L1DiffSize != nil {
		r.L1DiffSize = raw.L1DiffSize.ToInt()
	}
	return r, nil
}

// isNotFoundMessage reports whether the node signalled an unknown identifier
// through its error message rather than a null result. The node under test
// answers unknown receipt lookups with an explicit error.
func isNotFoundMessage(err error) bool {
	if err == nil {
		return false
	}
	return strings.HasSuffix(err.Error(), "not found.")
}
