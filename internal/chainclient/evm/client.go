// Package evm implements chainclient.NodeClient against an Ethereum-style
// JSON-RPC endpoint using go-ethereum's rpc and ethclient packages.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/rolluplabs/evm-conformance/internal/chainclient"
	"github.com/rolluplabs/evm-conformance/pkg/metrics"
)

const (
	defaultReceiptPollInterval = 200 * time.Millisecond
	defaultReceiptTimeout      = 30 * time.Second
)

// Client wraps the underlying RPC and eth clients.
type Client struct {
	rpc     *rpc.Client
	eth     *ethclient.Client
	metrics *metrics.Metrics // nil if metrics disabled

	receiptPollInterval time.Duration
	receiptTimeout      time.Duration
}

var _ chainclient.NodeClient = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithMetrics enables per-call metrics collection for the client.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithReceiptTimeout bounds how long WaitForReceipt polls before failing.
func WithReceiptTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.receiptTimeout = d
	}
}

// WithReceiptPollInterval sets the interval between receipt polls.
func WithReceiptPollInterval(d time.Duration) Option {
	return func(c *Client) {
		c.receiptPollInterval = d
	}
}

// Dial connects to the node's JSON-RPC endpoint.
func Dial(ctx context.Context, url string, opts ...Option) (*Client, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial node rpc: %w", err)
	}

	client := &Client{
		rpc:                 c,
		eth:                 ethclient.NewClient(c),
		receiptPollInterval: defaultReceiptPollInterval,
		receiptTimeout:      defaultReceiptTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// record finishes per-call instrumentation started with begin.
func (c *Client) record(method string, start time.Time, err error) {
	if c.metrics != nil {
		c.metrics.DecRPCInFlight()
		c.metrics.RecordRPCCall(method, err, time.Since(start).Seconds())
	}
}

func (c *Client) begin() time.Time {
	if c.metrics != nil {
		c.metrics.IncRPCInFlight()
	}
	return time.Now()
}

func (c *Client) ChainID(ctx context.Context) (id *big.Int, err error) {
	defer func(start time.Time) { c.record("ChainID", start, err) }(c.begin())
	id, err = c.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	return id, nil
}

func (c *Client) BlockNumber(ctx context.Context) (n uint64, err error) {
	defer func(start time.Time) { c.record("BlockNumber", start, err) }(c.begin())
	n, err = c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return n, nil
}

func (c *Client) GasPrice(ctx context.Context) (p *big.Int, err error) {
	defer func(start time.Time) { c.record("GasPrice", start, err) }(c.begin())
	p, err = c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("get gas price: %w", err)
	}
	return p, nil
}

func (c *Client) MaxPriorityFee(ctx context.Context) (p *big.Int, err error) {
	defer func(start time.Time) { c.record("MaxPriorityFee", start, err) }(c.begin())
	p, err = c.eth.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("get max priority fee: %w", err)
	}
	return p, nil
}

func (c *Client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (b *big.Int, err error) {
	defer func(start time.Time) { c.record("BalanceAt", start, err) }(c.begin())
	b, err = c.eth.BalanceAt(ctx, account, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("get balance of %s: %w", account, err)
	}
	return b, nil
}

func (c *Client) StorageAt(ctx context.Context, account common.Address, slot common.Hash, blockNumber *big.Int) (v []byte, err error) {
	defer func(start time.Time) { c.record("StorageAt", start, err) }(c.begin())
	v, err = c.eth.StorageAt(ctx, account, slot, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("get storage %s of %s: %w", slot, account, err)
	}
	return v, nil
}

func (c *Client) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) (code []byte, err error) {
	defer func(start time.Time) { c.record("CodeAt", start, err) }(c.begin())
	code, err = c.eth.CodeAt(ctx, account, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("get code of %s: %w", account, err)
	}
	return code, nil
}

func (c *Client) NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (n uint64, err error) {
	defer func(start time.Time) { c.record("NonceAt", start, err) }(c.begin())
	n, err = c.eth.NonceAt(ctx, account, blockNumber)
	if err != nil {
		return 0, fmt.Errorf("get nonce of %s: %w", account, err)
	}
	return n, nil
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (n uint64, err error) {
	defer func(start time.Time) { c.record("PendingNonceAt", start, err) }(c.begin())
	n, err = c.eth.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("get pending nonce of %s: %w", account, err)
	}
	return n, nil
}

func (c *Client) BlockByNumber(ctx context.Context, number *big.Int) (b *types.Block, err error) {
	defer func(start time.Time) { c.record("BlockByNumber", start, err) }(c.begin())
	b, err = c.eth.BlockByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Client) BlockByHash(ctx context.Context, hash common.Hash) (b *types.Block, err error) {
	defer func(start time.Time) { c.record("BlockByHash", start, err) }(c.begin())
	b, err = c.eth.BlockByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Client) HeaderByNumber(ctx context.Context, number *big.Int) (h *types.Header, err error) {
	defer func(start time.Time) { c.record("HeaderByNumber", start, err) }(c.begin())
	h, err = c.eth.HeaderByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (c *Client) TransactionCountByNumber(ctx context.Context, number *big.Int) (n uint, err error) {
	defer func(start time.Time) { c.record("TransactionCountByNumber", start, err) }(c.begin())
	var count hexutil.Uint
	err = c.rpc.CallContext(ctx, &count, "eth_getBlockTransactionCountByNumber", toBlockNumArg(number))
	if err != nil {
		return 0, fmt.Errorf("get block transaction count: %w", err)
	}
	return uint(count), nil
}

func (c *Client) TransactionCountByHash(ctx context.Context, hash common.Hash) (n uint, err error) {
	defer func(start time.Time) { c.record("TransactionCountByHash", start, err) }(c.begin())
	n, err = c.eth.TransactionCount(ctx, hash)
	if err != nil {
		return 0, fmt.Errorf("get block transaction count for %s: %w", hash, err)
	}
	return n, nil
}

func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, pending bool, err error) {
	defer func(start time.Time) { c.record("TransactionByHash", start, err) }(c.begin())
	return c.eth.TransactionByHash(ctx, hash)
}

func (c *Client) TransactionInBlock(ctx context.Context, blockHash common.Hash, index uint) (tx *types.Transaction, err error) {
	defer func(start time.Time) { c.record("TransactionInBlock", start, err) }(c.begin())
	return c.eth.TransactionInBlock(ctx, blockHash, index)
}

func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) (ret []byte, err error) {
	defer func(start time.Time) { c.record("CallContract", start, err) }(c.begin())
	return c.eth.CallContract(ctx, msg, blockNumber)
}

func (c *Client) CreateAccessList(ctx context.Context, msg ethereum.CallMsg) (res *chainclient.AccessListResult, err error) {
	defer func(start time.Time) { c.record("CreateAccessList", start, err) }(c.begin())

	var raw accessListResult
	err = c.rpc.CallContext(ctx, &raw, "eth_createAccessList", toCallArg(msg))
	if err != nil {
		return nil, fmt.Errorf("create access list: %w", err)
	}
	res = &chainclient.AccessListResult{GasUsed: uint64(raw.GasUsed), Error: raw.Error}
	if raw.AccessList != nil {
		res.AccessList = *raw.AccessList
	}
	return res, nil
}

func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (gas uint64, err error) {
	defer func(start time.Time) { c.record("EstimateGas", start, err) }(c.begin())
	return c.eth.EstimateGas(ctx, msg)
}

func (c *Client) FeeHistory(ctx context.Context, blockCount uint64, lastBlock *big.Int, rewardPercentiles []float64) (fh *ethereum.FeeHistory, err error) {
	defer func(start time.Time) { c.record("FeeHistory", start, err) }(c.begin())
	fh, err = c.eth.FeeHistory(ctx, blockCount, lastBlock, rewardPercentiles)
	if err != nil {
		return nil, fmt.Errorf("get fee history: %w", err)
	}
	return fh, nil
}

func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) (logs []types.Log, err error) {
	defer func(start time.Time) { c.record("FilterLogs", start, err) }(c.begin())
	logs, err = c.eth.FilterLogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get logs: %w", err)
	}
	return logs, nil
}

func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) (err error) {
	defer func(start time.Time) { c.record("SendTransaction", start, err) }(c.begin())
	if err := c.eth.SendTransaction(ctx, tx); err != nil {
		return fmt.Errorf("send raw transaction %s: %w", tx.Hash(), err)
	}
	if c.metrics != nil {
		c.metrics.IncTxSubmitted()
	}
	return nil
}

// WaitForReceipt polls the node until the transaction reaches a terminal
// inclusion state. The wait is bounded by the configured receipt timeout; on
// expiry it fails loudly rather than passing silently.
func (c *Client) WaitForReceipt(ctx context.Context, hash common.Hash) (*chainclient.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	if c.metrics != nil {
		start := time.Now()
		defer func() { c.metrics.ObserveReceiptWait(time.Since(start).Seconds()) }()
	}

	ticker := time.NewTicker(c.receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) && !isNotFoundMessage(err) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", hash, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	c.rpc.Close()
}

func toBlockNumArg(number *big.Int) string {
	if number == nil {
		return "latest"
	}
	return hexutil.EncodeBig(number)
}

func toCallArg(msg ethereum.CallMsg) interface{} {
	arg := map[string]interface{}{
		"from": msg.From,
		"to":   msg.To,
	}
	if len(msg.Data) > 0 {
		arg["data"] = hexutil.Bytes(msg.Data)
	}
	if msg.Value != nil {
		arg["value"] = (*hexutil.Big)(msg.Value)
	}
	if msg.Gas != 0 {
		arg["gas"] = hexutil.Uint64(msg.Gas)
	}
	if msg.GasPrice != nil {
		arg["gasPrice"] = (*hexutil.Big)(msg.GasPrice)
	}
	return arg
}
