package evm

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolluplabs/evm-conformance/pkg/metrics"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type stubError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// newStubServer serves single JSON-RPC requests from a per-method handler.
func newStubServer(t *testing.T, handle func(req rpcRequest) (interface{}, *stubError)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
		}
		result, rpcErr := handle(req)
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialStub(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	client, err := Dial(context.Background(), srv.URL, opts...)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

var (
	testTxHash    = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	testBlockHash = common.HexToHash("0x2222222222222222222222222222222222222222222222222222222222222222")
)

func stubReceipt() map[string]interface{} {
	return map[string]interface{}{
		"transactionHash":   testTxHash.Hex(),
		"transactionIndex":  "0x0",
		"status":            "0x1",
		"from":              "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
		"to":                "0x0000000000000000000000000000000000000000",
		"contractAddress":   nil,
		"blockHash":         testBlockHash.Hex(),
		"blockNumber":       "0x10",
		"gasUsed":           "0x5208",
		"effectiveGasPrice": "0x3b9aca00",
		"l1FeeRate":         "0xa",
		"l1DiffSize":        "0x120",
		"logs":              []interface{}{},
	}
}

func TestClient_ChainID(t *testing.T) {
	t.Parallel()

	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		require.Equal(t, "eth_chainId", req.Method)
		return "0x1617", nil
	})

	client := dialStub(t, srv)
	id, err := client.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5655), id.Int64())
}

func TestClient_TransactionCountByNumber(t *testing.T) {
	t.Parallel()

	var gotParam atomic.Value
	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		require.Equal(t, "eth_getBlockTransactionCountByNumber", req.Method)
		require.Len(t, req.Params, 1)
		gotParam.Store(string(req.Params[0]))
		return "0x3", nil
	})
	client := dialStub(t, srv)

	n, err := client.TransactionCountByNumber(context.Background(), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, uint(3), n)
	assert.Equal(t, `"0x1"`, gotParam.Load())

	_, err = client.TransactionCountByNumber(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, `"latest"`, gotParam.Load())
}

func TestClient_TransactionReceipt_RollupFields(t *testing.T) {
	t.Parallel()

	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		require.Equal(t, "eth_getTransactionReceipt", req.Method)
		return stubReceipt(), nil
	})
	client := dialStub(t, srv)

	receipt, err := client.TransactionReceipt(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.Equal(t, testTxHash, receipt.TxHash)
	assert.Equal(t, uint64(1), receipt.Status)
	assert.Equal(t, testBlockHash, receipt.BlockHash)
	assert.Equal(t, int64(16), receipt.BlockNumber.Int64())
	assert.Equal(t, uint64(21000), receipt.GasUsed)
	require.NotNil(t, receipt.L1FeeRate)
	assert.Equal(t, int64(10), receipt.L1FeeRate.Int64())
	require.NotNil(t, receipt.L1DiffSize)
	assert.Equal(t, int64(288), receipt.L1DiffSize.Int64())
	require.NotNil(t, receipt.To)
	assert.Equal(t, common.Address{}, *receipt.To)
	assert.Nil(t, receipt.ContractAddress)
}

func TestClient_TransactionReceipt_NullResult(t *testing.T) {
	t.Parallel()

	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		return nil, nil
	})
	client := dialStub(t, srv)

	_, err := client.TransactionReceipt(context.Background(), testTxHash)
	require.ErrorIs(t, err, ethereum.NotFound)
}

func TestClient_TransactionReceipt_NotFoundMessage(t *testing.T) {
	t.Parallel()

	want := "Transaction with hash: '" + testTxHash.Hex() + "' not found."
	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		return nil, &stubError{Code: -32000, Message: want}
	})
	client := dialStub(t, srv)

	_, err := client.TransactionReceipt(context.Background(), testTxHash)
	require.Error(t, err)
	assert.Equal(t, want, err.Error())
	assert.True(t, isNotFoundMessage(err))
}

func TestClient_WaitForReceipt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		if calls.Add(1) < 3 {
			return nil, &stubError{
				Code:    -32000,
				Message: "Transaction with hash: '" + testTxHash.Hex() + "' not found.",
			}
		}
		return stubReceipt(), nil
	})
	client := dialStub(t, srv,
		WithReceiptPollInterval(10*time.Millisecond),
		WithReceiptTimeout(5*time.Second),
	)

	receipt, err := client.WaitForReceipt(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.Equal(t, testTxHash, receipt.TxHash)
	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestClient_WaitForReceipt_Timeout(t *testing.T) {
	t.Parallel()

	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		return nil, nil // never found
	})
	client := dialStub(t, srv,
		WithReceiptPollInterval(10*time.Millisecond),
		WithReceiptTimeout(100*time.Millisecond),
	)

	_, err := client.WaitForReceipt(context.Background(), testTxHash)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_SendTransaction_CountsSubmission(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	to := common.HexToAddress("0x3100000000000000000000000000000000000002")
	signed, err := types.SignTx(types.NewTx(&types.LegacyTx{
		To:       &to,
		Value:    big.NewInt(1),
		Gas:      21000,
		GasPrice: big.NewInt(1),
	}), types.LatestSignerForChainID(big.NewInt(5655)), key)
	require.NoError(t, err)

	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		require.Equal(t, "eth_sendRawTransaction", req.Method)
		return signed.Hash().Hex(), nil
	})

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	client := dialStub(t, srv, WithMetrics(m))

	require.NoError(t, client.SendTransaction(context.Background(), signed))

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() == "conformance_transactions_submitted_total" {
			found = true
			require.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, float64(1), mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
	require.True(t, found, "submission counter not registered")
}

func TestClient_CreateAccessList(t *testing.T) {
	t.Parallel()

	srv := newStubServer(t, func(req rpcRequest) (interface{}, *stubError) {
		require.Equal(t, "eth_createAccessList", req.Method)
		return map[string]interface{}{
			"accessList": []interface{}{
				map[string]interface{}{
					"address":     "0x3100000000000000000000000000000000000002",
					"storageKeys": []string{"0x0000000000000000000000000000000000000000000000000000000000000000"},
				},
			},
			"gasUsed": "0x5208",
		}, nil
	})
	client := dialStub(t, srv)

	to := common.HexToAddress("0x3100000000000000000000000000000000000002")
	res, err := client.CreateAccessList(context.Background(), ethereum.CallMsg{
		To:    &to,
		Value: big.NewInt(1),
	})
	require.NoError(t, err)
	require.Len(t, res.AccessList, 1)
	assert.Equal(t, to, res.AccessList[0].Address)
	assert.Equal(t, uint64(21000), res.GasUsed)
}
