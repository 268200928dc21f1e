package conformance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testEnv() *Env {
	return &Env{Log: zap.NewNop().Sugar()}
}

func namedCheck(name string, run func(ctx context.Context, env *Env) error) Check {
	return Check{Name: name, Desc: name, Run: run}
}

func TestRunner_Sequential(t *testing.T) {
	t.Parallel()

	var order []string
	checks := []Check{
		namedCheck("first", func(context.Context, *Env) error {
			order = append(order, "first")
			return nil
		}),
		namedCheck("second", func(context.Context, *Env) error {
			order = append(order, "second")
			return nil
		}),
	}

	r, err := NewRunner(testEnv(), checks, 1)
	require.NoError(t, err)
	results, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, order)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].Check)
	assert.Equal(t, "second", results[1].Check)
}

func TestRunner_FailureDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	boom := errors.New("node misbehaved")
	checks := []Check{
		namedCheck("bad", func(context.Context, *Env) error { return boom }),
		namedCheck("good", func(context.Context, *Env) error { return nil }),
	}

	r, err := NewRunner(testEnv(), checks, 1)
	require.NoError(t, err)
	results, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, results[0].Err, boom)
	assert.False(t, results[0].Passed())
	assert.True(t, results[1].Passed())

	passed, failed := Summarize(results)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
}

func TestRunner_Parallel(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	ran := map[string]bool{}
	var checks []Check
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		name := name
		checks = append(checks, namedCheck(name, func(context.Context, *Env) error {
			mu.Lock()
			ran[name] = true
			mu.Unlock()
			return nil
		}))
	}

	r, err := NewRunner(testEnv(), checks, 3)
	require.NoError(t, err)
	results, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, ran, 5)
	// Results stay in catalog order regardless of completion order.
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, name, results[i].Check)
	}
}

func TestRunner_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewRunner(testEnv(), []Check{
		namedCheck("never", func(context.Context, *Env) error { return nil }),
	}, 1)
	require.NoError(t, err)

	_, err = r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRunner_NoChecks(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(testEnv(), nil, 1)
	require.Error(t, err)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	checks := []Check{
		namedCheck("one", nil),
		namedCheck("two", nil),
		namedCheck("three", nil),
	}

	t.Run("empty names returns all", func(t *testing.T) {
		got, err := Filter(checks, nil)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("subset keeps catalog order", func(t *testing.T) {
		got, err := Filter(checks, []string{"three", "one"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "one", got[0].Name)
		assert.Equal(t, "three", got[1].Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := Filter(checks, []string{"nope"})
		require.ErrorContains(t, err, `unknown check "nope"`)
	})
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	ok := Result{Check: "chain_id", Duration: 12 * time.Millisecond}
	assert.Equal(t, "chain_id: ok (12ms)", ok.String())

	bad := Result{Check: "chain_id", Err: errors.New("boom"), Duration: 5 * time.Millisecond}
	assert.Equal(t, "chain_id: FAIL (5ms): boom", bad.String())
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	checks := Catalog()
	require.NotEmpty(t, checks)

	seen := map[string]bool{}
	for _, c := range checks {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Desc)
		assert.NotNil(t, c.Run)
		assert.False(t, seen[c.Name], "duplicate check name %q", c.Name)
		seen[c.Name] = true
	}

	// A few anchors that must always exist.
	for _, name := range []string{
		"chain_id",
		"storage_slot",
		"block_unknown_hash",
		"receipt_fields",
		"call_withdraw_reverts_with_reason",
		"weth_deposit_scenario",
	} {
		assert.True(t, seen[name], "missing check %q", name)
	}
}

func TestLoadExpectations(t *testing.T) {
	e, err := LoadExpectations()
	require.NoError(t, err)
	assert.Equal(t, uint64(5655), e.ChainID)
	assert.Equal(t, uint64(1), e.GenesisLogBlock)
	assert.Equal(t, uint(3), e.GenesisBlockTxCount)
	assert.Equal(t, uint64(21000), e.TransferGasFloor)

	floor := e.BridgeBalanceFloor()
	// 21M ether in wei.
	assert.Equal(t, "21000000000000000000000000", floor.String())

	t.Setenv("CONFORMANCE_CHAIN_ID", "123")
	e, err = LoadExpectations()
	require.NoError(t, err)
	assert.Equal(t, uint64(123), e.ChainID)
}
