package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestLabels_toPrometheusLabels(t *testing.T) {
	tests := []struct {
		name     string
		labels   Labels
		expected prometheus.Labels
	}{
		{
			name:     "empty labels",
			labels:   Labels{},
			expected: prometheus.Labels{},
		},
		{
			name: "all labels set",
			labels: Labels{
				ChainID:     5655,
				Environment: "ci",
			},
			expected: prometheus.Labels{
				"chain_id":    "5655",
				"environment": "ci",
			},
		},
		{
			name: "zero chain ID excluded",
			labels: Labels{
				ChainID:     0,
				Environment: "staging",
			},
			expected: prometheus.Labels{
				"environment": "staging",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.labels.toPrometheusLabels()
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := New(reg)
	require.NoError(t, err)
	require.NotNil(t, m)

	// Verify metrics are registered by checking the registry
	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metricFamilies)
}

func TestNewWithLabels(t *testing.T) {
	reg := prometheus.NewRegistry()

	labels := Labels{
		ChainID:     5655,
		Environment: "test",
	}

	m, err := NewWithLabels(reg, labels)
	require.NoError(t, err)
	require.NotNil(t, m)

	// Update a metric and verify the labels are applied
	m.IncTxSubmitted()

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metricFamilies)

	for _, mf := range metricFamilies {
		if mf.GetName() == "conformance_transactions_submitted_total" {
			require.NotEmpty(t, mf.GetMetric())
			metric := mf.GetMetric()[0]

			labelMap := make(map[string]string)
			for _, label := range metric.GetLabel() {
				labelMap[label.GetName()] = label.GetValue()
			}
			require.Equal(t, "5655", labelMap["chain_id"])
			require.Equal(t, "test", labelMap["environment"])
		}
	}
}

func TestNew_RegistrationError(t *testing.T) {
	reg := prometheus.NewRegistry()

	// Register first instance
	_, err := New(reg)
	require.NoError(t, err)

	// Second registration should fail (duplicate metrics)
	m, err := New(reg)
	require.Nil(t, m, "expected nil metrics on duplicate registration")

	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &alreadyRegistered)
}

func TestMetrics_NilReceiver(t *testing.T) {
	// All methods should handle nil receiver gracefully (no panic)
	var m *Metrics

	require.NotPanics(t, func() {
		m.RecordCheck("chain_id", nil, 0.1)
	})
	require.NotPanics(t, func() {
		m.RecordCheck("chain_id", errors.New("mismatch"), 0.1)
	})
	require.NotPanics(t, func() {
		m.IncRPCInFlight()
	})
	require.NotPanics(t, func() {
		m.DecRPCInFlight()
	})
	require.NotPanics(t, func() {
		m.RecordRPCCall("eth_chainId", nil, 0.5)
	})
	require.NotPanics(t, func() {
		m.IncTxSubmitted()
	})
	require.NotPanics(t, func() {
		m.ObserveReceiptWait(0.1)
	})
}

func TestMetrics_RecordCheck(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.RecordCheck("chain_id", nil, 0.01)
	m.RecordCheck("chain_id", nil, 0.02)
	m.RecordCheck("balance_floor", errors.New("below floor"), 0.5)

	count := testutil.ToFloat64(m.checksRun.WithLabelValues("chain_id", StatusSuccess))
	require.Equal(t, float64(2), count)

	count = testutil.ToFloat64(m.checksRun.WithLabelValues("balance_floor", StatusError))
	require.Equal(t, float64(1), count)
}

func TestMetrics_RPCInFlight(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	require.Equal(t, float64(0), testutil.ToFloat64(m.rpcInFlight))

	m.IncRPCInFlight()
	m.IncRPCInFlight()
	require.Equal(t, float64(2), testutil.ToFloat64(m.rpcInFlight))

	m.DecRPCInFlight()
	require.Equal(t, float64(1), testutil.ToFloat64(m.rpcInFlight))
}

func TestMetrics_RecordRPCCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	// Record successful call
	m.RecordRPCCall("eth_getBlockByNumber", nil, 0.05)

	count := testutil.ToFloat64(m.rpcCalls.WithLabelValues("eth_getBlockByNumber", "success"))
	require.Equal(t, float64(1), count)

	// Record failed call
	m.RecordRPCCall("eth_getBlockByNumber", errors.New("connection refused"), 1.0)

	count = testutil.ToFloat64(m.rpcCalls.WithLabelValues("eth_getBlockByNumber", "error"))
	require.Equal(t, float64(1), count)

	// Multiple successful calls
	m.RecordRPCCall("eth_getLogs", nil, 0.1)
	m.RecordRPCCall("eth_getLogs", nil, 0.2)

	count = testutil.ToFloat64(m.rpcCalls.WithLabelValues("eth_getLogs", "success"))
	require.Equal(t, float64(2), count)
}

func TestMetrics_IncTxSubmitted(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	require.Equal(t, float64(0), testutil.ToFloat64(m.txSubmitted))

	m.IncTxSubmitted()
	m.IncTxSubmitted()
	require.Equal(t, float64(2), testutil.ToFloat64(m.txSubmitted))
}

func TestMetrics_ObserveReceiptWait(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveReceiptWait(0.05)
	m.ObserveReceiptWait(0.1)
	m.ObserveReceiptWait(0.5)

	// Verify histogram has observations
	metricFamilies, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range metricFamilies {
		if mf.GetName() == "conformance_receipt_wait_seconds" {
			found = true
			metric := mf.GetMetric()[0]
			histogram := metric.GetHistogram()
			require.Equal(t, uint64(3), histogram.GetSampleCount())
		}
	}
	require.True(t, found, "histogram metric not found")
}

func TestNamespace(t *testing.T) {
	require.Equal(t, "conformance", Namespace)
}
