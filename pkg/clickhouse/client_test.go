package clickhouse

import (
	"net"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rolluplabs/evm-conformance/pkg/clickhouse/mocks"
	"github.com/rolluplabs/evm-conformance/pkg/clickhouse/testutils"
	"github.com/rolluplabs/evm-conformance/pkg/utils"
)

// testLogger creates a test logger for use in tests
func testLogger(t *testing.T) *zap.SugaredLogger {
	logger, err := utils.NewSugaredLogger(true)
	require.NoError(t, err)
	return logger
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:9000"}, cfg.Addresses)
	assert.Equal(t, "default", cfg.Database)
	assert.Equal(t, "default", cfg.Username)
	assert.Empty(t, cfg.Password)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.InsecureSkipVerify)
	assert.Equal(t, 60, cfg.MaxExecutionTime)
	assert.Equal(t, 30, cfg.DialTimeout)
	assert.Equal(t, 5, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 10, cfg.ConnMaxLifetime)
	assert.Equal(t, 1000, cfg.MaxBlockSize)
	assert.Equal(t, "evm-conformance", cfg.ClientName)
	assert.NotEmpty(t, cfg.ClientVersion)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CLICKHOUSE_ADDRESSES", "ch-1:9000,ch-2:9000")
	t.Setenv("CLICKHOUSE_DATABASE", "conformance")
	t.Setenv("CLICKHOUSE_DIAL_TIMEOUT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"ch-1:9000", "ch-2:9000"}, cfg.Addresses)
	assert.Equal(t, "conformance", cfg.Database)
	assert.Equal(t, 5, cfg.DialTimeout)
}

func TestNew_InvalidAddress(t *testing.T) {
	cfg := Config{
		Addresses:   []string{"invalid:99999"},
		Database:    "test",
		Username:    "test",
		Password:    "test",
		DialTimeout: 1,
	}

	client, err := New(cfg, testLogger(t))

	var addrErr *net.AddrError
	require.ErrorAs(t, err, &addrErr)
	require.Equal(t, "invalid port", addrErr.Err)
	assert.Nil(t, client)
}

func TestNew_ConnectionRefused(t *testing.T) {
	cfg := Config{
		Addresses:   []string{"127.0.0.1:1"},
		Database:    "test",
		Username:    "test",
		Password:    "test",
		DialTimeout: 1,
	}

	client, err := New(cfg, testLogger(t))

	var netErr *net.OpError
	require.ErrorAs(t, err, &netErr)
	assert.Nil(t, client)
}

func TestClient_Conn(t *testing.T) {
	mockConn := &mocks.MockConn{}
	client := testutils.NewTestClient(mockConn).(Client)

	conn := client.Conn()
	assert.NotNil(t, conn)
	assert.Equal(t, mockConn, conn)
}

func TestClient_Ping(t *testing.T) {
	mockConn := &mocks.MockConn{}
	mockConn.On("Ping", t.Context()).Return(nil)

	client := testutils.NewTestClient(mockConn).(Client)

	require.NoError(t, client.Ping(t.Context()))
	mockConn.AssertExpectations(t)
}

func TestClient_Ping_Exception(t *testing.T) {
	exception := &clickhouse.Exception{
		Code:    516,
		Message: "Authentication failed",
	}

	mockConn := &mocks.MockConn{}
	mockConn.On("Ping", t.Context()).Return(exception)

	client := testutils.NewTestClient(mockConn).(Client)

	err := client.Ping(t.Context())
	var ex *clickhouse.Exception
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, int32(516), ex.Code)
	mockConn.AssertExpectations(t)
}

func TestClient_Close(t *testing.T) {
	mockConn := &mocks.MockConn{}
	mockConn.On("Close").Return(nil)

	client := testutils.NewTestClient(mockConn).(Client)

	require.NoError(t, client.Close())
	mockConn.AssertExpectations(t)
}
