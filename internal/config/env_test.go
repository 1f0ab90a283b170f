package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_ReadsPrefixedVariables verifies that nested envPrefix tags are
// resolved correctly.
func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "localhost:8080")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_DB_DSN", "session.db")
	t.Setenv("STREAM_EVENT_BUFFER", "48")
	t.Setenv("WORKERS_KEEPALIVE_ENABLED", "true")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 48, cfg.Stream.EventBuffer)
	assert.True(t, cfg.Workers.KeepAliveEnabled)
}

// TestParseEnv_BadValue verifies that an unparseable value surfaces as an error.
func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}

// TestClientConfigValidate_RequiredFields проверяет основные инварианты
// клиентской конфигурации.
func TestClientConfigValidate_RequiredFields(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "worklink.db"}},
	}
	assert.NoError(t, valid.validate())

	noDSN := *valid
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	memDSN := *valid
	memDSN.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, memDSN.validate(), ErrInvalidStorageConfigs)

	noAddr := *valid
	noAddr.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	badWorker := *valid
	badWorker.Workers.KeepAliveEnabled = true
	badWorker.Workers.KeepAliveInterval = 0
	assert.ErrorIs(t, badWorker.validate(), ErrInvalidWorkerConfigs)
}
