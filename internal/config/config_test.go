package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PAYMENT_ALLOW_MOCK", "")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("PAYMENT_TIMEOUT", "3s")
	t.Setenv("POSTGRES_MAX_CONNS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Payment.AllowMock, "mock payments default on in development")
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 3*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, 20, cfg.PostgresMaxConns)
}

func TestLoad_ProductionRejectsMock(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAYMENT_ALLOW_MOCK", "true")
	t.Setenv("PHONEPE_MERCHANT_ID", "M1")
	t.Setenv("PHONEPE_SALT_KEY", "salt")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYMENT_ALLOW_MOCK")
}

func TestLoad_ProductionRequiresGatewayCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAYMENT_ALLOW_MOCK", "")
	t.Setenv("PHONEPE_MERCHANT_ID", "")
	t.Setenv("PHONEPE_SALT_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ProductionOK(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAYMENT_ALLOW_MOCK", "")
	t.Setenv("PHONEPE_MERCHANT_ID", "M1")
	t.Setenv("PHONEPE_SALT_KEY", "salt")
	t.Setenv("PHONEPE_SALT_INDEX", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Payment.AllowMock)
	assert.Equal(t, "2", cfg.Payment.SaltIndex)
}

func TestLoad_RejectsEmptyPool(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("POSTGRES_MAX_CONNS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_MAX_CONNS")
}
