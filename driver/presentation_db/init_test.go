package presentation_db

import (
	"testing"
	"time"

	"finconf/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolConfig_AppliesDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "finconf")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "finconf")

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			MaxConnections:    7,
			ConnectionTimeout: 3 * time.Second,
		},
	}

	poolConfig, err := newPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(7), poolConfig.MaxConns)
	assert.Equal(t, 3*time.Second, poolConfig.ConnConfig.ConnectTimeout)
	assert.Equal(t, "localhost", poolConfig.ConnConfig.Host)
	assert.Equal(t, "finconf", poolConfig.ConnConfig.Database)
}
