package di

import (
	"testing"

	"user-directory-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func validConfig() *config.Config {
	return &config.Config{App: config.AppConfig{
		Port:                   "3000",
		ImagesDir:              "images",
		Dataset:                "default",
		ShutdownTimeoutSeconds: 10,
	}}
}

func TestNewContainer_Success(t *testing.T) {
	c, err := NewContainer(validConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 5, c.Store.Len())
	assert.NotNil(t, c.UserUC)
	assert.NotNil(t, c.GinHandler)
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.App.Port = "not-a-port"

	c, err := NewContainer(cfg, zaptest.NewLogger(t))
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestNewContainer_UnknownDataset(t *testing.T) {
	cfg := validConfig()
	cfg.App.Dataset = "staging"

	c, err := NewContainer(cfg, zaptest.NewLogger(t))
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dataset "staging"`)
}
