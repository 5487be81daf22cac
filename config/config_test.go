package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "info", AppConfig.LogLevel)
	assert.Equal(t, ".", AppConfig.OutputDir)
	assert.Equal(t, 15, AppConfig.ImageFetchTimeoutSecs)
	assert.False(t, IsProduction())
}

func TestIsProduction(t *testing.T) {
	old := AppConfig.Env
	defer func() { AppConfig.Env = old }()

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
}
