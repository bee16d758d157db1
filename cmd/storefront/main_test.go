package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_DefaultsDoNotSelfTarget(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("STORE_API_BASE", "")

	cfg := loadConfig()

	assert.False(t, strings.HasSuffix(cfg.StoreBaseURL, ":"+cfg.HTTPPort),
		"default backend URL must not point at this client's own port")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("STORE_API_BASE", "http://store.internal:8080")

	cfg := loadConfig()

	assert.Equal(t, "9999", cfg.HTTPPort)
	assert.Equal(t, "http://store.internal:8080", cfg.StoreBaseURL)
}
