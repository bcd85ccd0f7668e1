package server_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Defi-Oracle-Tooling/FusionAI-Orchestrator/internal/server"
)

// TestNewConfig verifies the default configuration values.
func TestNewConfig(t *testing.T) {
	config := server.NewConfig()
	require.NotNil(t, config)

	assert.Equal(t, ":8080", config.Port)
	assert.Equal(t, 15*time.Second, config.ReadTimeout)
	assert.Equal(t, 15*time.Second, config.WriteTimeout)
	assert.Equal(t, 60*time.Second, config.IdleTimeout)
}

// TestNewConfigIsolated checks that every call returns an independent value.
func TestNewConfigIsolated(t *testing.T) {
	first := server.NewConfig()
	first.Port = ":9090"

	assert.Equal(t, ":8080", server.NewConfig().Port)
}
