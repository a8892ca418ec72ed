package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/lead-system/internal/infrastructure/config"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"], "serve command missing")
	assert.True(t, names["seed"], "seed command missing")
}

func TestOpenBackends_Memory(t *testing.T) {
	ctx := context.Background()
	c := &config.Config{
		Leads:   config.LeadsConfig{Backend: config.BackendMemory, SeedDemo: true, PageSize: 10},
		Session: config.SessionConfig{Backend: config.BackendMemory},
	}

	b, err := openBackends(ctx, c, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close(ctx) })

	all, err := b.leads.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 55)
	assert.Empty(t, b.readiness, "in-memory backends need no readiness checks")
	assert.NotNil(t, b.sessions)
}

func TestOpenBackends_MemoryWithoutSeed(t *testing.T) {
	ctx := context.Background()
	c := &config.Config{
		Leads:   config.LeadsConfig{Backend: config.BackendMemory},
		Session: config.SessionConfig{Backend: config.BackendMemory},
	}

	b, err := openBackends(ctx, c, zerolog.Nop())
	require.NoError(t, err)

	all, err := b.leads.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOpenBackends_MemorySessionsWarn(t *testing.T) {
	ctx := context.Background()
	c := &config.Config{
		Leads:   config.LeadsConfig{Backend: config.BackendMemory},
		Session: config.SessionConfig{Backend: config.BackendMemory},
	}

	var buf bytes.Buffer
	_, err := openBackends(ctx, c, zerolog.New(&buf))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "SESSION_BACKEND=redis")
}
