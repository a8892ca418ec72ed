package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/lead-system/internal/core/ports"
)

func TestSessionStorage_RoundTripAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStorage()

	_, err := s.Get(ctx, "demo_user")
	assert.ErrorIs(t, err, ports.ErrStorageKeyNotFound)

	require.NoError(t, s.Set(ctx, "demo_user", []byte(`{"id":"1"}`)))
	got, err := s.Get(ctx, "demo_user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(got))

	require.NoError(t, s.Delete(ctx, "demo_user"))
	require.NoError(t, s.Delete(ctx, "demo_user"), "delete of missing key must succeed")

	_, err = s.Get(ctx, "demo_user")
	assert.ErrorIs(t, err, ports.ErrStorageKeyNotFound)
}
