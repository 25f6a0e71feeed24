package slot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory("db")

	_, found, err := s.Read(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Write(ctx, []byte(`{"users":[]}`)))
	data, found, err := s.Read(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"users":[]}`), data)
}

func TestFileSlotSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFile(dir, "sue_ah_hahn_db_v2")
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, []byte(`{"version":3}`)))
	assert.Equal(t, filepath.Join(dir, "sue_ah_hahn_db_v2.json"), s.FilePath())
	require.NoError(t, s.Close())

	reopened, err := NewFile(dir, "sue_ah_hahn_db_v2")
	require.NoError(t, err)
	defer reopened.Close()

	data, found, err := reopened.Read(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"version":3}`), data)
}
