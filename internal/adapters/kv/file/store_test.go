package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "record key is empty"},
		{name: "whitespace", key: "   ", wantErr: "record key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid record key"},
		{name: "traversal", key: "../escape", wantErr: "invalid record key"},
		{name: "deep traversal", key: "../../state", wantErr: "invalid record key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := "bingo-game-state"
	want := `{"version":2}`

	require.NoError(t, store.Put(context.Background(), key, want))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, key+recordExtension))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(recordFileMode), info.Mode().Perm())
}

func TestStorePutOverwritesAndLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "slot", "first"))
	require.NoError(t, store.Put(context.Background(), "slot", "second"))

	got, err := store.Get(context.Background(), "slot")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "slot"+recordExtension, entries[0].Name())
}

func TestStoreGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	_, err := store.Get(context.Background(), "bingo-game-state")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestStoreDeleteIsIdempotentWhenRecordMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	key := "bingo-game-state"

	require.NoError(t, store.Put(context.Background(), key, "value"))
	require.NoError(t, store.Delete(context.Background(), key))
	require.NoError(t, store.Delete(context.Background(), key))

	_, err := store.Get(context.Background(), key)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(t.TempDir())
	assert.ErrorIs(t, store.Put(ctx, "slot", "value"), context.Canceled)
}
