package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svscodes/LeetLink/internal/domain/ports"
)

func TestOpen_PicksBackendByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlStore, err := Open(filepath.Join(dir, "settings.yaml"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, yamlStore)
	require.NoError(t, yamlStore.Close())

	boltStore, err := Open(filepath.Join(dir, "nested", "settings.db"))
	require.NoError(t, err)
	assert.IsType(t, &BoltStore{}, boltStore)
	require.NoError(t, boltStore.Close())
}

func TestStores_RoundTrip(t *testing.T) {
	for _, name := range []string{"settings.db", "settings.yml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store, err := Open(filepath.Join(t.TempDir(), name))
			require.NoError(t, err)
			t.Cleanup(func() { store.Close() })

			got, err := store.Get(ctx, ports.SettingCredential)
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, store.Set(ctx, ports.SettingCredential, "ghp_one"))
			require.NoError(t, store.Set(ctx, ports.SettingCredential, "ghp_two"))
			require.NoError(t, store.Set(ctx, ports.SettingRepositoryID, "octo/solutions"))

			got, err = store.Get(ctx, ports.SettingCredential)
			require.NoError(t, err)
			assert.Equal(t, "ghp_two", got)

			require.NoError(t, store.Set(ctx, ports.SettingRepositoryID, ""))
			got, err = store.Get(ctx, ports.SettingRepositoryID)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestBoltStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	ctx := context.Background()

	s1, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, ports.SettingBranch, "dev"))
	require.NoError(t, s1.Close())

	s2, err := OpenBolt(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(ctx, ports.SettingBranch)
	require.NoError(t, err)
	assert.Equal(t, "dev", got)
}

func TestFileStore_ReadsHandEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("credential: ghp_hand\nrepositoryId: octo/solutions\n"), 0o600))

	got, err := OpenFile(path).Get(context.Background(), ports.SettingRepositoryID)
	require.NoError(t, err)
	assert.Equal(t, "octo/solutions", got)
}

func TestFileStore_RejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))

	_, err := OpenFile(path).Get(context.Background(), ports.SettingCredential)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings")
}
