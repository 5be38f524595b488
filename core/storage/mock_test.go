package storage_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briantroy/rigor/core/storage"
)

// listKeys drains a listing into a key set, failing the test on a listing error.
func listKeys(t *testing.T, client storage.Client, prefix string) map[string]bool {
	t.Helper()

	keys := make(map[string]bool)
	for obj := range client.List(context.Background(), prefix) {
		require.NoError(t, obj.Err)
		keys[obj.Key] = true
	}
	return keys
}

func TestMockClient_GetAbsentReturnsSentinel(t *testing.T) {
	client := storage.NewMockClient()

	_, err := client.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Absence is not a backend failure
	var backendErr *storage.BackendError
	assert.False(t, errors.As(err, &backendErr))
}

func TestMockClient_PutGetRoundtrip(t *testing.T) {
	client := storage.NewMockClient()
	ctx := context.Background()
	payload := []byte("some object content")

	err := client.Put(ctx, "round/trip", storage.FromReader(bytes.NewReader(payload)))
	require.NoError(t, err)

	body, err := client.Get(ctx, "round/trip")
	require.NoError(t, err)
	defer body.Close()

	got, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestMockClient_OverwriteLastWriteWins(t *testing.T) {
	client := storage.NewMockClient()
	ctx := context.Background()

	require.NoError(t, client.Put(ctx, "k", storage.FromReader(strings.NewReader("first"))))
	require.NoError(t, client.Put(ctx, "k", storage.FromReader(strings.NewReader("second"))))

	body, err := client.Get(ctx, "k")
	require.NoError(t, err)
	defer body.Close()

	got, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestMockClient_DeleteIdempotent(t *testing.T) {
	client := storage.NewMockClient()
	ctx := context.Background()

	// Deleting an absent key is a no-op, not an error
	assert.NoError(t, client.Delete(ctx, "never-existed"))

	require.NoError(t, client.Put(ctx, "k", storage.FromReader(strings.NewReader("x"))))
	require.NoError(t, client.Delete(ctx, "k"))

	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, client.Delete(ctx, "k"))
}

func TestMockClient_ListPrefixSemantics(t *testing.T) {
	client := storage.NewMockClient()
	now := time.Now()
	client.AddObject("logs/2026/01.gz", []byte("a"), now)
	client.AddObject("logs/2026/02.gz", []byte("bb"), now)
	client.AddObject("data/file.bin", []byte("ccc"), now)

	t.Run("All", func(t *testing.T) {
		keys := listKeys(t, client, "")
		assert.Len(t, keys, 3)
	})

	t.Run("Prefix", func(t *testing.T) {
		keys := listKeys(t, client, "logs/")
		assert.Equal(t, map[string]bool{
			"logs/2026/01.gz": true,
			"logs/2026/02.gz": true,
		}, keys)
	})

	t.Run("NoMatch", func(t *testing.T) {
		keys := listKeys(t, client, "missing/")
		assert.Empty(t, keys)
	})
}

func TestMockClient_FileTransfer(t *testing.T) {
	client := storage.NewMockClient()
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("PutFromFile", func(t *testing.T) {
		src := filepath.Join(dir, "upload.txt")
		require.NoError(t, os.WriteFile(src, []byte("file payload"), 0644))

		require.NoError(t, client.Put(ctx, "from-file", storage.FromFile(src)))

		got, ok := client.Object("from-file")
		require.True(t, ok)
		assert.Equal(t, []byte("file payload"), got)
	})

	t.Run("GetToFile", func(t *testing.T) {
		client.AddObject("to-file", []byte("downloaded"), time.Now())
		dst := filepath.Join(dir, "download.txt")

		require.NoError(t, client.GetFile(ctx, "to-file", dst))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, []byte("downloaded"), got)
	})

	t.Run("GetToFileAbsent", func(t *testing.T) {
		err := client.GetFile(ctx, "no-such-key", filepath.Join(dir, "never.txt"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestMockClient_ErrorInjection(t *testing.T) {
	client := storage.NewMockClient()
	ctx := context.Background()
	boom := errors.New("transport down")

	t.Run("Get", func(t *testing.T) {
		client.GetError = boom
		defer func() { client.GetError = nil }()

		_, err := client.Get(ctx, "k")
		var backendErr *storage.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.NotErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		client.ListError = boom
		defer func() { client.ListError = nil }()

		var listErr error
		for obj := range client.List(ctx, "") {
			listErr = obj.Err
		}
		var backendErr *storage.BackendError
		assert.ErrorAs(t, listErr, &backendErr)
	})
}

// The bucket walkthrough: seed three keys, list by prefix, fetch, delete one,
// and verify the listing shrinks accordingly.
func TestMockClient_BucketWalkthrough(t *testing.T) {
	client := storage.NewMockClient()
	ctx := context.Background()

	keys := []string{"s3-key-1", "s3-key-2", "s3-key-3"}
	for i, key := range keys {
		err := client.Put(ctx, key, storage.FromReader(strings.NewReader(fmt.Sprintf("%d", i))))
		require.NoError(t, err)
	}

	assert.Equal(t, map[string]bool{
		"s3-key-1": true,
		"s3-key-2": true,
		"s3-key-3": true,
	}, listKeys(t, client, "s3-key"))

	body, err := client.Get(ctx, "s3-key-2")
	require.NoError(t, err)
	got, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, "1", string(got))

	require.NoError(t, client.Delete(ctx, "s3-key-2"))

	_, err = client.Get(ctx, "s3-key-2")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.Equal(t, map[string]bool{
		"s3-key-1": true,
		"s3-key-3": true,
	}, listKeys(t, client, "s3-key"))
}
