package storage

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const testKey = "warranty-manager/warranties.json"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestBucket(t *testing.T) *blob.Bucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	return bucket
}

func TestBlobStore_LoadMissingKeyIsEmpty(t *testing.T) {
	store := NewBlobStore(openTestBucket(t), testKey, discardLogger())

	docs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestBlobStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	bucket := openTestBucket(t)
	store := NewBlobStore(bucket, testKey, discardLogger())

	docs := []json.RawMessage{
		json.RawMessage(`{"id":"1","products":[]}`),
		json.RawMessage(`"not an object"`),
	}
	require.NoError(t, store.Save(ctx, docs))

	stored, err := bucket.ReadAll(ctx, testKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","products":[]},"not an object"]`, string(stored))

	attrs, err := bucket.Attributes(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, contentTypeJSON, attrs.ContentType)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, string(docs[0]), string(loaded[0]))
	assert.Equal(t, string(docs[1]), string(loaded[1]))
}

func TestBlobStore_SaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	bucket := openTestBucket(t)
	store := NewBlobStore(bucket, testKey, discardLogger())

	require.NoError(t, store.Save(ctx, nil))

	stored, err := bucket.ReadAll(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(stored))
}

func TestBlobStore_LoadRejectsNonArray(t *testing.T) {
	ctx := context.Background()
	bucket := openTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, testKey, []byte(`{"id":"1"}`), nil))

	_, err := NewBlobStore(bucket, testKey, discardLogger()).Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a JSON array")
}

func TestBlobStore_LoadNullIsEmpty(t *testing.T) {
	ctx := context.Background()
	bucket := openTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, testKey, []byte(" null "), nil))

	docs, err := NewBlobStore(bucket, testKey, discardLogger()).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
