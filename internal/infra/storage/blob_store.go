// Package storage keeps warranty records in a gocloud.dev blob bucket. The
// whole record list lives in one JSON document under a namespaced key.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"warranty/config"
	"warranty/internal/domain/lifecycle"
	"warranty/internal/domain/repository"
	"warranty/internal/errors"
	"warranty/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

// Params defines the parameters required for the record store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStore implements the repository.RecordStore interface.
type blobStore struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// New opens the configured bucket and ties it to the application lifecycle.
func New(params Params) (repository.RecordStore, error) {
	cfg := params.Config.Store

	bucket, err := blob.OpenBucket(context.Background(), cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open record store bucket %q", cfg.URL)
	}

	store := NewBlobStore(bucket, cfg.Key, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			ok, err := bucket.IsAccessible(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to reach record store bucket")
			}
			if !ok {
				return errors.Errorf("record store bucket %q is not accessible", cfg.URL)
			}

			params.Logger.Info("Record store ready",
				slog.String("url", cfg.URL),
				slog.String("key", cfg.Key),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return store, nil
}

// NewBlobStore wraps an open bucket. The caller owns the bucket.
func NewBlobStore(bucket *blob.Bucket, key string, logger *slog.Logger) repository.RecordStore {
	return &blobStore{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Load returns every stored document in entry order.
func (s *blobStore) Load(ctx context.Context) ([]json.RawMessage, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return []json.RawMessage{}, nil
		}

		return nil, errors.Wrapf(err, "failed to read %s", s.key)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []json.RawMessage{}, nil
	}

	var docs []json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, errors.Wrapf(err, "stored value under %s is not a JSON array", s.key)
	}

	return docs, nil
}

// Save replaces the stored list in a single write.
func (s *blobStore) Save(ctx context.Context, docs []json.RawMessage) error {
	if docs == nil {
		docs = []json.RawMessage{}
	}

	data, err := json.Marshal(docs)
	if err != nil {
		return errors.Wrap(err, "failed to encode stored warranties")
	}

	if err := s.bucket.WriteAll(ctx, s.key, data, &blob.WriterOptions{ContentType: contentTypeJSON}); err != nil {
		return errors.Wrapf(err, "failed to write %s", s.key)
	}

	s.logger.Debug("Record store saved",
		slog.String("key", s.key),
		slog.Int("documents", len(docs)),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return nil
}
