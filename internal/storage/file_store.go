package storage

import (
	"context"
	"io"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// driver
	_ "gocloud.dev/blob/memblob"  // register the mem:// driver, used in tests
	"gocloud.dev/gcerrors"

	apperrors "github.com/allisson/filebucket/internal/errors"
)

// FileStore abstracts the durable byte storage for asset content. Keys are
// POSIX-style relative paths produced by BuildPath.
type FileStore interface {
	// Write stores the bytes read from r under key, overwriting any
	// previous content.
	Write(ctx context.Context, key string, r io.Reader) error

	// Delete removes the bytes stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Open returns a reader over the bytes stored under key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Close releases resources held by the store.
	Close() error
}

// blobFileStore implements FileStore on top of a gocloud.dev blob bucket.
type blobFileStore struct {
	bucket *blob.Bucket
}

// NewFileStore opens the blob bucket identified by storageURL
// (e.g. "file:///var/lib/filebucket?create_dir=true" or "mem://").
// The file driver creates parent directories on write when create_dir is
// set, which provides the idempotent directory provisioning for asset paths.
func NewFileStore(ctx context.Context, storageURL string) (FileStore, error) {
	bucket, err := blob.OpenBucket(ctx, storageURL)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrStorageIO, "failed to open storage bucket %q: %v", storageURL, err)
	}
	return &blobFileStore{bucket: bucket}, nil
}

// NewFileStoreFromBucket wraps an already-open blob bucket.
func NewFileStoreFromBucket(bucket *blob.Bucket) FileStore {
	return &blobFileStore{bucket: bucket}
}

// Write stores the bytes read from r under key.
func (b *blobFileStore) Write(ctx context.Context, key string, r io.Reader) error {
	w, err := b.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrStorageIO, "failed to open writer for %q: %v", key, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		// Abort the write so no partial object is committed.
		_ = w.Close()
		return apperrors.Wrapf(apperrors.ErrStorageIO, "failed to write %q: %v", key, err)
	}
	if err := w.Close(); err != nil {
		return apperrors.Wrapf(apperrors.ErrStorageIO, "failed to commit %q: %v", key, err)
	}
	return nil
}

// Delete removes the bytes stored under key. An absent key is treated as
// already deleted.
func (b *blobFileStore) Delete(ctx context.Context, key string) error {
	err := b.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}
	return apperrors.Wrapf(apperrors.ErrStorageIO, "failed to delete %q: %v", key, err)
}

// Open returns a reader over the bytes stored under key.
func (b *blobFileStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := b.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "file %q not found", key)
		}
		return nil, apperrors.Wrapf(apperrors.ErrStorageIO, "failed to open %q: %v", key, err)
	}
	return r, nil
}

// Close releases resources held by the store.
func (b *blobFileStore) Close() error {
	return b.bucket.Close()
}
