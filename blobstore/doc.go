// Package blobstore provides the storage abstraction behind persisted buffers.
//
// BlobStore is a flat namespace of immutable blobs addressed by '/'-separated
// names. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and ephemeral use
//   - LocalStore: local filesystem with atomic temp-file + rename writes
//   - CachingStore: read-through LRU in front of any other store
//   - s3.Store: Amazon S3 (aws-sdk-go-v2)
//   - minio.Store: MinIO and other S3-compatible stores
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Get(ctx, name) ([]byte, error)
//	    Put(ctx, name, data) error     // Atomic write
//	    Delete(ctx, name) error        // Missing blobs are not an error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Missing blobs are reported with an error satisfying errors.Is(err, ErrNotFound).
package blobstore
