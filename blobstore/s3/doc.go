// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.NewStoreFromConfig(ctx, "my-bucket", "bitvec/",
//	    config.WithRegion("eu-central-1"),
//	)
//
// or, with an existing client:
//
//	store := s3.NewStore(s3sdk.NewFromConfig(cfg), "my-bucket", "bitvec/")
//
// # Features
//
//   - Multipart uploads through the SDK upload manager
//   - CRC32C upload checksums
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
