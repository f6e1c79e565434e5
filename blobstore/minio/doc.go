// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible storage systems like Ceph,
// SeaweedFS and Garage, without any AWS dependency.
//
// # Basic Usage
//
//	store, err := minio.NewStoreWithCredentials("localhost:9000",
//	    "minioadmin", "minioadmin", false, "my-bucket", "bitvec/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo := persistence.NewRepository(store)
//
// An existing *minio.Client can be wrapped with NewStore.
package minio
