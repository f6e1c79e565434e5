// Package cache provides the in-memory LRU behind blobstore.CachingStore.
//
// Entries are whole blobs (encoded frames) keyed by name. The cache is
// bounded by its own byte capacity and, optionally, by the memory limit of a
// resource.Controller shared with the rest of the process.
package cache
