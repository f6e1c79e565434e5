// Package persistence stores named bit buffers in a blobstore.BlobStore.
//
// A Repository encodes each buffer as a codec frame (explicit bit length,
// endianness tag, optional LZ4/ZSTD compression, CRC32C) and writes it under
// "<name>.bvec". Loading verifies the frame and rebuilds an identical buffer.
//
//	repo := persistence.NewRepository(blobstore.NewLocalStore("/var/lib/bitvec"),
//	    func(o *persistence.Options) {
//	        o.Compression = codec.CompressionZSTD
//	        o.IOLimitBytesPerSec = 64 << 20
//	    },
//	)
//	err := repo.Save(ctx, "users/active", buf)
//	buf, err = repo.Load(ctx, "users/active")
//
// Throughput to the store can be capped with IOLimitBytesPerSec; the limit is
// shared by all operations of one Repository.
package persistence
