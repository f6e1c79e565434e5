package s3

import (
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
)

// UploadConfig tunes how frames are written to S3.
//
// Most frames fit in a single PutObject; the multipart settings only matter
// for buffers of hundreds of megabits.
type UploadConfig struct {
	// PartSize is the multipart threshold and part size in bytes.
	// Values below manager.MinUploadPartSize are raised to it.
	PartSize int64

	// Concurrency is the number of parts uploaded in parallel.
	Concurrency int

	// EnableChecksum asks S3 to verify a CRC32C of every object.
	EnableChecksum bool
}

// DefaultUploadConfig uses 8 MiB parts, 4 parallel parts and CRC32C.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		PartSize:       8 << 20,
		Concurrency:    4,
		EnableChecksum: true,
	}
}

func newUploader(client Client, cfg UploadConfig) *manager.Uploader {
	return manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = max(cfg.PartSize, manager.MinUploadPartSize)
		if cfg.Concurrency > 0 {
			u.Concurrency = cfg.Concurrency
		}
	})
}
