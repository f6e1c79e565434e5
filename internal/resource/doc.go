// Package resource bounds the batch and persistence layers.
//
// A Controller hands out:
//
//   - worker slots (a weighted semaphore) for Batch rows
//   - memory reservations for frames held by the blob cache
//   - IO tokens (a token bucket in bytes per second) for blob store traffic
//
// Every method of a nil *Controller is a no-op, so limits stay optional:
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 4})
//	err := rc.Run(ctx, func() error {
//	    return work(ctx)
//	})
package resource
