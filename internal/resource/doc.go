// Package resource implements admission control for action dispatch.
//
// The Controller bounds two things:
//
//   - Concurrency: a weighted semaphore caps the actions running at once
//   - Rate: a token bucket caps the sustained dispatch rate
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentActions: 4,
//	    ActionsPerSecond:     1000,
//	    Burst:                100,
//	})
//
//	if err := rc.Acquire(ctx); err != nil {
//	    return err
//	}
//	defer rc.Release()
//
// TryAcquire is the non-blocking variant; it fails with ErrBusy or
// ErrRateLimited and leaves retry policy to the caller.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limiting without nil checks everywhere.
package resource
