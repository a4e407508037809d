// Package transfer delivers serialized sidecars to their destination.
package transfer

import "context"

// Sink stores a byte payload as dir/filename on some target. Implementations
// own their connection lifecycle; a failed Put surfaces the error to the
// caller and is never retried internally.
type Sink interface {
	Put(ctx context.Context, content []byte, dir, filename string) error
}
