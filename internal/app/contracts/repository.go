package contracts

import "context"

// IndexInitializer is implemented by repositories that own collection indexes.
type IndexInitializer interface {
	Initialize(ctx context.Context) error
}
