// internal/storage/storage.go
package storage

import "context"

// ObjectStore is the attachment blob collaborator. Put returns an
// opaque storage URL; Delete accepts the same URL back. The rule
// engine never interprets the URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte) (string, error)
	Delete(ctx context.Context, storageURL string) error
}
