package ports

import (
	"context"
	"io"
)

type ObjectStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
