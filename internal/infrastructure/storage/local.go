// Package storage provides the object store backing uploaded files.
// The only implementation writes under a local upload root; the port it
// satisfies would equally admit an S3-style backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type Local struct {
	logger  *zap.Logger
	root    string
	baseURL string
}

func NewLocal(logger *zap.Logger, root, baseURL string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	logger.Info("local object store ready", zap.String("root", root))

	return &Local{
		logger:  logger,
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save streams r into the object at key, creating parent directories as
// needed. Keys use forward slashes regardless of platform.
func (l *Local) Save(ctx context.Context, key string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("create object: %w", err)
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(p)
		return fmt.Errorf("write object: %w", err)
	}

	return f.Close()
}

// Delete removes the object at key. A missing object is not an error;
// replace-on-upload may already have raced the record away.
func (l *Local) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

func (l *Local) PublicURL(key string) string {
	return l.baseURL + "/" + key
}

// path resolves key under the root and rejects anything escaping it.
func (l *Local) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.root, clean), nil
}
