// Package localstore writes uploaded files into a local content directory
// and hands back the generated filename for later retrieval over HTTP.
package localstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store persists files on the local filesystem under random unique names.
type Store struct {
	dir    string
	logger zerolog.Logger
}

// New creates the content directory if needed and returns a store rooted there.
func New(dir string, logger zerolog.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("content directory must not be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create content directory: %w", err)
	}

	return &Store{
		dir:    dir,
		logger: logger.With().Str("component", "localstore").Logger(),
	}, nil
}

// Dir returns the content directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the reader's contents to a new file named after a random UUID,
// keeping the original file's extension. It returns the stored filename.
func (s *Store) Save(ctx context.Context, originalName string, reader io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, reader); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	s.logger.Debug().Str("file", name).Msg("file stored")

	return name, nil
}
