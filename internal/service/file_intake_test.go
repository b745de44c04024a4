package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/examdesk/examdesk-api/pkg/localstore"
)

type failingStore struct{}

func (failingStore) Save(ctx context.Context, originalName string, reader io.Reader) (string, error) {
	return "", fmt.Errorf("disk full")
}

func TestFileIntakeRejectsMissingFile(t *testing.T) {
	intake := NewFileIntake(failingStore{}, 5, testLogger())

	_, err := intake.Store(context.Background(), nil)
	require.ErrorIs(t, err, ErrFileRequired)
}

func TestFileIntakeRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir, testLogger())
	require.NoError(t, err)
	intake := NewFileIntake(store, 1, testLogger())

	file := buildFileHeader(t, "big.pdf", bytes.Repeat([]byte("a"), 2*1024*1024))

	_, err = intake.Store(context.Background(), file)
	require.ErrorIs(t, err, ErrUploadTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "rejected upload must not reach the content directory")
}

func TestFileIntakeStoresFile(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir, testLogger())
	require.NoError(t, err)
	intake := NewFileIntake(store, 5, testLogger())

	file := buildFileHeader(t, "paper.pdf", []byte("%PDF-1.4 exam paper"))

	stored, err := intake.Store(context.Background(), file)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(stored.Name, ".pdf"))
	require.Equal(t, int64(len("%PDF-1.4 exam paper")), stored.SizeBytes)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, stored.Name, entries[0].Name())
}

func TestFileIntakeAcceptsAnyFileType(t *testing.T) {
	store, err := localstore.New(t.TempDir(), testLogger())
	require.NoError(t, err)
	intake := NewFileIntake(store, 5, testLogger())

	file := buildFileHeader(t, "notes.txt", []byte("plain text is fine"))

	stored, err := intake.Store(context.Background(), file)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(stored.Name, ".txt"))
}

func TestFileIntakeWrapsStorageFailure(t *testing.T) {
	intake := NewFileIntake(failingStore{}, 5, testLogger())

	file := buildFileHeader(t, "paper.pdf", []byte("payload"))

	_, err := intake.Store(context.Background(), file)
	require.ErrorIs(t, err, ErrFileStorage)
	require.False(t, errors.Is(err, ErrUploadTooLarge))
}
