package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/examdesk/examdesk-api/internal/observability"
)

// FileStore abstracts the content directory the service writes uploads into.
type FileStore interface {
	Save(ctx context.Context, originalName string, reader io.Reader) (string, error)
}

// StoredFile describes an upload that reached the content directory.
type StoredFile struct {
	Name      string
	SizeBytes int64
	MimeType  string
}

// FileIntake validates and stores one uploaded file per request.
type FileIntake interface {
	Store(ctx context.Context, file *multipart.FileHeader) (StoredFile, error)
}

type fileIntake struct {
	store   FileStore
	logger  zerolog.Logger
	maxSize int64
	tracer  trace.Tracer
}

// NewFileIntake constructs the intake with a size limit in mebibytes.
func NewFileIntake(store FileStore, maxSizeMB int, logger zerolog.Logger) FileIntake {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &fileIntake{
		store:   store,
		logger:  logger.With().Str("component", "file_intake").Logger(),
		maxSize: int64(maxSizeMB) * 1024 * 1024,
		tracer:  otel.Tracer("github.com/examdesk/examdesk-api/internal/service/intake"),
	}
}

// Store rejects missing or oversized files, then writes the payload to the
// content directory. Any file type is accepted; the detected MIME type is
// recorded for observability only.
func (s *fileIntake) Store(ctx context.Context, file *multipart.FileHeader) (StoredFile, error) {
	ctx, span := s.tracer.Start(ctx, "intake.store")
	defer span.End()

	span.SetAttributes(attribute.Int64("intake.max_bytes", s.maxSize))

	start := time.Now()
	defer func() {
		observability.UploadLatency().Observe(time.Since(start).Seconds())
	}()

	if file == nil {
		observability.UploadsRejected().WithLabelValues("missing").Inc()
		span.RecordError(ErrFileRequired)
		span.SetStatus(codes.Error, "file missing")
		return StoredFile{}, ErrFileRequired
	}

	span.SetAttributes(
		attribute.String("intake.original_name", file.Filename),
		attribute.Int64("intake.request_size", file.Size),
	)

	if file.Size > s.maxSize {
		observability.UploadsRejected().WithLabelValues("size").Inc()
		span.RecordError(ErrUploadTooLarge)
		span.SetStatus(codes.Error, "payload too large")
		return StoredFile{}, ErrUploadTooLarge
	}

	handle, err := file.Open()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return StoredFile{}, err
	}
	defer handle.Close()

	// The declared size is client-controlled, so re-check while reading.
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(handle, s.maxSize+1)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return StoredFile{}, err
	}
	if int64(buf.Len()) > s.maxSize {
		observability.UploadsRejected().WithLabelValues("size").Inc()
		span.RecordError(ErrUploadTooLarge)
		span.SetStatus(codes.Error, "payload too large")
		return StoredFile{}, ErrUploadTooLarge
	}

	mime := mimetype.Detect(buf.Bytes()).String()
	span.SetAttributes(attribute.String("intake.detected_mime", mime))

	name, err := s.store.Save(ctx, file.Filename, bytes.NewReader(buf.Bytes()))
	if err != nil {
		observability.UploadsRejected().WithLabelValues("storage").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failed")
		s.logger.Error().Err(err).Str("original_name", file.Filename).Msg("file storage failed")
		return StoredFile{}, &storageFailure{err: err}
	}

	observability.UploadsStored().WithLabelValues(mime).Inc()
	span.SetAttributes(attribute.String("intake.stored_name", name))
	span.SetStatus(codes.Ok, "stored")

	s.logger.Info().Str("stored_name", name).Int("size_bytes", buf.Len()).Msg("upload stored")

	return StoredFile{
		Name:      name,
		SizeBytes: int64(buf.Len()),
		MimeType:  mime,
	}, nil
}

// storageFailure wraps content-directory write errors so callers can match
// them with errors.Is(err, ErrFileStorage) while keeping the cause.
type storageFailure struct {
	err error
}

func (f *storageFailure) Error() string {
	return ErrFileStorage.Error() + ": " + f.err.Error()
}

func (f *storageFailure) Unwrap() error {
	return f.err
}

func (f *storageFailure) Is(target error) bool {
	return target == ErrFileStorage
}
