package service

import (
	"context"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/examdesk/examdesk-api/internal/dto"
	"github.com/examdesk/examdesk-api/internal/models"
	"github.com/examdesk/examdesk-api/internal/repository"
)

// StudentService exposes the add-student use case.
type StudentService interface {
	Register(ctx context.Context, payload dto.StudentCreateRequest, idCard *multipart.FileHeader) (dto.StudentResponse, error)
}

type studentService struct {
	repo      repository.StudentRepository
	intake    FileIntake
	validator *validator.Validate
	cache     *redis.Client
	logger    zerolog.Logger
}

// NewStudentService builds a new student service. The cache client may be nil.
func NewStudentService(repo repository.StudentRepository, intake FileIntake, validate *validator.Validate, cache *redis.Client, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		intake:    intake,
		validator: validate,
		cache:     cache,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

// Register stores the ID card image first, then inserts the student record
// pointing at it. A record insert failure leaves the stored file in place.
// Duplicate roll numbers are not rejected.
func (s *studentService) Register(ctx context.Context, payload dto.StudentCreateRequest, idCard *multipart.FileHeader) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	stored, err := s.intake.Store(ctx, idCard)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	student := models.Student{
		Department:  payload.Department,
		Class:       payload.Class,
		StudentName: payload.StudentName,
		RollNumber:  payload.RollNumber,
		IDCardImage: stored.Name,
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.invalidateCohortOptions(ctx)

	s.logger.Info().
		Uint("student_id", student.ID).
		Str("department", student.Department).
		Str("class", student.Class).
		Msg("student registered")

	return dto.NewStudentResponse(student), nil
}

// invalidateCohortOptions drops the cached distinct department/class lists so
// the publish form sees the new student's cohort immediately.
func (s *studentService) invalidateCohortOptions(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, cohortOptionsCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate cohort options cache")
	}
}
