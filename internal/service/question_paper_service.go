package service

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/examdesk/examdesk-api/internal/dto"
	"github.com/examdesk/examdesk-api/internal/models"
	"github.com/examdesk/examdesk-api/internal/observability"
	"github.com/examdesk/examdesk-api/internal/repository"
)

const cohortOptionsCacheKey = "cohort:options"

// QuestionPaperService exposes the publish, listing and form-option use cases.
type QuestionPaperService interface {
	Publish(ctx context.Context, payload dto.QuestionPaperPublishRequest, paper *multipart.FileHeader) (dto.PublishReceipt, error)
	List(ctx context.Context) ([]dto.QuestionPaperResponse, error)
	CohortOptions(ctx context.Context) (dto.CohortOptions, error)
}

type questionPaperService struct {
	papers    repository.QuestionPaperRepository
	students  repository.StudentRepository
	intake    FileIntake
	validator *validator.Validate
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

// NewQuestionPaperService builds a new question paper service. The cache
// client may be nil, in which case cohort options are read from the store on
// every request.
func NewQuestionPaperService(papers repository.QuestionPaperRepository, students repository.StudentRepository, intake FileIntake, validate *validator.Validate, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) QuestionPaperService {
	return &questionPaperService{
		papers:    papers,
		students:  students,
		intake:    intake,
		validator: validate,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger.With().Str("component", "question_paper_service").Logger(),
	}
}

// Publish stores the uploaded paper, then creates one QuestionPaper row per
// student registered under the submitted department and class. Matching zero
// students is a successful no-op. Every insert is attempted even if an
// earlier one fails; a partial batch is reported as an *AssociationError
// carrying the completion count, with the inserted rows left in place.
func (s *questionPaperService) Publish(ctx context.Context, payload dto.QuestionPaperPublishRequest, paper *multipart.FileHeader) (dto.PublishReceipt, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PublishReceipt{}, err
	}

	stored, err := s.intake.Store(ctx, paper)
	if err != nil {
		return dto.PublishReceipt{}, err
	}

	students, err := s.students.FindByCohort(ctx, payload.Department, payload.Class)
	if err != nil {
		return dto.PublishReceipt{}, err
	}

	created := 0
	var insertErrs []error
	for _, student := range students {
		row := models.QuestionPaper{
			Department:        payload.Department,
			Class:             payload.Class,
			StudentName:       student.StudentName,
			RollNumber:        student.RollNumber,
			IDCardImage:       student.IDCardImage,
			QuestionPaperCode: payload.QuestionPaperCode,
			QuestionPaperFile: stored.Name,
		}

		if err := s.papers.Create(ctx, &row); err != nil {
			insertErrs = append(insertErrs, err)
			continue
		}
		created++
	}

	if created > 0 {
		observability.PapersCreated().Add(float64(created))
	}

	if len(insertErrs) > 0 {
		assocErr := &AssociationError{
			Matched: len(students),
			Created: created,
			Err:     errors.Join(insertErrs...),
		}
		s.logger.Error().Err(assocErr).
			Str("question_paper_code", payload.QuestionPaperCode).
			Msg("question paper partially associated")
		return dto.PublishReceipt{}, assocErr
	}

	s.logger.Info().
		Str("question_paper_code", payload.QuestionPaperCode).
		Str("stored_file", stored.Name).
		Int("papers_created", created).
		Msg("question paper published")

	return dto.PublishReceipt{
		QuestionPaperCode: payload.QuestionPaperCode,
		StoredFile:        stored.Name,
		MatchedStudents:   len(students),
		PapersCreated:     created,
	}, nil
}

func (s *questionPaperService) List(ctx context.Context) ([]dto.QuestionPaperResponse, error) {
	papers, err := s.papers.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewQuestionPaperResponseSlice(papers), nil
}

// CohortOptions returns the distinct departments and classes across all
// students, cached for the configured TTL when a cache client is present.
func (s *questionPaperService) CohortOptions(ctx context.Context) (dto.CohortOptions, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cohortOptionsCacheKey).Result(); err == nil {
			var options dto.CohortOptions
			if unmarshalErr := json.Unmarshal([]byte(cached), &options); unmarshalErr == nil {
				s.logger.Debug().Msg("cohort options cache hit")
				return options, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read cohort options cache")
		}
	}

	departments, err := s.students.DistinctDepartments(ctx)
	if err != nil {
		return dto.CohortOptions{}, err
	}

	classes, err := s.students.DistinctClasses(ctx)
	if err != nil {
		return dto.CohortOptions{}, err
	}

	options := dto.CohortOptions{Departments: departments, Classes: classes}

	if s.cache != nil {
		if payload, err := json.Marshal(options); err == nil {
			if err := s.cache.Set(ctx, cohortOptionsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store cohort options cache")
			}
		}
	}

	return options, nil
}
