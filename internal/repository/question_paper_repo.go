package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/examdesk/examdesk-api/internal/models"
)

// QuestionPaperRepository persists the per-student question paper rows.
type QuestionPaperRepository interface {
	Create(ctx context.Context, paper *models.QuestionPaper) error
	List(ctx context.Context) ([]models.QuestionPaper, error)
}

type questionPaperRepository struct {
	db *gorm.DB
}

// NewQuestionPaperRepository constructs a question paper repository.
func NewQuestionPaperRepository(db *gorm.DB) QuestionPaperRepository {
	return &questionPaperRepository{db: db}
}

func (r *questionPaperRepository) Create(ctx context.Context, paper *models.QuestionPaper) error {
	return r.db.WithContext(ctx).Create(paper).Error
}

func (r *questionPaperRepository) List(ctx context.Context) ([]models.QuestionPaper, error) {
	var papers []models.QuestionPaper
	if err := r.db.WithContext(ctx).Find(&papers).Error; err != nil {
		return nil, err
	}

	return papers, nil
}
