package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/examdesk/examdesk-api/internal/models"
)

// StudentRepository provides access to student records.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindByCohort(ctx context.Context, department, class string) ([]models.Student, error)
	DistinctDepartments(ctx context.Context) ([]string, error)
	DistinctClasses(ctx context.Context) ([]string, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByCohort(ctx context.Context, department, class string) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).
		Where("department = ? AND class = ?", department, class).
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) DistinctDepartments(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "department")
}

func (r *studentRepository) DistinctClasses(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "class")
}

// distinctColumn is only ever called with a fixed column name, never user input.
func (r *studentRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	values := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Distinct().
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}

	return values, nil
}
