package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/examdesk/examdesk-api/internal/models"
)

func TestStudentRepositoryFindByCohort(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	seed := []models.Student{
		{Department: "CS", Class: "A", StudentName: "Alice", RollNumber: "1", IDCardImage: "a.png"},
		{Department: "CS", Class: "A", StudentName: "Bob", RollNumber: "2", IDCardImage: "b.png"},
		{Department: "CS", Class: "B", StudentName: "Carol", RollNumber: "3", IDCardImage: "c.png"},
		{Department: "EE", Class: "A", StudentName: "Dave", RollNumber: "4", IDCardImage: "d.png"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(context.Background(), &seed[i]))
	}

	students, err := repo.FindByCohort(context.Background(), "CS", "A")
	require.NoError(t, err)
	require.Len(t, students, 2)
	for _, student := range students {
		require.Equal(t, "CS", student.Department)
		require.Equal(t, "A", student.Class)
	}

	students, err = repo.FindByCohort(context.Background(), "ME", "Z")
	require.NoError(t, err)
	require.Empty(t, students)
}

func TestStudentRepositoryAllowsDuplicateRollNumbers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	first := models.Student{Department: "CS", Class: "A", StudentName: "Alice", RollNumber: "7", IDCardImage: "a.png"}
	second := models.Student{Department: "CS", Class: "A", StudentName: "Alice Again", RollNumber: "7", IDCardImage: "b.png"}

	require.NoError(t, repo.Create(context.Background(), &first))
	require.NoError(t, repo.Create(context.Background(), &second))
	require.NotEqual(t, first.ID, second.ID)

	students, err := repo.FindByCohort(context.Background(), "CS", "A")
	require.NoError(t, err)
	require.Len(t, students, 2)
}

func TestStudentRepositoryDistinctValues(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	seed := []models.Student{
		{Department: "CS", Class: "A", StudentName: "Alice", RollNumber: "1", IDCardImage: "a.png"},
		{Department: "CS", Class: "B", StudentName: "Bob", RollNumber: "2", IDCardImage: "b.png"},
		{Department: "EE", Class: "A", StudentName: "Carol", RollNumber: "3", IDCardImage: "c.png"},
		{Department: "EE", Class: "A", StudentName: "Dave", RollNumber: "4", IDCardImage: "d.png"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(context.Background(), &seed[i]))
	}

	departments, err := repo.DistinctDepartments(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"CS", "EE"}, departments)

	classes, err := repo.DistinctClasses(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, classes)
}

func TestStudentRepositoryDistinctValuesEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	departments, err := repo.DistinctDepartments(context.Background())
	require.NoError(t, err)
	require.Empty(t, departments)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}, &models.QuestionPaper{}))
	return db
}
