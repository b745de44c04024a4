package dto

import (
	"time"

	"github.com/examdesk/examdesk-api/internal/models"
)

// StudentCreateRequest carries the add-student form fields. The ID card image
// travels separately as a multipart file.
type StudentCreateRequest struct {
	Department  string `form:"department" validate:"required"`
	Class       string `form:"class" validate:"required"`
	StudentName string `form:"studentName" validate:"required"`
	RollNumber  string `form:"rollNumber" validate:"required"`
}

// StudentResponse is the API shape of a stored student record.
type StudentResponse struct {
	ID          uint      `json:"id"`
	Department  string    `json:"department"`
	Class       string    `json:"class"`
	StudentName string    `json:"student_name"`
	RollNumber  string    `json:"roll_number"`
	IDCardImage string    `json:"id_card_image"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewStudentResponse maps a student model to its response shape.
func NewStudentResponse(student models.Student) StudentResponse {
	return StudentResponse{
		ID:          student.ID,
		Department:  student.Department,
		Class:       student.Class,
		StudentName: student.StudentName,
		RollNumber:  student.RollNumber,
		IDCardImage: student.IDCardImage,
		CreatedAt:   student.CreatedAt,
	}
}
