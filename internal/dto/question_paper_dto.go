package dto

import (
	"time"

	"github.com/examdesk/examdesk-api/internal/models"
)

// QuestionPaperPublishRequest carries the post-question-paper form fields.
// The paper file travels separately as a multipart file.
type QuestionPaperPublishRequest struct {
	Department        string `form:"department" validate:"required"`
	Class             string `form:"class" validate:"required"`
	QuestionPaperCode string `form:"questionPaperCode" validate:"required"`
}

// QuestionPaperResponse is the API shape of a stored question paper row.
type QuestionPaperResponse struct {
	ID                uint      `json:"id"`
	Department        string    `json:"department"`
	Class             string    `json:"class"`
	StudentName       string    `json:"student_name"`
	RollNumber        string    `json:"roll_number"`
	IDCardImage       string    `json:"id_card_image"`
	QuestionPaperCode string    `json:"question_paper_code"`
	QuestionPaperFile string    `json:"question_paper_file"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewQuestionPaperResponse maps a question paper model to its response shape.
func NewQuestionPaperResponse(paper models.QuestionPaper) QuestionPaperResponse {
	return QuestionPaperResponse{
		ID:                paper.ID,
		Department:        paper.Department,
		Class:             paper.Class,
		StudentName:       paper.StudentName,
		RollNumber:        paper.RollNumber,
		IDCardImage:       paper.IDCardImage,
		QuestionPaperCode: paper.QuestionPaperCode,
		QuestionPaperFile: paper.QuestionPaperFile,
		CreatedAt:         paper.CreatedAt,
	}
}

// NewQuestionPaperResponseSlice maps a slice of question paper models.
func NewQuestionPaperResponseSlice(papers []models.QuestionPaper) []QuestionPaperResponse {
	responses := make([]QuestionPaperResponse, 0, len(papers))
	for _, paper := range papers {
		responses = append(responses, NewQuestionPaperResponse(paper))
	}

	return responses
}

// CohortOptions lists the distinct departments and classes seen across all
// registered students, for populating the publish form.
type CohortOptions struct {
	Departments []string `json:"departments"`
	Classes     []string `json:"classes"`
}

// PublishReceipt summarises one publish submission. Matching zero students
// is a successful no-op, so MatchedStudents may be zero.
type PublishReceipt struct {
	QuestionPaperCode string `json:"question_paper_code"`
	StoredFile        string `json:"stored_file"`
	MatchedStudents   int    `json:"matched_students"`
	PapersCreated     int    `json:"papers_created"`
}
