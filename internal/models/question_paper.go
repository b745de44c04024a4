package models

import "time"

// QuestionPaper binds one stored paper file to one student of the cohort it
// was published to. The student identity fields are copied at publish time,
// so the row stays valid even if the student collection changes later.
type QuestionPaper struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Department        string    `gorm:"size:255;not null;index:idx_question_papers_cohort" json:"department"`
	Class             string    `gorm:"size:255;not null;index:idx_question_papers_cohort" json:"class"`
	StudentName       string    `gorm:"size:255;not null" json:"student_name"`
	RollNumber        string    `gorm:"size:64;not null" json:"roll_number"`
	IDCardImage       string    `gorm:"size:255;not null" json:"id_card_image"`
	QuestionPaperCode string    `gorm:"size:64;not null" json:"question_paper_code"`
	QuestionPaperFile string    `gorm:"size:255;not null" json:"question_paper_file"`
	CreatedAt         time.Time `json:"created_at"`
}
