package models

import "time"

// Student is one registered examinee. Roll numbers carry no uniqueness
// constraint: repeated registrations produce separate rows.
type Student struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Department  string    `gorm:"size:255;not null;index:idx_students_cohort" json:"department"`
	Class       string    `gorm:"size:255;not null;index:idx_students_cohort" json:"class"`
	StudentName string    `gorm:"size:255;not null" json:"student_name"`
	RollNumber  string    `gorm:"size:64;not null" json:"roll_number"`
	IDCardImage string    `gorm:"size:255;not null" json:"id_card_image"`
	CreatedAt   time.Time `json:"created_at"`
}
