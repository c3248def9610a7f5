package model

import "time"

// Submission is never soft-deleted, so the (assignment, author) unique index
// holds over every row.
//
// swagger:model Submission
type Submission struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	AssignmentID uint        `gorm:"not null;uniqueIndex:idx_submission_assignment_author,priority:1" json:"assignmentId"`
	Assignment   *Assignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"assignment,omitempty"`
	AuthorID     uint        `gorm:"not null;uniqueIndex:idx_submission_assignment_author,priority:2" json:"authorId"`
	Author       *User       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	GraderID     *uint       `gorm:"index" json:"graderId"`
	Grader       *User       `gorm:"foreignKey:GraderID;constraint:OnDelete:SET NULL" json:"grader,omitempty"`
	FileKey      string      `gorm:"size:255;uniqueIndex;not null" json:"fileKey"`
	FileName     string      `gorm:"size:255;not null" json:"fileName"`
	Score        *float64    `gorm:"type:decimal(6,2)" json:"score"`
}

func (Submission) TableName() string {
	return "submissions"
}

// IsGradedBy reports whether userID is the assigned grader.
func (s *Submission) IsGradedBy(userID uint) bool {
	return s.GraderID != nil && *s.GraderID == userID
}
