package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Deadline    time.Time `gorm:"not null;index" json:"deadline"`
	Weight      int       `gorm:"not null" json:"weight"`
	Points      int       `gorm:"not null" json:"points"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// IsDue reports whether the deadline has passed at now.
func (a *Assignment) IsDue(now time.Time) bool {
	return a.Deadline.Before(now)
}
