package model

import (
	"time"
)

const (
	GroupStudents           = "Students"
	GroupTeachingAssistants = "Teaching Assistants"
)

// swagger:model Group
type Group struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:150;uniqueIndex;not null" json:"name"`
}

func (Group) TableName() string {
	return "auth_groups"
}

// swagger:model User
type User struct {
	BaseModel
	Username  string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"size:100;not null" json:"-"`
	IsAdmin   bool       `gorm:"default:false" json:"isAdmin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	Groups    []Group    `gorm:"many2many:user_groups;" json:"groups,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// InGroup reports whether the user's loaded groups include name.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}
