package util

import (
	"gradebook_backend/internal/model"

	"github.com/gin-gonic/gin"
)

// Principal is the authenticated requester with role membership resolved
// once per request. A user may be admin, TA and student at the same time.
type Principal struct {
	UserID    uint
	Username  string
	IsAdmin   bool
	IsTA      bool
	IsStudent bool
}

func NewPrincipal(u *model.User) *Principal {
	return &Principal{
		UserID:    u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		IsTA:      u.InGroup(model.GroupTeachingAssistants),
		IsStudent: u.InGroup(model.GroupStudents),
	}
}

func (p *Principal) Role() model.Role {
	return model.ClassifyRole(p.IsAdmin, p.IsTA, p.IsStudent)
}

func (p *Principal) TAOrAdmin() bool {
	return p.IsTA || p.IsAdmin
}

func GetPrincipalFromContext(c *gin.Context) *Principal {
	v, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil
	}
	p, ok := v.(*Principal)
	if !ok {
		return nil
	}
	return p
}
