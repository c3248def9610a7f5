package controller

import (
	"gradebook_backend/internal/service"
	"gradebook_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// GetProfile godoc
// @Summary Profile page
// @Description Grading progress for TAs and admins; per-assignment status and the overall grade for students
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param ordering query string false "Sort student rows by percentage" Enums(grade, -grade)
// @Success 200 {object} util.Response{data=service.ProfileView}
// @Failure 401 {object} util.Response
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	p := util.GetPrincipalFromContext(ctx)

	view, err := c.ProfileService.Profile(ctx.Request.Context(), p, ctx.Query("ordering"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
