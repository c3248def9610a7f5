package controller

import (
	"errors"
	"gradebook_backend/internal/service"
	"gradebook_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
	SubmissionService *service.SubmissionService
	GradingService    *service.GradingService
}

func NewAssignmentController(
	assignmentService *service.AssignmentService,
	submissionService *service.SubmissionService,
	gradingService *service.GradingService,
) *AssignmentController {
	return &AssignmentController{
		AssignmentService: assignmentService,
		SubmissionService: submissionService,
		GradingService:    gradingService,
	}
}

// GradeRequest is the JSON form of the grading table.
// swagger:model GradeRequest
type GradeRequest struct {
	Grades []service.GradeEntry `json:"grades" binding:"dive"`
}

// RedirectResponse tells JSON clients where a browser would have been sent.
// swagger:model RedirectResponse
type RedirectResponse struct {
	Location string `json:"location"`
}

func assignmentID(ctx *gin.Context) (uint, bool) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx)
	}
	return id, ok
}

// redirectOrJSON answers a form post with 303 See Other, or with the target
// location for JSON clients.
func redirectOrJSON(ctx *gin.Context, location string) {
	if util.WantsJSON(ctx) {
		util.Success(ctx, RedirectResponse{Location: location})
		return
	}
	ctx.Redirect(http.StatusSeeOther, location)
}

// ListAssignments godoc
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Failure 401 {object} util.Response
// @Router /assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.AssignmentService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// GetAssignment godoc
// @Summary Assignment page
// @Description Submission counts, and the requester's status message when they are a student
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response{data=service.AssignmentDetailView}
// @Failure 404 {object} util.Response
// @Router /assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	id, ok := assignmentID(ctx)
	if !ok {
		return
	}
	p := util.GetPrincipalFromContext(ctx)

	view, err := c.AssignmentService.Detail(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// ListSubmissions godoc
// @Summary Grading table
// @Description Admins see every submission; TAs see the ones assigned to them. Ordered by author username.
// @Tags grading
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response{data=service.SubmissionsView}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /assignments/{id}/submissions [get]
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	id, ok := assignmentID(ctx)
	if !ok {
		return
	}
	p := util.GetPrincipalFromContext(ctx)

	view, err := c.AssignmentService.Submissions(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Grade godoc
// @Summary Record grades
// @Description Form fields grade-<submissionId>, or a JSON body. Scores that are not numbers clear the grade.
// @Tags grading
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param body body GradeRequest false "JSON grades"
// @Success 303 "Redirect to the grading table"
// @Success 200 {object} util.Response{data=RedirectResponse} "JSON clients"
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /assignments/{id}/grade [post]
func (c *AssignmentController) Grade(ctx *gin.Context) {
	id, ok := assignmentID(ctx)
	if !ok {
		return
	}
	p := util.GetPrincipalFromContext(ctx)

	var entries []service.GradeEntry
	if ctx.ContentType() == gin.MIMEJSON {
		var req GradeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		entries = req.Grades
	} else {
		if err := ctx.Request.ParseMultipartForm(util.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			util.BadRequest(ctx, err.Error())
			return
		}
		var err error
		if entries, err = service.ParseGradeForm(ctx.Request.PostForm); err != nil {
			util.HandleError(ctx, err)
			return
		}
	}

	if err := c.GradingService.Grade(ctx.Request.Context(), p, id, entries); err != nil {
		util.HandleError(ctx, err)
		return
	}
	redirectOrJSON(ctx, service.SubmissionsURL(id))
}

// Submit godoc
// @Summary Submit a file
// @Description Creates the student's submission, or replaces its file. Rejected after the deadline.
// @Tags submissions
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param submittedFile formData file true "Submission file"
// @Success 303 "Redirect to the assignment page"
// @Success 200 {object} util.Response{data=RedirectResponse} "JSON clients"
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	id, ok := assignmentID(ctx)
	if !ok {
		return
	}
	p := util.GetPrincipalFromContext(ctx)

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, util.MaxUploadSize)
	file, err := ctx.FormFile("submittedFile")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		util.BadRequest(ctx, err.Error())
		return
	}

	if _, err := c.SubmissionService.Submit(ctx.Request.Context(), p, id, file); err != nil {
		util.HandleError(ctx, err)
		return
	}
	redirectOrJSON(ctx, service.AssignmentURL(id))
}
