package controller

import (
	"fmt"
	"gradebook_backend/internal/service"
	"gradebook_backend/internal/util"
	"gradebook_backend/pkg/logger"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UploadController struct {
	SubmissionService *service.SubmissionService
}

func NewUploadController(submissionService *service.SubmissionService) *UploadController {
	return &UploadController{SubmissionService: submissionService}
}

// Download godoc
// @Summary Download a submitted file
// @Description Allowed for the submission's author, its grader and admins
// @Tags submissions
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param filename path string true "Stored file key"
// @Success 200 {file} binary
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /uploads/{filename} [get]
func (c *UploadController) Download(ctx *gin.Context) {
	key := strings.TrimPrefix(ctx.Param("filename"), "/")
	if key == "" {
		util.NotFound(ctx)
		return
	}
	p := util.GetPrincipalFromContext(ctx)

	sub, rc, err := c.SubmissionService.OpenFile(ctx.Request.Context(), p, key)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	defer rc.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, util.CleanFileName(sub.FileName)))
	ctx.Header("Content-Type", util.MimeOctetStream)
	ctx.Status(http.StatusOK)
	if _, err := io.Copy(ctx.Writer, rc); err != nil {
		logger.Log.Warn("file download interrupted", zap.String("key", key), zap.Error(err))
	}
}
