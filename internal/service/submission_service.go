package service

import (
	"context"
	"errors"
	"fmt"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/repository"
	"gradebook_backend/internal/util"
	"gradebook_backend/pkg/logger"
	"gradebook_backend/pkg/monitoring"
	"gradebook_backend/pkg/tracing"
	"io"
	"mime/multipart"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubmissionService struct {
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
	Graders        *GraderService
	Storage        *StorageService
	Now            func() time.Time
}

func NewSubmissionService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	graders *GraderService,
	storage *StorageService,
) *SubmissionService {
	return &SubmissionService{
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
		Graders:        graders,
		Storage:        storage,
		Now:            time.Now,
	}
}

// AssignmentURL is the page a student lands on after submitting.
func AssignmentURL(assignmentID uint) string {
	return fmt.Sprintf("/%d/", assignmentID)
}

// Submit stores file as the student's submission for the assignment. The
// first submission gets a grader; later ones only replace the file and keep
// any score already given.
func (s *SubmissionService) Submit(ctx context.Context, p *util.Principal, assignmentID uint, file *multipart.FileHeader) (sub *model.Submission, err error) {
	ctx, span := tracing.StartSpan(ctx, "SubmissionService.Submit",
		attribute.Int64("assignment.id", int64(assignmentID)),
		attribute.Int64("user.id", int64(p.UserID)))
	defer func() { tracing.EndSpan(span, err) }()

	assignment, err := s.AssignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.IsDue(s.Now()) {
		return nil, util.ErrPastDeadline
	}
	if file == nil {
		return nil, util.ErrFileRequired
	}

	key, name, err := s.store(ctx, assignmentID, file)
	if err != nil {
		return nil, err
	}

	sub, err = s.save(ctx, assignmentID, p.UserID, key, name)
	if err != nil {
		s.removeObject(ctx, key)
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) store(ctx context.Context, assignmentID uint, file *multipart.FileHeader) (key, name string, err error) {
	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		if contentType, err = util.DetectMimeType(src); err != nil {
			return "", "", err
		}
	}

	name = util.CleanFileName(file.Filename)
	key = SubmissionKey(assignmentID, name)
	if err := s.Storage.Upload(ctx, key, src, file.Size, contentType); err != nil {
		return "", "", fmt.Errorf("storing submission file: %w", err)
	}
	return key, name, nil
}

func (s *SubmissionService) save(ctx context.Context, assignmentID, authorID uint, key, name string) (*model.Submission, error) {
	existing, err := s.SubmissionRepo.FindByAssignmentAndAuthor(ctx, assignmentID, authorID)
	if err == nil {
		return s.replaceFile(ctx, existing, key, name)
	}
	if !errors.Is(err, util.ErrSubmissionNotFound) {
		return nil, err
	}

	graderID, err := s.Graders.PickGrader(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	sub := &model.Submission{
		AssignmentID: assignmentID,
		AuthorID:     authorID,
		GraderID:     graderID,
		FileKey:      key,
		FileName:     name,
	}
	err = s.SubmissionRepo.Create(ctx, sub)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent first submission won the insert
		existing, err := s.SubmissionRepo.FindByAssignmentAndAuthor(ctx, assignmentID, authorID)
		if err != nil {
			return nil, err
		}
		return s.replaceFile(ctx, existing, key, name)
	}
	if err != nil {
		return nil, err
	}

	monitoring.SubmissionCounter.WithLabelValues("created").Inc()
	logger.Log.Info("submission created",
		zap.Uint("submissionId", sub.ID),
		zap.Uint("assignmentId", assignmentID),
		zap.Uint("authorId", authorID))
	return sub, nil
}

func (s *SubmissionService) replaceFile(ctx context.Context, sub *model.Submission, key, name string) (*model.Submission, error) {
	if err := s.SubmissionRepo.UpdateFile(ctx, sub.ID, key, name); err != nil {
		return nil, err
	}
	oldKey := sub.FileKey
	sub.FileKey = key
	sub.FileName = name
	s.removeObject(ctx, oldKey)

	monitoring.SubmissionCounter.WithLabelValues("replaced").Inc()
	logger.Log.Info("submission file replaced",
		zap.Uint("submissionId", sub.ID),
		zap.Uint("assignmentId", sub.AssignmentID))
	return sub, nil
}

func (s *SubmissionService) removeObject(ctx context.Context, key string) {
	if err := s.Storage.Delete(ctx, key); err != nil {
		logger.Log.Warn("failed to remove stored file", zap.String("key", key), zap.Error(err))
	}
}

// CanAccess reports whether p may download the submission's file.
func CanAccess(p *util.Principal, sub *model.Submission) bool {
	return p.IsAdmin || sub.AuthorID == p.UserID || sub.IsGradedBy(p.UserID)
}

// OpenFile returns the submission owning key and a reader over its bytes.
// The caller closes the reader.
func (s *SubmissionService) OpenFile(ctx context.Context, p *util.Principal, key string) (*model.Submission, io.ReadCloser, error) {
	sub, err := s.SubmissionRepo.FindByFileKey(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	if !CanAccess(p, sub) {
		logger.Log.Warn("file access denied",
			zap.Uint("userId", p.UserID),
			zap.Uint("submissionId", sub.ID))
		return nil, nil, util.ErrPermissionDenied
	}
	rc, err := s.Storage.Open(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	return sub, rc, nil
}
