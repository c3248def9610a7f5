package service

import (
	"context"
	"gradebook_backend/internal/repository"
	"gradebook_backend/pkg/logger"

	"go.uber.org/zap"
)

type GraderService struct {
	SubmissionRepo *repository.SubmissionRepository
}

func NewGraderService(submissionRepo *repository.SubmissionRepository) *GraderService {
	return &GraderService{SubmissionRepo: submissionRepo}
}

// PickGrader chooses the Teaching Assistant with the fewest submissions
// assigned across all assignments. It returns nil when there are no TAs.
func (s *GraderService) PickGrader(ctx context.Context, assignmentID uint) (*uint, error) {
	id, err := s.SubmissionRepo.FindLeastLoadedTA(ctx)
	if err != nil {
		return nil, err
	}
	if id == nil {
		logger.Log.Warn("no teaching assistants to assign as grader",
			zap.Uint("assignmentId", assignmentID))
	}
	return id, nil
}
