package service

import (
	"context"
	"fmt"
	"gradebook_backend/internal/repository"
	"gradebook_backend/internal/util"
	"gradebook_backend/pkg/logger"
	"gradebook_backend/pkg/monitoring"
	"gradebook_backend/pkg/tracing"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const gradeFieldPrefix = "grade-"

// GradeEntry is one (submission, score text) pair from the grading form.
type GradeEntry struct {
	SubmissionID uint   `json:"submissionId" binding:"required"`
	Score        string `json:"score"`
}

type GradingService struct {
	SubmissionRepo *repository.SubmissionRepository
}

func NewGradingService(submissionRepo *repository.SubmissionRepository) *GradingService {
	return &GradingService{SubmissionRepo: submissionRepo}
}

// SubmissionsURL is the page a grader returns to after grading.
func SubmissionsURL(assignmentID uint) string {
	return fmt.Sprintf("/%d/submissions", assignmentID)
}

// ParseGradeForm collects the grade-<id> fields of a posted form, ordered by
// submission id. Other fields are ignored.
func ParseGradeForm(form url.Values) ([]GradeEntry, error) {
	var entries []GradeEntry
	for key, values := range form {
		if !strings.HasPrefix(key, gradeFieldPrefix) {
			continue
		}
		id, ok := util.ParseID(strings.TrimPrefix(key, gradeFieldPrefix))
		if !ok {
			return nil, fmt.Errorf("%w: %q", util.ErrInvalidSubmissionID, key)
		}
		var score string
		if len(values) > 0 {
			score = values[0]
		}
		entries = append(entries, GradeEntry{SubmissionID: id, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].SubmissionID < entries[j].SubmissionID })
	return entries, nil
}

// ParseScore reads a decimal score. Anything that is not a finite number
// yields nil, which clears the score.
func ParseScore(text string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Grade applies entries in order. There is no rollback: when an entry names
// an unknown submission, the earlier ones stay saved.
func (s *GradingService) Grade(ctx context.Context, p *util.Principal, assignmentID uint, entries []GradeEntry) (err error) {
	ctx, span := tracing.StartSpan(ctx, "GradingService.Grade",
		attribute.Int64("assignment.id", int64(assignmentID)),
		attribute.Int("grades", len(entries)))
	defer func() { tracing.EndSpan(span, err) }()

	if !p.TAOrAdmin() {
		return util.ErrPermissionDenied
	}

	for _, e := range entries {
		if e.SubmissionID == 0 {
			return util.ErrInvalidSubmissionID
		}
		sub, err := s.SubmissionRepo.FindByID(ctx, e.SubmissionID)
		if err != nil {
			return err
		}

		score := ParseScore(e.Score)
		if err := s.SubmissionRepo.UpdateScore(ctx, sub.ID, score); err != nil {
			return err
		}

		result := "scored"
		if score == nil {
			result = "cleared"
		}
		monitoring.GradeCounter.WithLabelValues(result).Inc()
		logger.Log.Info("submission graded",
			zap.Uint("submissionId", sub.ID),
			zap.Uint("graderId", p.UserID),
			zap.String("result", result))
	}
	return nil
}
