package service

import (
	"context"
	"fmt"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/repository"
	"gradebook_backend/internal/util"
	"sort"
	"time"
)

// Profile orderings accepted by the ordering query parameter.
const (
	OrderingGrade     = "grade"
	OrderingGradeDesc = "-grade"
)

// ProfileRowView is one assignment line on the profile page.
type ProfileRowView struct {
	AssignmentID uint     `json:"assignmentId"`
	Title        string   `json:"title"`
	Status       string   `json:"status"`
	Percentage   *float64 `json:"percentage,omitempty"`
}

type ProfileView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	// GradingRows is set for TAs and admins: "Not due" or graded/assigned.
	GradingRows []ProfileRowView `json:"gradingRows,omitempty"`
	// StudentRows and the grade fields are set for students.
	StudentRows  []ProfileRowView `json:"studentRows,omitempty"`
	Grade        *float64         `json:"grade"`
	GradeDisplay string           `json:"gradeDisplay,omitempty"`
}

type ProfileService struct {
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
	Now            func() time.Time
}

func NewProfileService(assignmentRepo *repository.AssignmentRepository, submissionRepo *repository.SubmissionRepository) *ProfileService {
	return &ProfileService{
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
		Now:            time.Now,
	}
}

func (s *ProfileService) Profile(ctx context.Context, p *util.Principal, ordering string) (*ProfileView, error) {
	assignments, err := s.AssignmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.Now()

	view := &ProfileView{Username: p.Username, Role: p.Role().String()}

	if p.TAOrAdmin() {
		if view.GradingRows, err = s.gradingRows(ctx, p, assignments, now); err != nil {
			return nil, err
		}
	}

	if p.IsStudent {
		subs, err := s.SubmissionRepo.ListByAuthor(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		byAssignment := make(map[uint]*model.Submission, len(subs))
		for i := range subs {
			byAssignment[subs[i].AssignmentID] = &subs[i]
		}

		rows := make([]ProfileRowView, 0, len(assignments))
		for i := range assignments {
			a := &assignments[i]
			status, pct := StudentStatus(a, byAssignment[a.ID], now)
			rows = append(rows, ProfileRowView{AssignmentID: a.ID, Title: a.Title, Status: status, Percentage: pct})
		}
		sortRows(rows, ordering)
		view.StudentRows = rows

		overall := ComputeOverall(assignments, byAssignment, now)
		view.Grade = overall.Grade
		view.GradeDisplay = overall.Display()
	}
	return view, nil
}

func (s *ProfileService) gradingRows(ctx context.Context, p *util.Principal, assignments []model.Assignment, now time.Time) ([]ProfileRowView, error) {
	rows := make([]ProfileRowView, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		row := ProfileRowView{AssignmentID: a.ID, Title: a.Title, Status: StatusNotDue}
		if !a.Deadline.After(now) {
			filter := repository.SubmissionFilter{}
			if !p.IsAdmin {
				filter.GraderID = &p.UserID
			}
			assigned, err := s.SubmissionRepo.CountByAssignment(ctx, a.ID, filter)
			if err != nil {
				return nil, err
			}
			filter.GradedOnly = true
			graded, err := s.SubmissionRepo.CountByAssignment(ctx, a.ID, filter)
			if err != nil {
				return nil, err
			}
			row.Status = fmt.Sprintf("%d/%d", graded, assigned)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sortRows orders by percentage for "grade" and "-grade"; rows without a
// percentage go last either way. Any other value keeps assignment order.
func sortRows(rows []ProfileRowView, ordering string) {
	var desc bool
	switch ordering {
	case OrderingGrade:
	case OrderingGradeDesc:
		desc = true
	default:
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Percentage, rows[j].Percentage
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		if desc {
			return *a > *b
		}
		return *a < *b
	})
}
