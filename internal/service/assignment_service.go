package service

import (
	"context"
	"errors"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/repository"
	"gradebook_backend/internal/util"
	"time"
)

// AssignmentDetailView backs the assignment page.
type AssignmentDetailView struct {
	Assignment     *model.Assignment `json:"assignment"`
	TotalSubs      int64             `json:"totalSubs"`
	AssignedSubs   int64             `json:"assignedSubs"`
	TotalStudents  int64             `json:"totalStudents"`
	IsTA           bool              `json:"isTA"`
	StudentMessage *string           `json:"studentMessage"`
	NotDue         bool              `json:"notDue"`
}

// SubmissionRowView is one line of the grading table.
type SubmissionRowView struct {
	ID       uint     `json:"id"`
	Author   string   `json:"author"`
	FileName string   `json:"fileName"`
	FileURL  string   `json:"fileUrl"`
	Score    *float64 `json:"score"`
	Grader   *string  `json:"grader"`
}

type SubmissionsView struct {
	Assignment  *model.Assignment   `json:"assignment"`
	Submissions []SubmissionRowView `json:"submissions"`
}

// CreateAssignmentRequest is the admin form for a new assignment.
// swagger:model CreateAssignmentRequest
type CreateAssignmentRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description *string   `json:"description"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	Weight      int       `json:"weight" binding:"min=0"`
	Points      int       `json:"points" binding:"min=0"`
}

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
	UserRepo       *repository.UserRepository
	Now            func() time.Time
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
		UserRepo:       userRepo,
		Now:            time.Now,
	}
}

func (s *AssignmentService) List(ctx context.Context) ([]model.Assignment, error) {
	return s.AssignmentRepo.List(ctx)
}

func (s *AssignmentService) Create(ctx context.Context, req *CreateAssignmentRequest) (*model.Assignment, error) {
	a := &model.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Weight:      req.Weight,
		Points:      req.Points,
	}
	if err := s.AssignmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) Detail(ctx context.Context, p *util.Principal, id uint) (*AssignmentDetailView, error) {
	a, err := s.AssignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.Now()

	view := &AssignmentDetailView{
		Assignment: a,
		IsTA:       p.TAOrAdmin(),
		NotDue:     a.Deadline.After(now),
	}
	if view.TotalSubs, err = s.SubmissionRepo.CountByAssignment(ctx, id, repository.SubmissionFilter{}); err != nil {
		return nil, err
	}
	if view.AssignedSubs, err = s.SubmissionRepo.CountByAssignment(ctx, id, repository.SubmissionFilter{GraderID: &p.UserID}); err != nil {
		return nil, err
	}
	if view.TotalStudents, err = s.UserRepo.CountGroupMembers(ctx, model.GroupStudents); err != nil {
		return nil, err
	}

	if p.IsStudent {
		sub, err := s.SubmissionRepo.FindByAssignmentAndAuthor(ctx, id, p.UserID)
		if errors.Is(err, util.ErrSubmissionNotFound) {
			sub, err = nil, nil
		}
		if err != nil {
			return nil, err
		}
		msg := StudentMessage(a, sub, now)
		view.StudentMessage = &msg
	}
	return view, nil
}

// Submissions lists what p may grade: everything for an admin, otherwise only
// the submissions assigned to p.
func (s *AssignmentService) Submissions(ctx context.Context, p *util.Principal, id uint) (*SubmissionsView, error) {
	if !p.TAOrAdmin() {
		return nil, util.ErrPermissionDenied
	}
	a, err := s.AssignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var graderID *uint
	if !p.IsAdmin {
		graderID = &p.UserID
	}
	subs, err := s.SubmissionRepo.ListByAssignment(ctx, id, graderID)
	if err != nil {
		return nil, err
	}

	rows := make([]SubmissionRowView, 0, len(subs))
	for _, sub := range subs {
		row := SubmissionRowView{
			ID:       sub.ID,
			FileName: sub.FileName,
			FileURL:  FileURL(sub.FileKey),
			Score:    sub.Score,
		}
		if sub.Author != nil {
			row.Author = sub.Author.Username
		}
		if sub.Grader != nil {
			name := sub.Grader.Username
			row.Grader = &name
		}
		rows = append(rows, row)
	}
	return &SubmissionsView{Assignment: a, Submissions: rows}, nil
}
