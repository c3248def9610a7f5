package repository

import (
	"context"
	"errors"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/util"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// SubmissionFilter narrows the per-assignment counts.
type SubmissionFilter struct {
	GraderID   *uint
	GradedOnly bool
}

// Create returns gorm.ErrDuplicatedKey when the author already has a
// submission for the assignment.
func (r *SubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uint) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) FindByAssignmentAndAuthor(ctx context.Context, assignmentID, authorID uint) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.WithContext(ctx).
		Where("assignment_id = ? AND author_id = ?", assignmentID, authorID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) FindByFileKey(ctx context.Context, key string) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.WithContext(ctx).Where("file_key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByAssignment returns the assignment's submissions ordered by author
// username. A non-nil graderID limits the result to that grader's share.
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID uint, graderID *uint) ([]model.Submission, error) {
	var ss []model.Submission
	query := r.DB.WithContext(ctx).
		Preload("Author").
		Preload("Grader").
		Joins("JOIN users AS authors ON authors.id = submissions.author_id").
		Where("submissions.assignment_id = ?", assignmentID)
	if graderID != nil {
		query = query.Where("submissions.grader_id = ?", *graderID)
	}
	err := query.Order("authors.username asc").Order("submissions.id asc").Find(&ss).Error
	return ss, err
}

func (r *SubmissionRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Submission, error) {
	var ss []model.Submission
	err := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Find(&ss).Error
	return ss, err
}

func (r *SubmissionRepository) CountByAssignment(ctx context.Context, assignmentID uint, f SubmissionFilter) (int64, error) {
	var count int64
	query := r.DB.WithContext(ctx).Model(&model.Submission{}).Where("assignment_id = ?", assignmentID)
	if f.GraderID != nil {
		query = query.Where("grader_id = ?", *f.GraderID)
	}
	if f.GradedOnly {
		query = query.Where("score IS NOT NULL")
	}
	err := query.Count(&count).Error
	return count, err
}

// UpdateFile swaps the stored file in place; score and grader are untouched.
func (r *SubmissionRepository) UpdateFile(ctx context.Context, id uint, fileKey, fileName string) error {
	return r.DB.WithContext(ctx).Model(&model.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"file_key":  fileKey,
			"file_name": fileName,
		}).Error
}

// UpdateScore writes score, or NULL when score is nil.
func (r *SubmissionRepository) UpdateScore(ctx context.Context, id uint, score *float64) error {
	return r.DB.WithContext(ctx).Model(&model.Submission{}).
		Where("id = ?", id).
		Update("score", score).Error
}

type graderLoad struct {
	UserID uint
	Total  int64
}

// FindLeastLoadedTA returns the Teaching Assistant with the fewest submissions
// assigned as grader, lowest id first on ties. It returns nil when the group
// has no members.
func (r *SubmissionRepository) FindLeastLoadedTA(ctx context.Context) (*uint, error) {
	var rows []graderLoad
	err := r.DB.WithContext(ctx).
		Table("users").
		Select("users.id AS user_id, COUNT(submissions.id) AS total").
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN auth_groups ON auth_groups.id = user_groups.group_id AND auth_groups.name = ?", model.GroupTeachingAssistants).
		Joins("LEFT JOIN submissions ON submissions.grader_id = users.id").
		Where("users.deleted_at IS NULL").
		Group("users.id").
		Order("total asc, users.id asc").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	id := rows[0].UserID
	return &id, nil
}
