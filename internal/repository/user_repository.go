package repository

import (
	"context"
	"errors"
	"fmt"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.DB.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrUsernameTaken
	}
	return err
}

// FindByID loads the user with groups, ready for role resolution.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Preload("Groups").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Preload("Groups").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Preload("Groups").Order("username asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", at).
		Error
}

// FindGroupsByName returns the named groups or ErrUnknownGroup if any is missing.
func (r *UserRepository) FindGroupsByName(ctx context.Context, names []string) ([]model.Group, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var groups []model.Group
	if err := r.DB.WithContext(ctx).Where("name IN ?", names).Find(&groups).Error; err != nil {
		return nil, err
	}
	if len(groups) != len(uniqueStrings(names)) {
		return nil, fmt.Errorf("%w: %v", util.ErrUnknownGroup, names)
	}
	return groups, nil
}

// CountGroupMembers counts members of the named group.
func (r *UserRepository) CountGroupMembers(ctx context.Context, groupName string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN auth_groups ON auth_groups.id = user_groups.group_id").
		Where("auth_groups.name = ?", groupName).
		Count(&count).Error
	return count, err
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
