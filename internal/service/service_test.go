package service

import (
	"gradebook_backend/internal/config"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/repository"
	"gradebook_backend/internal/testutil"
	"gradebook_backend/internal/util"
	"testing"
	"time"

	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	cfg         *config.Config
	users       *repository.UserRepository
	assignments *repository.AssignmentRepository
	submissions *repository.SubmissionRepository
	storage     *StorageService
	sessions    *MemorySessionStore
	now         time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()},
	}
	storage, err := NewStorageService(cfg)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	return &testEnv{
		db:          db,
		cfg:         cfg,
		users:       repository.NewUserRepository(db),
		assignments: repository.NewAssignmentRepository(db),
		submissions: repository.NewSubmissionRepository(db),
		storage:     storage,
		sessions:    NewMemorySessionStore(time.Hour),
		now:         time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (e *testEnv) clock() time.Time { return e.now }

func (e *testEnv) submissionService() *SubmissionService {
	s := NewSubmissionService(e.assignments, e.submissions, NewGraderService(e.submissions), e.storage)
	s.Now = e.clock
	return s
}

func (e *testEnv) assignmentService() *AssignmentService {
	s := NewAssignmentService(e.assignments, e.submissions, e.users)
	s.Now = e.clock
	return s
}

func (e *testEnv) profileService() *ProfileService {
	s := NewProfileService(e.assignments, e.submissions)
	s.Now = e.clock
	return s
}

// principal loads u with groups, as the auth middleware does.
func (e *testEnv) principal(t *testing.T, u *model.User) *util.Principal {
	t.Helper()
	var loaded model.User
	if err := e.db.Preload("Groups").First(&loaded, u.ID).Error; err != nil {
		t.Fatalf("loading user: %v", err)
	}
	return util.NewPrincipal(&loaded)
}
