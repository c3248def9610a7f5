// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"bytes"
	"fmt"
	"gradebook_backend/internal/model"
	"gradebook_backend/pkg/database"
	"mime/multipart"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// NewDB returns a migrated in-memory SQLite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

// CreateUser stores a user with the given password and groups.
func CreateUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool, groups ...string) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	var gs []model.Group
	if len(groups) > 0 {
		if err := db.Where("name IN ?", groups).Find(&gs).Error; err != nil {
			t.Fatalf("loading groups: %v", err)
		}
	}
	u := &model.User{
		Username: username,
		Password: string(hashed),
		IsAdmin:  isAdmin,
		IsActive: true,
		Groups:   gs,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return u
}

func CreateStudent(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	return CreateUser(t, db, username, "password", false, model.GroupStudents)
}

func CreateTA(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	return CreateUser(t, db, username, "password", false, model.GroupTeachingAssistants)
}

func CreateAdmin(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	return CreateUser(t, db, username, "password", true)
}

func CreateAssignment(t *testing.T, db *gorm.DB, title string, deadline time.Time, weight, points int) *model.Assignment {
	t.Helper()
	a := &model.Assignment{Title: title, Deadline: deadline, Weight: weight, Points: points}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("creating assignment %s: %v", title, err)
	}
	return a
}

// CreateSubmission stores a submission directly, bypassing the workflow.
func CreateSubmission(t *testing.T, db *gorm.DB, a *model.Assignment, author *model.User, grader *model.User, score *float64) *model.Submission {
	t.Helper()
	s := &model.Submission{
		AssignmentID: a.ID,
		AuthorID:     author.ID,
		FileKey:      fmt.Sprintf("submissions/%d/%d/%s.txt", a.ID, author.ID, author.Username),
		FileName:     author.Username + ".txt",
		Score:        score,
	}
	if grader != nil {
		s.GraderID = &grader.ID
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("creating submission: %v", err)
	}
	return s
}

func Score(v float64) *float64 {
	return &v
}

// FileHeader builds an uploaded file the way a multipart request delivers it.
func FileHeader(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	part.Write([]byte(content))
	w.Close()

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("reading form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}
