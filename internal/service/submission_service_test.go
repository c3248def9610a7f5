package service

import (
	"context"
	"fmt"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/testutil"
	"gradebook_backend/internal/util"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestSubmitCreatesSubmissionWithLeastLoadedGrader(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.submissionService()

	ta1 := testutil.CreateTA(t, env.db, "ta1")
	ta2 := testutil.CreateTA(t, env.db, "ta2")
	ta3 := testutil.CreateTA(t, env.db, "ta3")
	other := testutil.CreateAssignment(t, env.db, "Old", env.now.Add(-time.Hour), 10, 100)
	testutil.CreateSubmission(t, env.db, other, testutil.CreateStudent(t, env.db, "x1"), ta1, nil)
	testutil.CreateSubmission(t, env.db, other, testutil.CreateStudent(t, env.db, "x2"), ta1, nil)
	testutil.CreateSubmission(t, env.db, other, testutil.CreateStudent(t, env.db, "x3"), ta3, nil)

	student := testutil.CreateStudent(t, env.db, "alice")
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(time.Hour), 20, 100)

	sub, err := svc.Submit(ctx, env.principal(t, student), a.ID, testutil.FileHeader(t, "submittedFile", "hw1.py", "print(1)"))
	require.NoError(t, err)
	require.NotNil(t, sub.GraderID)
	assert.Equal(t, ta2.ID, *sub.GraderID)
	assert.Nil(t, sub.Score)
	assert.Equal(t, "hw1.py", sub.FileName)
	assert.Equal(t, fmt.Sprintf("/%d/", a.ID), AssignmentURL(a.ID))

	rc, err := env.storage.Open(ctx, sub.FileKey)
	require.NoError(t, err)
	assert.Equal(t, "print(1)", readAll(t, rc))
}

func TestResubmitReplacesFileKeepsGrading(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.submissionService()

	ta := testutil.CreateTA(t, env.db, "ta")
	student := testutil.CreateStudent(t, env.db, "alice")
	p := env.principal(t, student)
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(time.Hour), 20, 100)

	first, err := svc.Submit(ctx, p, a.ID, testutil.FileHeader(t, "submittedFile", "v1.txt", "one"))
	require.NoError(t, err)
	require.NoError(t, env.submissions.UpdateScore(ctx, first.ID, testutil.Score(77)))

	second, err := svc.Submit(ctx, p, a.ID, testutil.FileHeader(t, "submittedFile", "v2.txt", "two"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	env.db.Model(&model.Submission{}).Where("assignment_id = ? AND author_id = ?", a.ID, student.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	stored, err := env.submissions.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2.txt", stored.FileName)
	require.NotNil(t, stored.Score)
	assert.InDelta(t, 77, *stored.Score, 0.001)
	require.NotNil(t, stored.GraderID)
	assert.Equal(t, ta.ID, *stored.GraderID)

	_, err = env.storage.Open(ctx, first.FileKey)
	assert.ErrorIs(t, err, util.ErrFileNotFound, "previous file is removed")
}

func TestSubmitDeadline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.submissionService()

	p := env.principal(t, testutil.CreateStudent(t, env.db, "alice"))
	late := testutil.CreateAssignment(t, env.db, "Late", env.now.Add(-time.Second), 10, 100)
	exact := testutil.CreateAssignment(t, env.db, "Exact", env.now, 10, 100)

	_, err := svc.Submit(ctx, p, late.ID, testutil.FileHeader(t, "submittedFile", "a.txt", "a"))
	assert.ErrorIs(t, err, util.ErrPastDeadline)

	_, err = svc.Submit(ctx, p, exact.ID, testutil.FileHeader(t, "submittedFile", "a.txt", "a"))
	assert.NoError(t, err)
}

func TestSubmitErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.submissionService()

	p := env.principal(t, testutil.CreateStudent(t, env.db, "alice"))
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(time.Hour), 10, 100)

	_, err := svc.Submit(ctx, p, 999, testutil.FileHeader(t, "submittedFile", "a.txt", "a"))
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)

	_, err = svc.Submit(ctx, p, a.ID, nil)
	assert.ErrorIs(t, err, util.ErrFileRequired)
}

func TestSubmitWithoutTAs(t *testing.T) {
	env := newTestEnv(t)
	svc := env.submissionService()

	p := env.principal(t, testutil.CreateStudent(t, env.db, "alice"))
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(time.Hour), 10, 100)

	sub, err := svc.Submit(context.Background(), p, a.ID, testutil.FileHeader(t, "submittedFile", "a.txt", "a"))
	require.NoError(t, err)
	assert.Nil(t, sub.GraderID)
}

func TestOpenFileAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.submissionService()

	ta := testutil.CreateTA(t, env.db, "ta")
	otherTA := testutil.CreateTA(t, env.db, "ta-other")
	author := testutil.CreateStudent(t, env.db, "alice")
	stranger := testutil.CreateStudent(t, env.db, "bob")
	admin := testutil.CreateAdmin(t, env.db, "root")
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(time.Hour), 10, 100)

	sub, err := svc.Submit(ctx, env.principal(t, author), a.ID, testutil.FileHeader(t, "submittedFile", "essay.txt", "words"))
	require.NoError(t, err)
	require.NotNil(t, sub.GraderID)
	require.Equal(t, ta.ID, *sub.GraderID)

	for _, u := range []*model.User{author, ta, admin} {
		got, rc, err := svc.OpenFile(ctx, env.principal(t, u), sub.FileKey)
		require.NoError(t, err, u.Username)
		assert.Equal(t, "essay.txt", got.FileName)
		assert.Equal(t, "words", readAll(t, rc))
	}

	for _, u := range []*model.User{stranger, otherTA} {
		_, _, err := svc.OpenFile(ctx, env.principal(t, u), sub.FileKey)
		assert.ErrorIs(t, err, util.ErrPermissionDenied, u.Username)
	}

	_, _, err = svc.OpenFile(ctx, env.principal(t, admin), "submissions/none")
	assert.ErrorIs(t, err, util.ErrFileNotFound)
}

func TestSubmissionKeyIsUniqueAndClean(t *testing.T) {
	k1 := SubmissionKey(3, `..\..\evil "name".txt`)
	k2 := SubmissionKey(3, "evil.txt")

	assert.True(t, strings.HasPrefix(k1, "submissions/3/"))
	assert.True(t, strings.HasSuffix(k1, "/evil name.txt"))
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, "/api/uploads/"+k1, FileURL(k1))
}

func TestSubmitLosesFirstInsertRace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.submissionService()

	ta := testutil.CreateTA(t, env.db, "ta")
	student := testutil.CreateStudent(t, env.db, "alice")
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(time.Hour), 20, 100)
	p := env.principal(t, student)

	rivalKey := SubmissionKey(a.ID, "first.txt")
	require.NoError(t, env.storage.Upload(ctx, rivalKey, strings.NewReader("first"), 5, "text/plain"))

	// another request inserts the same (assignment, author) row after the
	// lookup found nothing but before this insert runs
	raced := false
	err := env.db.Callback().Create().Before("gorm:begin_transaction").Register("test:rival_submission", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "submissions" {
			return
		}
		raced = true
		rival := &model.Submission{
			AssignmentID: a.ID,
			AuthorID:     student.ID,
			GraderID:     &ta.ID,
			FileKey:      rivalKey,
			FileName:     "first.txt",
		}
		if err := tx.Session(&gorm.Session{NewDB: true}).Create(rival).Error; err != nil {
			tx.AddError(err)
		}
	})
	require.NoError(t, err)

	sub, err := svc.Submit(ctx, p, a.ID, testutil.FileHeader(t, "submittedFile", "second.txt", "second"))
	require.NoError(t, err)
	assert.True(t, raced)
	assert.Equal(t, "second.txt", sub.FileName)
	require.NotNil(t, sub.GraderID)
	assert.Equal(t, ta.ID, *sub.GraderID)

	var rows []model.Submission
	require.NoError(t, env.db.Where("assignment_id = ? AND author_id = ?", a.ID, student.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, sub.ID, rows[0].ID)
	assert.Equal(t, sub.FileKey, rows[0].FileKey)
	assert.Equal(t, "second.txt", rows[0].FileName)

	rc, err := env.storage.Open(ctx, sub.FileKey)
	require.NoError(t, err)
	assert.Equal(t, "second", readAll(t, rc))
	_, err = env.storage.Open(ctx, rivalKey)
	assert.ErrorIs(t, err, util.ErrFileNotFound)
}
