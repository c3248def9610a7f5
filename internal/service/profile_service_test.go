package service

import (
	"context"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statuses(rows []ProfileRowView) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Status
	}
	return out
}

func TestStudentProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService()

	alice := testutil.CreateStudent(t, env.db, "alice")
	past := env.now.Add(-time.Hour)
	future := env.now.Add(time.Hour)

	graded := testutil.CreateAssignment(t, env.db, "Graded", past, 20, 100)
	ungraded := testutil.CreateAssignment(t, env.db, "Ungraded", past, 30, 100)
	testutil.CreateAssignment(t, env.db, "Missing", past, 30, 100)
	testutil.CreateAssignment(t, env.db, "Future", future, 20, 100)
	testutil.CreateSubmission(t, env.db, graded, alice, nil, testutil.Score(85))
	testutil.CreateSubmission(t, env.db, ungraded, alice, nil, nil)

	view, err := svc.Profile(context.Background(), env.principal(t, alice), "")
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, model.RoleStudent.String(), view.Role)
	assert.Empty(t, view.GradingRows)
	assert.Equal(t, []string{"85.0%", StatusUngraded, StatusMissing, StatusNotDue}, statuses(view.StudentRows))

	// 20*0.85 earned of 20+30 available
	require.NotNil(t, view.Grade)
	assert.Equal(t, 34.0, *view.Grade)
	assert.Equal(t, "34.0%", view.GradeDisplay)
}

func TestStudentProfileSingleAssignmentExample(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService()

	alice := testutil.CreateStudent(t, env.db, "alice")
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(-time.Hour), 20, 100)
	testutil.CreateSubmission(t, env.db, a, alice, nil, testutil.Score(85))

	view, err := svc.Profile(context.Background(), env.principal(t, alice), "")
	require.NoError(t, err)
	assert.Equal(t, "85.0%", view.StudentRows[0].Status)
	assert.Equal(t, "85.0%", view.GradeDisplay)
}

func TestStudentProfileWithNothingDue(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService()

	alice := testutil.CreateStudent(t, env.db, "alice")
	testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(time.Hour), 20, 100)

	view, err := svc.Profile(context.Background(), env.principal(t, alice), "")
	require.NoError(t, err)
	assert.Nil(t, view.Grade)
	assert.Equal(t, GradeNA, view.GradeDisplay)
}

func TestStudentProfileOrdering(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService()

	alice := testutil.CreateStudent(t, env.db, "alice")
	past := env.now.Add(-time.Hour)
	a1 := testutil.CreateAssignment(t, env.db, "A1", past, 10, 100)
	testutil.CreateAssignment(t, env.db, "A2", past, 10, 100)
	a3 := testutil.CreateAssignment(t, env.db, "A3", past, 10, 100)
	testutil.CreateSubmission(t, env.db, a1, alice, nil, testutil.Score(70))
	testutil.CreateSubmission(t, env.db, a3, alice, nil, testutil.Score(90))

	p := env.principal(t, alice)

	view, err := svc.Profile(context.Background(), p, OrderingGrade)
	require.NoError(t, err)
	assert.Equal(t, []string{"70.0%", "90.0%", StatusMissing}, statuses(view.StudentRows))

	view, err = svc.Profile(context.Background(), p, OrderingGradeDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"90.0%", "70.0%", StatusMissing}, statuses(view.StudentRows))

	view, err = svc.Profile(context.Background(), p, "bogus")
	require.NoError(t, err)
	assert.Equal(t, []string{"70.0%", StatusMissing, "90.0%"}, statuses(view.StudentRows))
}

func TestGraderProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profileService()

	ta := testutil.CreateTA(t, env.db, "ta")
	otherTA := testutil.CreateTA(t, env.db, "ta2")
	admin := testutil.CreateAdmin(t, env.db, "root")
	due := testutil.CreateAssignment(t, env.db, "Due", env.now.Add(-time.Hour), 10, 100)
	testutil.CreateAssignment(t, env.db, "Open", env.now.Add(time.Hour), 10, 100)

	testutil.CreateSubmission(t, env.db, due, testutil.CreateStudent(t, env.db, "s1"), ta, testutil.Score(10))
	testutil.CreateSubmission(t, env.db, due, testutil.CreateStudent(t, env.db, "s2"), ta, nil)
	testutil.CreateSubmission(t, env.db, due, testutil.CreateStudent(t, env.db, "s3"), otherTA, testutil.Score(20))

	view, err := svc.Profile(context.Background(), env.principal(t, ta), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1/2", StatusNotDue}, statuses(view.GradingRows))
	assert.Empty(t, view.StudentRows)
	assert.Nil(t, view.Grade)

	view, err = svc.Profile(context.Background(), env.principal(t, admin), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2/3", StatusNotDue}, statuses(view.GradingRows))
	assert.Equal(t, model.RoleAdmin.String(), view.Role)
}
