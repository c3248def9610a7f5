package service

import (
	"context"
	"fmt"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/testutil"
	"gradebook_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailCountsAndStudentMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.assignmentService()

	ta := testutil.CreateTA(t, env.db, "ta")
	otherTA := testutil.CreateTA(t, env.db, "ta2")
	alice := testutil.CreateStudent(t, env.db, "alice")
	bob := testutil.CreateStudent(t, env.db, "bob")
	testutil.CreateStudent(t, env.db, "carol")
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(-time.Hour), 20, 100)
	testutil.CreateSubmission(t, env.db, a, alice, ta, testutil.Score(85))
	testutil.CreateSubmission(t, env.db, a, bob, otherTA, nil)

	view, err := svc.Detail(ctx, env.principal(t, ta), a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.TotalSubs)
	assert.Equal(t, int64(1), view.AssignedSubs)
	assert.Equal(t, int64(3), view.TotalStudents)
	assert.True(t, view.IsTA)
	assert.False(t, view.NotDue)
	assert.Nil(t, view.StudentMessage)

	view, err = svc.Detail(ctx, env.principal(t, alice), a.ID)
	require.NoError(t, err)
	assert.False(t, view.IsTA)
	require.NotNil(t, view.StudentMessage)
	assert.Equal(t, "Your submission, alice.txt, received 85.00/100 points (85.0%)", *view.StudentMessage)

	carol, err := env.users.FindByUsername(ctx, "carol")
	require.NoError(t, err)
	view, err = svc.Detail(ctx, util.NewPrincipal(carol), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "You did not submit this assignment and received 0 points", *view.StudentMessage)

	_, err = svc.Detail(ctx, env.principal(t, ta), 999)
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)
}

func TestDetailNotDue(t *testing.T) {
	env := newTestEnv(t)
	svc := env.assignmentService()

	alice := testutil.CreateStudent(t, env.db, "alice")
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now.Add(time.Hour), 20, 100)

	view, err := svc.Detail(context.Background(), env.principal(t, alice), a.ID)
	require.NoError(t, err)
	assert.True(t, view.NotDue)
	assert.Equal(t, "No current submission", *view.StudentMessage)
}

func TestSubmissionsScopedByRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.assignmentService()

	ta := testutil.CreateTA(t, env.db, "ta")
	otherTA := testutil.CreateTA(t, env.db, "ta2")
	admin := testutil.CreateAdmin(t, env.db, "root")
	student := testutil.CreateStudent(t, env.db, "zoe")
	a := testutil.CreateAssignment(t, env.db, "HW1", env.now, 20, 100)
	testutil.CreateSubmission(t, env.db, a, student, ta, testutil.Score(50))
	testutil.CreateSubmission(t, env.db, a, testutil.CreateStudent(t, env.db, "adam"), ta, nil)
	testutil.CreateSubmission(t, env.db, a, testutil.CreateStudent(t, env.db, "mia"), otherTA, nil)

	view, err := svc.Submissions(ctx, env.principal(t, ta), a.ID)
	require.NoError(t, err)
	require.Len(t, view.Submissions, 2)
	assert.Equal(t, "adam", view.Submissions[0].Author)
	assert.Equal(t, "zoe", view.Submissions[1].Author)
	require.NotNil(t, view.Submissions[1].Score)
	assert.Equal(t, FileURL(fmt.Sprintf("submissions/%d/%d/zoe.txt", a.ID, student.ID)), view.Submissions[1].FileURL)
	require.NotNil(t, view.Submissions[0].Grader)
	assert.Equal(t, "ta", *view.Submissions[0].Grader)

	view, err = svc.Submissions(ctx, env.principal(t, admin), a.ID)
	require.NoError(t, err)
	require.Len(t, view.Submissions, 3)
	assert.Equal(t, "mia", view.Submissions[1].Author)

	_, err = svc.Submissions(ctx, env.principal(t, student), a.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestCreateAndListAssignments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.assignmentService()

	desc := "first"
	a1, err := svc.Create(ctx, &CreateAssignmentRequest{Title: "HW1", Description: &desc, Deadline: env.now, Weight: 10, Points: 50})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateAssignmentRequest{Title: "HW2", Deadline: env.now, Weight: 10, Points: 50})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)
	assert.Equal(t, "HW2", list[1].Title)
	assert.Nil(t, list[1].Description)
	assert.IsType(t, model.Assignment{}, list[0])
}
