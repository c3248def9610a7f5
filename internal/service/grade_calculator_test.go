package service

import (
	"gradebook_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var calcNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func assignment(id uint, deadline time.Time, weight, points int) model.Assignment {
	a := model.Assignment{Title: "A", Deadline: deadline, Weight: weight, Points: points}
	a.ID = id
	return a
}

func scored(aid uint, file string, score *float64) *model.Submission {
	return &model.Submission{AssignmentID: aid, FileName: file, Score: score}
}

func f(v float64) *float64 { return &v }

func TestPercentageRoundsToOneDecimal(t *testing.T) {
	pct, ok := Percentage(85, 100)
	require.True(t, ok)
	assert.Equal(t, "85.0%", FormatPercent(pct))

	pct, ok = Percentage(2, 3)
	require.True(t, ok)
	assert.Equal(t, 66.7, pct)
	assert.Equal(t, "66.7%", FormatPercent(pct))

	// exact halves round to even, as "%.1f" does
	for _, c := range []struct {
		score  float64
		points int
		want   string
	}{
		{0.5, 8, "6.2%"},
		{1, 16, "6.2%"},
		{3, 16, "18.8%"},
		{1, 8, "12.5%"},
	} {
		pct, ok = Percentage(c.score, c.points)
		require.True(t, ok)
		assert.Equal(t, c.want, FormatPercent(pct), "%v/%d", c.score, c.points)
	}

	_, ok = Percentage(5, 0)
	assert.False(t, ok)
}

func TestStudentMessage(t *testing.T) {
	past := calcNow.Add(-time.Hour)
	future := calcNow.Add(time.Hour)

	cases := []struct {
		name     string
		deadline time.Time
		sub      *model.Submission
		want     string
	}{
		{"graded", past, scored(1, "hw.py", f(85)), "Your submission, hw.py, received 85.00/100 points (85.0%)"},
		{"graded before deadline", future, scored(1, "hw.py", f(42.5)), "Your submission, hw.py, received 42.50/100 points (42.5%)"},
		{"ungraded before deadline", future, scored(1, "hw.py", nil), "Your current submission is hw.py"},
		{"ungraded after deadline", past, scored(1, "hw.py", nil), "Your submission, hw.py, is being graded"},
		{"missing before deadline", future, nil, "No current submission"},
		{"missing after deadline", past, nil, "You did not submit this assignment and received 0 points"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := assignment(1, c.deadline, 20, 100)
			assert.Equal(t, c.want, StudentMessage(&a, c.sub, calcNow))
		})
	}
}

func TestStudentStatus(t *testing.T) {
	past := assignment(1, calcNow.Add(-time.Hour), 20, 100)
	future := assignment(2, calcNow.Add(time.Hour), 20, 100)
	pointless := assignment(3, calcNow.Add(-time.Hour), 20, 0)

	status, pct := StudentStatus(&past, scored(1, "x", f(85)), calcNow)
	assert.Equal(t, "85.0%", status)
	require.NotNil(t, pct)
	assert.Equal(t, 85.0, *pct)

	status, pct = StudentStatus(&past, scored(1, "x", nil), calcNow)
	assert.Equal(t, StatusUngraded, status)
	assert.Nil(t, pct)

	status, _ = StudentStatus(&future, nil, calcNow)
	assert.Equal(t, StatusNotDue, status)

	status, _ = StudentStatus(&past, nil, calcNow)
	assert.Equal(t, StatusMissing, status)

	status, pct = StudentStatus(&pointless, scored(3, "x", f(5)), calcNow)
	assert.Equal(t, StatusUngraded, status)
	assert.Nil(t, pct)
}

func TestComputeOverallSingleGraded(t *testing.T) {
	as := []model.Assignment{assignment(1, calcNow.Add(-time.Hour), 20, 100)}
	g := ComputeOverall(as, map[uint]*model.Submission{1: scored(1, "x", f(85))}, calcNow)

	require.NotNil(t, g.Grade)
	assert.Equal(t, 85.0, *g.Grade)
	assert.Equal(t, "85.0%", g.Display())
}

func TestComputeOverallHalfRoundsToEven(t *testing.T) {
	as := []model.Assignment{assignment(1, calcNow.Add(-time.Hour), 16, 16)}
	g := ComputeOverall(as, map[uint]*model.Submission{1: scored(1, "x", f(1))}, calcNow)

	require.NotNil(t, g.Grade)
	assert.Equal(t, 6.2, *g.Grade)
	assert.Equal(t, "6.2%", g.Display())
}

func TestComputeOverallMissingCountsAsZero(t *testing.T) {
	as := []model.Assignment{
		assignment(1, calcNow.Add(-time.Hour), 20, 100),
		assignment(2, calcNow.Add(-time.Hour), 30, 50),
	}
	g := ComputeOverall(as, map[uint]*model.Submission{1: scored(1, "x", f(100))}, calcNow)

	assert.Equal(t, 50.0, g.PointsAvailable)
	assert.Equal(t, 20.0, g.PointsEarned)
	require.NotNil(t, g.Grade)
	assert.Equal(t, "40.0%", g.Display())
}

func TestComputeOverallSkipsUngradedAndNotDue(t *testing.T) {
	as := []model.Assignment{
		assignment(1, calcNow.Add(-time.Hour), 20, 100),
		assignment(2, calcNow.Add(-time.Hour), 30, 100),
		assignment(3, calcNow.Add(time.Hour), 50, 100),
	}
	subs := map[uint]*model.Submission{
		1: scored(1, "x", f(50)),
		2: scored(2, "y", nil),
	}
	g := ComputeOverall(as, subs, calcNow)

	assert.Equal(t, 20.0, g.PointsAvailable)
	assert.Equal(t, "50.0%", g.Display())
}

func TestComputeOverallNothingAvailable(t *testing.T) {
	as := []model.Assignment{
		assignment(1, calcNow.Add(time.Hour), 20, 100),
		assignment(2, calcNow.Add(-time.Hour), 0, 100),
	}
	g := ComputeOverall(as, map[uint]*model.Submission{2: scored(2, "x", f(10))}, calcNow)

	assert.Nil(t, g.Grade)
	assert.Equal(t, GradeNA, g.Display())

	assert.Nil(t, ComputeOverall(nil, nil, calcNow).Grade)
}
