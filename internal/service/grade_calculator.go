package service

import (
	"fmt"
	"gradebook_backend/internal/model"
	"strconv"
	"time"
)

// Profile statuses for a student's assignment row.
const (
	StatusUngraded = "Ungraded"
	StatusNotDue   = "Not due"
	StatusMissing  = "Missing"
	GradeNA        = "N/A"
)

// Percentage returns score as a percentage of points, rounded to one decimal.
// ok is false when the assignment has no points to divide by.
func Percentage(score float64, points int) (pct float64, ok bool) {
	if points <= 0 {
		return 0, false
	}
	return roundPercent(score / float64(points) * 100), true
}

// roundPercent rounds to the value "%.1f" prints, so exact halves go to even
// (6.25 becomes 6.2).
func roundPercent(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return v
}

func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// gradedPercent is the percentage of a graded submission, if it has one.
func gradedPercent(a *model.Assignment, sub *model.Submission) (float64, bool) {
	if sub == nil || sub.Score == nil {
		return 0, false
	}
	return Percentage(*sub.Score, a.Points)
}

// StudentMessage is the status line shown to a student on the assignment
// page. sub is nil when the student has not submitted.
func StudentMessage(a *model.Assignment, sub *model.Submission, now time.Time) string {
	notDue := a.Deadline.After(now)

	if pct, ok := gradedPercent(a, sub); ok {
		return fmt.Sprintf("Your submission, %s, received %.2f/%d points (%s)",
			sub.FileName, *sub.Score, a.Points, FormatPercent(pct))
	}
	if sub != nil {
		if notDue {
			return fmt.Sprintf("Your current submission is %s", sub.FileName)
		}
		return fmt.Sprintf("Your submission, %s, is being graded", sub.FileName)
	}
	if notDue {
		return "No current submission"
	}
	return "You did not submit this assignment and received 0 points"
}

// StudentStatus is the profile cell for one assignment, with the numeric
// percentage when graded.
func StudentStatus(a *model.Assignment, sub *model.Submission, now time.Time) (string, *float64) {
	if pct, ok := gradedPercent(a, sub); ok {
		return FormatPercent(pct), &pct
	}
	if sub != nil {
		return StatusUngraded, nil
	}
	if a.Deadline.After(now) {
		return StatusNotDue, nil
	}
	return StatusMissing, nil
}

// OverallGrade is the weighted grade over past-due assignments.
type OverallGrade struct {
	PointsEarned    float64
	PointsAvailable float64
	Grade           *float64
}

func (g OverallGrade) Display() string {
	if g.Grade == nil {
		return GradeNA
	}
	return FormatPercent(*g.Grade)
}

// ComputeOverall sums weights over assignments whose deadline has passed.
// Graded submissions add weight*score/points earned; missing submissions add
// only to the available weight; ungraded ones are skipped. subs is keyed by
// assignment id.
func ComputeOverall(assignments []model.Assignment, subs map[uint]*model.Submission, now time.Time) OverallGrade {
	var g OverallGrade
	for i := range assignments {
		a := &assignments[i]
		if !a.IsDue(now) || a.Points <= 0 {
			continue
		}
		sub := subs[a.ID]
		switch {
		case sub == nil:
			g.PointsAvailable += float64(a.Weight)
		case sub.Score != nil:
			g.PointsAvailable += float64(a.Weight)
			g.PointsEarned += float64(a.Weight) * *sub.Score / float64(a.Points)
		}
	}
	if g.PointsAvailable > 0 {
		grade := roundPercent(g.PointsEarned / g.PointsAvailable * 100)
		g.Grade = &grade
	}
	return g
}
