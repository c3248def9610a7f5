package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("username and password do not match")
	ErrAccountDisabled     = errors.New("account disabled")
	ErrSessionExpired      = errors.New("session expired")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrFileNotFound        = errors.New("file not found")
	ErrPastDeadline        = errors.New("assignment is past due")
	ErrFileRequired        = errors.New("file is required")
	ErrInvalidSubmissionID = errors.New("invalid submission id")
	ErrUnknownGroup        = errors.New("unknown group")
)
