package services

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrInvalidGroupSize = errors.New("group must have between 2 and 5 members")
	ErrSelfSwipe        = errors.New("cannot swipe on yourself")
	ErrInvalidDecision  = errors.New("swipe decision must be like or pass")
)
