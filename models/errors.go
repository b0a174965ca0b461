package models

import "errors"

var (
	ErrInvalidObjectID = errors.New("invalid object ID")

	ErrUnknownMainCategory = errors.New("main category has not been loaded in this session")
	ErrSubmissionInFlight  = errors.New("a submission is already in progress")
	ErrUploaderDisabled    = errors.New("offer image hosting is not configured")

	ErrRecordNotFound = errors.New("record not found")
)
