package domain

import "errors"

var (
	// ErrResumeNotFound signals a missing resume record.
	ErrResumeNotFound = errors.New("resume not found")
	// ErrDocumentUnreadable signals that the text-extraction service could not read a document.
	ErrDocumentUnreadable = errors.New("document unreadable")
	// ErrEmptyJobDescription signals a blank job description passed to ranking.
	ErrEmptyJobDescription = errors.New("job description is empty")
	// ErrInvalidInput signals a malformed request.
	ErrInvalidInput = errors.New("invalid input")
)
