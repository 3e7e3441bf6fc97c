package resumedex

import "github.com/talentgrid/resumedex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrResumeNotFound      = domain.ErrResumeNotFound
	ErrEmptyJobDescription = domain.ErrEmptyJobDescription
	ErrDocumentUnreadable  = domain.ErrDocumentUnreadable
	ErrInvalidInput        = domain.ErrInvalidInput
)
