package resumedex

import "context"

// Extractor converts binary documents (PDF, DOCX) to plain text.
// Implementations should return ErrDocumentUnreadable (wrapped) for
// documents they cannot process; other errors are wrapped into it.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}
