package domain

import "context"

// TextExtractor converts a raw document (PDF, DOCX, plain text) into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}
