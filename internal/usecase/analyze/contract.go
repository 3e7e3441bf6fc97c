package analyze

import (
	"context"

	domres "github.com/talentgrid/resumedex/internal/domain/resume"
)

// Repository defines the storage contract for analyzed resume records.
type Repository interface {
	Save(ctx context.Context, rec domres.Record) (bool, error)
	Get(ctx context.Context, name string) (domres.Record, error)
	List(ctx context.Context, cursor string, limit int) ([]domres.Record, string, error)
	Delete(ctx context.Context, name string) error
	Count(ctx context.Context) (int, error)
}

// Extractor converts raw document bytes into plain text.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}
