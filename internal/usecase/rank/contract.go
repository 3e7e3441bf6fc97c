package rank

import (
	"context"

	domres "github.com/talentgrid/resumedex/internal/domain/resume"
)

// RecordReader reads stored resume records for ranking.
type RecordReader interface {
	Get(ctx context.Context, name string) (domres.Record, error)
	All(ctx context.Context) ([]domres.Record, error)
}
