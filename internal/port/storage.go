package port

import (
	"context"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
)

type AssemblyStore interface {
	// NextID reports the id the next Create would allocate.
	NextID(ctx context.Context) (string, error)
	// Create allocates an id, assigns it to a and persists header and clips
	// in one transaction.
	Create(ctx context.Context, a *domain.Assembly) error
	Save(ctx context.Context, a *domain.Assembly) error
	// Finalize writes the terminal state of a record that is still processing.
	// It returns domain.ErrNotFound when the record is gone or already terminal.
	Finalize(ctx context.Context, a *domain.Assembly) error
	Get(ctx context.Context, id string) (*domain.Assembly, error)
	List(ctx context.Context) ([]*domain.Assembly, error)
	Delete(ctx context.Context, id string) (bool, error)
	UpdateNote(ctx context.Context, id, note string) (bool, error)
	// FailProcessing marks every processing record failed with reason.
	FailProcessing(ctx context.Context, reason string) (int64, error)
}

// Catalog holds the current snapshot of indexed sources.
type Catalog interface {
	Sources(ctx context.Context) ([]domain.Source, error)
	ReplaceSources(ctx context.Context, sources []domain.Source) error
}
