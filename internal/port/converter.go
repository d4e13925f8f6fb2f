package port

import (
	"context"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
)

type Prober interface {
	Probe(ctx context.Context, path string) (domain.MediaInfo, error)
}

type Cutter interface {
	Cut(ctx context.Context, req domain.CutRequest) error
}

type Concatenator interface {
	Concat(ctx context.Context, segments []string, outputPath string) error
}

// MediaConverter is everything the pipeline and the catalog need from the
// external transcoder and analysis tools.
type MediaConverter interface {
	Prober
	Cutter
	Concatenator
	Thumbnail(ctx context.Context, inputPath, outputPath string) error
}
