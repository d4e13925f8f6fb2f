package domain

import (
	"fmt"
	"math"
)

// BuildClips resolves clip specs against a catalog snapshot and returns the
// ordered clip details of a new assembly. Nothing is persisted here; any error
// rejects the whole submission.
func BuildClips(specs []ClipSpec, sources []Source) ([]ClipDetail, error) {
	if len(sources) == 0 {
		return nil, ErrCatalogEmpty
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyClips)
	}

	clips := make([]ClipDetail, 0, len(specs))
	for i, spec := range specs {
		pos := i + 1
		src, ok := ResolveSource(spec.Source, sources)
		if !ok {
			return nil, &ValidationError{Pos: pos, Reason: fmt.Sprintf("source %s not found", spec.Source)}
		}

		start := 0.0
		if spec.Start != nil {
			start = *spec.Start
		}
		if !finite(start) {
			return nil, &ValidationError{Pos: pos, Reason: "start must be a finite number"}
		}
		if spec.End != nil && !finite(*spec.End) {
			return nil, &ValidationError{Pos: pos, Reason: "end must be a finite number"}
		}
		end := src.Duration
		if spec.End != nil && *spec.End < end {
			end = *spec.End
		}

		if start < 0 {
			return nil, &ValidationError{Pos: pos, Reason: "start must not be negative"}
		}
		if start >= end {
			return nil, &ValidationError{Pos: pos, Reason: "start >= end"}
		}

		clips = append(clips, ClipDetail{
			Pos:      pos,
			Filename: src.Filename,
			Start:    start,
			End:      end,
			Duration: end - start,
		})
	}
	return clips, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
