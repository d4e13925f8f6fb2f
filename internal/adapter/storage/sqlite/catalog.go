package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/port"
)

// Sources returns the catalog snapshot ordered by index, each with its tags.
func (s *Store) Sources(ctx context.Context) ([]domain.Source, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, filename, duration, resolution, codec, file_size
		FROM sources ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	var sources []domain.Source
	for rows.Next() {
		var src domain.Source
		if err := rows.Scan(&src.Index, &src.Filename, &src.Duration, &src.Resolution, &src.Codec, &src.FileSize); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan source: %w", err)
		}
		src.Tags = []domain.SourceTag{}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	if len(sources) == 0 {
		return sources, nil
	}

	tags, err := s.tagsByFilename(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sources {
		if t, ok := tags[sources[i].Filename]; ok {
			sources[i].Tags = t
		}
	}
	return sources, nil
}

func (s *Store) tagsByFilename(ctx context.Context) (map[string][]domain.SourceTag, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT st.filename, t.name, t.color
		FROM source_tags st
		JOIN tags t ON t.id = st.tag_id
		ORDER BY st.filename, t.name`)
	if err != nil {
		return nil, fmt.Errorf("list source tags: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.SourceTag)
	for rows.Next() {
		var filename string
		var tag domain.SourceTag
		if err := rows.Scan(&filename, &tag.Name, &tag.Color); err != nil {
			return nil, fmt.Errorf("scan source tag: %w", err)
		}
		out[filename] = append(out[filename], tag)
	}
	return out, rows.Err()
}

// ReplaceSources swaps the whole catalog snapshot. Tag links are keyed by
// filename and are left alone.
func (s *Store) ReplaceSources(ctx context.Context, sources []domain.Source) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sources`); err != nil {
			return fmt.Errorf("clear sources: %w", err)
		}
		for _, src := range sources {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO sources (idx, filename, duration, resolution, codec, file_size)
				VALUES (?, ?, ?, ?, ?, ?)`,
				src.Index, src.Filename, src.Duration, src.Resolution, src.Codec, src.FileSize)
			if err != nil {
				return fmt.Errorf("insert source %s: %w", src.Filename, err)
			}
		}
		return nil
	})
}

var _ port.Catalog = (*Store)(nil)
