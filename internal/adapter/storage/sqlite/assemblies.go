package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/port"
)

const assemblyCounter = "assembly"

const assemblyColumns = `id, name, status, error, preview, output_url, duration, note, created`

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NextID derives the next identifier from the most recently created assembly,
// never going below the durable counter.
func (s *Store) NextID(ctx context.Context) (string, error) {
	var counter int64
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM counters WHERE name = ?`, assemblyCounter).Scan(&counter)
	if err != nil {
		return "", fmt.Errorf("read counter: %w", err)
	}

	var latest int64
	err = s.db.QueryRowContext(ctx,
		`SELECT seq FROM assemblies ORDER BY created DESC, seq DESC LIMIT 1`).Scan(&latest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("read latest assembly: %w", err)
	}

	return domain.FormatAssemblyID(max(counter, latest) + 1), nil
}

// Create allocates the next id from the counter and inserts the header and
// clips in the same transaction, so concurrent submissions never collide.
func (s *Store) Create(ctx context.Context, a *domain.Assembly) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var seq int64
		err := tx.QueryRowContext(ctx,
			`UPDATE counters SET value = value + 1 WHERE name = ? RETURNING value`,
			assemblyCounter).Scan(&seq)
		if err != nil {
			return fmt.Errorf("allocate id: %w", err)
		}

		id := domain.FormatAssemblyID(seq)
		if err := insertAssembly(ctx, tx, id, seq, a); err != nil {
			return err
		}
		if err := replaceClips(ctx, tx, id, a.Clips); err != nil {
			return err
		}
		a.ID = id
		return nil
	})
}

// Save upserts the header and replaces every clip row of the assembly.
func (s *Store) Save(ctx context.Context, a *domain.Assembly) error {
	seq, err := domain.ParseAssemblyID(a.ID)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO assemblies (`+assemblyColumns+`, seq)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				status = excluded.status,
				error = excluded.error,
				preview = excluded.preview,
				output_url = excluded.output_url,
				duration = excluded.duration,
				note = excluded.note`,
			a.ID, a.Name, string(a.Status), a.Error, a.Preview, a.OutputURL,
			nullableFloat(a.Duration), a.Note, formatTime(a.Created), seq)
		if err != nil {
			return fmt.Errorf("upsert assembly %s: %w", a.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE counters SET value = MAX(value, ?) WHERE name = ?`, seq, assemblyCounter); err != nil {
			return fmt.Errorf("advance counter: %w", err)
		}
		return replaceClips(ctx, tx, a.ID, a.Clips)
	})
}

func (s *Store) Finalize(ctx context.Context, a *domain.Assembly) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE assemblies
		SET status = ?, error = ?, output_url = ?, duration = ?
		WHERE id = ? AND status = ?`,
		string(a.Status), a.Error, a.OutputURL, nullableFloat(a.Duration),
		a.ID, string(domain.AssemblyStatusProcessing))
	if err != nil {
		return fmt.Errorf("finalize assembly %s: %w", a.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Assembly, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+assemblyColumns+` FROM assemblies WHERE id = ?`, id)
	a, err := scanAssembly(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	clips, err := listClips(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	a.Clips = clips
	return a, nil
}

// List returns every assembly, newest first.
func (s *Store) List(ctx context.Context) ([]*domain.Assembly, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+assemblyColumns+` FROM assemblies ORDER BY created DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list assemblies: %w", err)
	}

	var out []*domain.Assembly
	byID := make(map[string]*domain.Assembly)
	for rows.Next() {
		a, err := scanAssembly(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		a.Clips = []domain.ClipDetail{}
		out = append(out, a)
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	// The pool holds one connection, so clips are fetched only after the
	// header rows are closed.
	clipRows, err := s.db.QueryContext(ctx, `
		SELECT assembly_id, pos, filename, start_sec, end_sec, duration_sec
		FROM clips ORDER BY assembly_id, pos`)
	if err != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}
	defer clipRows.Close()
	for clipRows.Next() {
		var assemblyID string
		var c domain.ClipDetail
		if err := clipRows.Scan(&assemblyID, &c.Pos, &c.Filename, &c.Start, &c.End, &c.Duration); err != nil {
			return nil, fmt.Errorf("scan clip: %w", err)
		}
		if a, ok := byID[assemblyID]; ok {
			a.Clips = append(a.Clips, c)
		}
	}
	return out, clipRows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM clips WHERE assembly_id = ?`, id); err != nil {
			return fmt.Errorf("delete clips: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM assemblies WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete assembly: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	return deleted, err
}

func (s *Store) UpdateNote(ctx context.Context, id, note string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE assemblies SET note = ? WHERE id = ?`, note, id)
	if err != nil {
		return false, fmt.Errorf("update note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) FailProcessing(ctx context.Context, reason string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE assemblies
		SET status = ?, error = ?, output_url = '', duration = NULL
		WHERE status = ?`,
		string(domain.AssemblyStatusFailed), reason, string(domain.AssemblyStatusProcessing))
	if err != nil {
		return 0, fmt.Errorf("fail processing assemblies: %w", err)
	}
	return res.RowsAffected()
}

func insertAssembly(ctx context.Context, q queryer, id string, seq int64, a *domain.Assembly) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO assemblies (`+assemblyColumns+`, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, a.Name, string(a.Status), a.Error, a.Preview, a.OutputURL,
		nullableFloat(a.Duration), a.Note, formatTime(a.Created), seq)
	if err != nil {
		return fmt.Errorf("insert assembly %s: %w", id, err)
	}
	return nil
}

func replaceClips(ctx context.Context, q queryer, id string, clips []domain.ClipDetail) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM clips WHERE assembly_id = ?`, id); err != nil {
		return fmt.Errorf("clear clips: %w", err)
	}
	for _, c := range clips {
		_, err := q.ExecContext(ctx, `
			INSERT INTO clips (assembly_id, pos, filename, start_sec, end_sec, duration_sec)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, c.Pos, c.Filename, c.Start, c.End, c.Duration)
		if err != nil {
			return fmt.Errorf("insert clip %d: %w", c.Pos, err)
		}
	}
	return nil
}

func listClips(ctx context.Context, q queryer, id string) ([]domain.ClipDetail, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT pos, filename, start_sec, end_sec, duration_sec
		FROM clips WHERE assembly_id = ? ORDER BY pos`, id)
	if err != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}
	defer rows.Close()

	clips := []domain.ClipDetail{}
	for rows.Next() {
		var c domain.ClipDetail
		if err := rows.Scan(&c.Pos, &c.Filename, &c.Start, &c.End, &c.Duration); err != nil {
			return nil, fmt.Errorf("scan clip: %w", err)
		}
		clips = append(clips, c)
	}
	return clips, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssembly(row rowScanner) (*domain.Assembly, error) {
	var (
		a        domain.Assembly
		status   string
		duration sql.NullFloat64
		created  string
	)
	if err := row.Scan(&a.ID, &a.Name, &status, &a.Error, &a.Preview, &a.OutputURL,
		&duration, &a.Note, &created); err != nil {
		return nil, err
	}
	a.Status = domain.AssemblyStatus(status)
	if duration.Valid {
		d := duration.Float64
		a.Duration = &d
	}
	t, err := parseTime(created)
	if err != nil {
		return nil, err
	}
	a.Created = t
	return &a, nil
}

var _ port.AssemblyStore = (*Store)(nil)
