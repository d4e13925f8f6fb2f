package sqlite

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestAssembly(name string, created time.Time) *domain.Assembly {
	return domain.NewAssembly(name, true, []domain.ClipDetail{
		{Pos: 1, Filename: "a.mp4", Start: 2, End: 5, Duration: 3},
		{Pos: 2, Filename: "b.mov", Start: 0, End: 1.5, Duration: 1.5},
	}, created)
}

func TestStore_NextID_Empty(t *testing.T) {
	s := newTestStore(t)

	id, err := s.NextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "asm_001", id)
}

func TestStore_Create_SequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		a := newTestAssembly("", base.Add(time.Duration(i)*time.Second))
		require.NoError(t, s.Create(ctx, a))
		assert.Equal(t, fmt.Sprintf("asm_%03d", i), a.ID)
	}

	id, err := s.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "asm_004", id)
}

func TestStore_Create_IDsSurviveDeletion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, first))
	deleted, err := s.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	second := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, second))
	assert.Equal(t, "asm_002", second.ID)
}

func TestStore_Create_Concurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const n = 20
	ids := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a := newTestAssembly("", time.Now())
			errs[i] = s.Create(ctx, a)
			ids[i] = a.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[ids[i]], "duplicate id %s", ids[i])
		seen[ids[i]] = true
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)
}

func TestStore_Get_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created := time.Date(2026, 2, 3, 4, 5, 6, 789, time.UTC)

	a := newTestAssembly("intro cut", created)
	require.NoError(t, s.Create(ctx, a))

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "intro cut", got.Name)
	assert.Equal(t, domain.AssemblyStatusProcessing, got.Status)
	assert.True(t, got.Preview)
	assert.Nil(t, got.Duration)
	assert.Empty(t, got.OutputURL)
	assert.True(t, created.Equal(got.Created))
	assert.Equal(t, a.Clips, got.Clips)

	again, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestStore_Get_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "asm_999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_List_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	older := newTestAssembly("older", base)
	newer := newTestAssembly("newer", base.Add(time.Hour))
	sameTime := newTestAssembly("same time", base.Add(time.Hour))
	require.NoError(t, s.Create(ctx, older))
	require.NoError(t, s.Create(ctx, newer))
	require.NoError(t, s.Create(ctx, sameTime))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, sameTime.ID, list[0].ID)
	assert.Equal(t, newer.ID, list[1].ID)
	assert.Equal(t, older.ID, list[2].ID)
	for _, a := range list {
		assert.Len(t, a.Clips, 2)
		assert.Equal(t, 1, a.Clips[0].Pos)
		assert.Equal(t, 2, a.Clips[1].Pos)
	}
}

func TestStore_Finalize(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, a))

	a.MarkAsDone("/media/"+a.ID+"/result.mp4", 4.48)
	require.NoError(t, s.Finalize(ctx, a))

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssemblyStatusDone, got.Status)
	assert.Equal(t, "/media/"+a.ID+"/result.mp4", got.OutputURL)
	require.NotNil(t, got.Duration)
	assert.InDelta(t, 4.48, *got.Duration, 1e-9)
	assert.Empty(t, got.Error)

	// a terminal record is never overwritten
	a.MarkAsFailed(fmt.Errorf("late failure"))
	assert.ErrorIs(t, s.Finalize(ctx, a), domain.ErrNotFound)
}

func TestStore_Finalize_AfterDeleteDoesNotResurrect(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, a))
	_, err := s.Delete(ctx, a.ID)
	require.NoError(t, err)

	a.MarkAsFailed(context.Canceled)
	assert.ErrorIs(t, s.Finalize(ctx, a), domain.ErrNotFound)

	_, err = s.Get(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Save_Upsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := newTestAssembly("imported", time.Now())
	a.ID = "asm_010"
	require.NoError(t, s.Save(ctx, a))

	a.Clips = a.Clips[:1]
	a.Note = "trimmed"
	require.NoError(t, s.Save(ctx, a))

	got, err := s.Get(ctx, "asm_010")
	require.NoError(t, err)
	assert.Len(t, got.Clips, 1)
	assert.Equal(t, "trimmed", got.Note)

	// counter moves past externally saved ids
	next := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, next))
	assert.Equal(t, "asm_011", next.ID)
}

func TestStore_Save_InvalidID(t *testing.T) {
	s := newTestStore(t)

	a := newTestAssembly("", time.Now())
	a.ID = "bogus"
	assert.Error(t, s.Save(context.Background(), a))
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, a))

	deleted, err := s.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	var clips int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM clips WHERE assembly_id = ?`, a.ID).Scan(&clips))
	assert.Zero(t, clips)
}

func TestStore_UpdateNote(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, a))
	a.MarkAsDone("/media/x/result.mp4", 3)
	require.NoError(t, s.Finalize(ctx, a))

	ok, err := s.UpdateNote(ctx, a.ID, "client liked it")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "client liked it", got.Note)
	assert.Equal(t, domain.AssemblyStatusDone, got.Status)

	ok, err = s.UpdateNote(ctx, "asm_404", "x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_FailProcessing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stale := newTestAssembly("", time.Now())
	done := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, stale))
	require.NoError(t, s.Create(ctx, done))
	done.MarkAsDone("/media/x/result.mp4", 1)
	require.NoError(t, s.Finalize(ctx, done))

	n, err := s.FailProcessing(ctx, "interrupted: server restarted")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssemblyStatusFailed, got.Status)
	assert.Equal(t, "interrupted: server restarted", got.Error)

	got, err = s.Get(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssemblyStatusDone, got.Status)
}

func TestStore_Catalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sources, err := s.Sources(ctx)
	require.NoError(t, err)
	assert.Empty(t, sources)

	require.NoError(t, s.ReplaceSources(ctx, []domain.Source{
		{Index: 1, Filename: "a.mp4", Duration: 9.9, Resolution: "1920x1080", Codec: "h264", FileSize: 1024},
		{Index: 2, Filename: "b.mov", Duration: 4.4, Resolution: "unknown", Codec: "unknown", FileSize: 2048},
	}))

	_, err = s.db.Exec(`INSERT INTO tags (name, color) VALUES ('broll', '#00ff00'), ('ads', '#ff0000')`)
	require.NoError(t, err)
	_, err = s.db.Exec(`INSERT INTO source_tags (filename, tag_id) SELECT 'a.mp4', id FROM tags`)
	require.NoError(t, err)

	sources, err = s.Sources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "a.mp4", sources[0].Filename)
	assert.Equal(t, []domain.SourceTag{{Name: "ads", Color: "#ff0000"}, {Name: "broll", Color: "#00ff00"}}, sources[0].Tags)
	assert.Equal(t, []domain.SourceTag{}, sources[1].Tags)

	// a reindex replaces the snapshot wholesale but keeps tag links
	require.NoError(t, s.ReplaceSources(ctx, []domain.Source{
		{Index: 1, Filename: "a.mp4", Duration: 9.9, Resolution: "1920x1080", Codec: "h264", FileSize: 1024},
	}))
	sources, err = s.Sources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Len(t, sources[0].Tags, 2)
}

func TestStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewStore(dir)
	require.NoError(t, err)
	a := newTestAssembly("", time.Now())
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Close())

	s, err = NewStore(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestNewStore_MigrationsLogThroughLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Use(zap.New(core))
	t.Cleanup(func() { logger.Use(zap.NewNop()) })

	newTestStore(t)

	var messages []string
	for _, e := range logs.All() {
		assert.Equal(t, zapcore.DebugLevel, e.Level)
		messages = append(messages, e.Message)
	}
	assert.Contains(t, strings.Join(messages, "\n"), "00001_init.sql")
}
