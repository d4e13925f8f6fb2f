package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/port/mocks"
)

type countingReindexer struct {
	calls int
}

func (r *countingReindexer) Reindex(context.Context) ([]domain.Source, error) {
	r.calls++
	return nil, nil
}

func TestScheduler_SweepOrphans(t *testing.T) {
	mediaDir := t.TempDir()
	for _, name := range []string{"asm_001", "asm_002", "asm_003", "previews"} {
		require.NoError(t, os.MkdirAll(filepath.Join(mediaDir, name, "segments"), 0o755))
	}

	mockStore := mocks.NewAssemblyStoreMock(t)
	registry := NewJobRegistry()
	_, _, err := registry.Register(context.Background(), "asm_003")
	require.NoError(t, err)

	mockStore.EXPECT().Get(mock.Anything, "asm_001").Return(&domain.Assembly{ID: "asm_001"}, nil).Once()
	mockStore.EXPECT().Get(mock.Anything, "asm_002").Return(nil, domain.ErrNotFound).Once()

	s := NewScheduler(&countingReindexer{}, mockStore, registry, mediaDir)
	removed, err := s.SweepOrphans(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.DirExists(t, filepath.Join(mediaDir, "asm_001"))
	assert.NoDirExists(t, filepath.Join(mediaDir, "asm_002"))
	assert.DirExists(t, filepath.Join(mediaDir, "asm_003"), "running job keeps its directory")
	assert.DirExists(t, filepath.Join(mediaDir, "previews"))
}

func TestScheduler_SweepOrphans_MissingMediaDir(t *testing.T) {
	s := NewScheduler(&countingReindexer{}, mocks.NewAssemblyStoreMock(t), NewJobRegistry(),
		filepath.Join(t.TempDir(), "nope"))

	removed, err := s.SweepOrphans(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestScheduler_StartRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(&countingReindexer{}, mocks.NewAssemblyStoreMock(t), NewJobRegistry(), t.TempDir())

	err := s.Start(context.Background(), "every tuesday")
	assert.ErrorContains(t, err, "schedule reindex")
}

func TestScheduler_StartAndStop(t *testing.T) {
	s := NewScheduler(&countingReindexer{}, mocks.NewAssemblyStoreMock(t), NewJobRegistry(), t.TempDir())

	require.NoError(t, s.Start(context.Background(), "*/5 * * * *"))
	require.NoError(t, s.Watch(context.Background(), t.TempDir()))
	s.Stop()
}
