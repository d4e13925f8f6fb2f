package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/patrickmn/go-cache"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/port"
)

const (
	previewsDirName = "previews"
	probeCacheTTL   = 24 * time.Hour
)

// CatalogService indexes the sources directory into catalog snapshots.
type CatalogService struct {
	catalog    port.Catalog
	converter  port.MediaConverter
	sourcesDir string
	mediaDir   string
	probes     *cache.Cache

	mu sync.Mutex
}

func NewCatalogService(catalog port.Catalog, converter port.MediaConverter, sourcesDir, mediaDir string) *CatalogService {
	return &CatalogService{
		catalog:    catalog,
		converter:  converter,
		sourcesDir: sourcesDir,
		mediaDir:   mediaDir,
		probes:     cache.New(probeCacheTTL, time.Hour),
	}
}

// PreviewsDir holds one thumbnail per source, named after its stem.
func (s *CatalogService) PreviewsDir() string {
	return filepath.Join(s.mediaDir, previewsDirName)
}

// Sources returns the current snapshot; an unindexed catalog is a conflict.
func (s *CatalogService) Sources(ctx context.Context) ([]domain.Source, error) {
	sources, err := s.catalog.Sources(ctx)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return sources, nil
}

// Reindex scans the sources directory, probes every media file and replaces
// the catalog snapshot. A probe failure aborts the reindex and leaves the
// previous snapshot in place; thumbnail failures are only logged.
func (s *CatalogService) Reindex(ctx context.Context) ([]domain.Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	entries, err := os.ReadDir(s.sourcesDir)
	if err != nil {
		return nil, fmt.Errorf("read sources dir: %w", err)
	}
	if err := os.MkdirAll(s.PreviewsDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create previews dir: %w", err)
	}

	// os.ReadDir returns entries sorted by filename.
	sources := make([]domain.Source, 0, len(entries))
	var total int64
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsSourceFile(entry.Name()) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		if !fi.Mode().IsRegular() {
			continue
		}

		path := filepath.Join(s.sourcesDir, entry.Name())
		info, err := s.probe(ctx, path, fi)
		if err != nil {
			return nil, err
		}

		sources = append(sources, domain.Source{
			Index:      len(sources) + 1,
			Filename:   entry.Name(),
			Duration:   domain.NormalizeDuration(info.Duration),
			Resolution: info.Resolution,
			Codec:      info.Codec,
			FileSize:   fi.Size(),
			Tags:       []domain.SourceTag{},
		})
		total += fi.Size()

		s.ensureThumbnail(ctx, path, entry.Name())
	}

	if err := s.catalog.ReplaceSources(ctx, sources); err != nil {
		return nil, fmt.Errorf("replace catalog: %w", err)
	}
	logger.Infof("reindexed %d sources (%s) in %s",
		len(sources), humanize.Bytes(uint64(total)), time.Since(started).Round(time.Millisecond))
	return sources, nil
}

// probe consults the cache first; an entry is valid while the file keeps
// its size and modification time.
func (s *CatalogService) probe(ctx context.Context, path string, fi os.FileInfo) (domain.MediaInfo, error) {
	key := fmt.Sprintf("%s|%d|%d", fi.Name(), fi.Size(), fi.ModTime().UnixNano())
	if cached, ok := s.probes.Get(key); ok {
		return cached.(domain.MediaInfo), nil
	}

	info, err := s.converter.Probe(ctx, path)
	if err != nil {
		return domain.MediaInfo{}, fmt.Errorf("probe %s: %w", fi.Name(), err)
	}
	s.probes.Set(key, info, cache.DefaultExpiration)
	return info, nil
}

func (s *CatalogService) ensureThumbnail(ctx context.Context, path, filename string) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	thumb := filepath.Join(s.PreviewsDir(), stem+".jpg")
	if _, err := os.Stat(thumb); err == nil {
		return
	}
	if err := s.converter.Thumbnail(ctx, path, thumb); err != nil {
		logger.Warnf("thumbnail for %s failed: %v", logger.SanitizeForLog(filename), err)
	}
}
