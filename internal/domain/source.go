package domain

import (
	"math"
	"path/filepath"
	"strings"
)

type SourceTag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Source is one indexed media file in the current catalog snapshot.
type Source struct {
	Index      int         `json:"index"`
	Filename   string      `json:"filename"`
	Duration   float64     `json:"duration"`
	Resolution string      `json:"resolution"`
	Codec      string      `json:"codec"`
	FileSize   int64       `json:"file_size"`
	Tags       []SourceTag `json:"tags"`
}

// NormalizeDuration truncates a probed duration to one decimal after
// subtracting 0.1s so trims ending at the source duration stay seekable.
func NormalizeDuration(raw float64) float64 {
	d := math.Floor((raw-0.1)*10) / 10
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return d
}

var sourceExts = map[string]bool{
	".mp4": true, ".mov": true, ".mkv": true, ".webm": true,
}

func IsSourceFile(filename string) bool {
	return sourceExts[strings.ToLower(filepath.Ext(filename))]
}

// ResolveSource finds the catalog entry a reference points at.
func ResolveSource(ref SourceRef, sources []Source) (Source, bool) {
	for _, s := range sources {
		if ref.Filename != "" {
			if s.Filename == ref.Filename {
				return s, true
			}
			continue
		}
		if s.Index == ref.Index {
			return s, true
		}
	}
	return Source{}, false
}
