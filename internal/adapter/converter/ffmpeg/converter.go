package ffmpeg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/port"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains null byte")
)

const manifestName = "concat_list.txt"

// Options carries the encoder settings shared by every invocation.
type Options struct {
	FFmpegBin     string
	FFprobeBin    string
	FadeMS        int
	AudioCodec    string
	AudioBitrate  string
	PreviewHeight int
	PreviewCRF    int
	PreviewPreset string
}

func DefaultOptions() Options {
	return Options{
		FFmpegBin:     "ffmpeg",
		FFprobeBin:    "ffprobe",
		FadeMS:        50,
		AudioCodec:    "aac",
		AudioBitrate:  "128k",
		PreviewHeight: 720,
		PreviewCRF:    28,
		PreviewPreset: "ultrafast",
	}
}

type Converter struct {
	opts Options
	run  CommandRunner
}

func NewConverter(opts Options) *Converter {
	def := DefaultOptions()
	if opts.FFmpegBin == "" {
		opts.FFmpegBin = def.FFmpegBin
	}
	if opts.FFprobeBin == "" {
		opts.FFprobeBin = def.FFprobeBin
	}
	if opts.FadeMS <= 0 {
		opts.FadeMS = def.FadeMS
	}
	if opts.AudioCodec == "" {
		opts.AudioCodec = def.AudioCodec
	}
	if opts.AudioBitrate == "" {
		opts.AudioBitrate = def.AudioBitrate
	}
	if opts.PreviewHeight <= 0 {
		opts.PreviewHeight = def.PreviewHeight
	}
	if opts.PreviewCRF <= 0 {
		opts.PreviewCRF = def.PreviewCRF
	}
	if opts.PreviewPreset == "" {
		opts.PreviewPreset = def.PreviewPreset
	}
	return &Converter{opts: opts, run: runCommand}
}

// WithCommandRunner sets a custom command runner (for testing).
func (c *Converter) WithCommandRunner(runner CommandRunner) *Converter {
	c.run = runner
	return c
}

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	return nil
}

func (c *Converter) Probe(ctx context.Context, path string) (domain.MediaInfo, error) {
	if err := validatePath(path); err != nil {
		return domain.MediaInfo{}, fmt.Errorf("invalid input path: %w", err)
	}

	out, err := c.run(ctx, c.opts.FFprobeBin, probeArgs(path)...)
	if err != nil {
		return domain.MediaInfo{}, fmt.Errorf("probe %s: %w", filepath.Base(path), err)
	}

	var result domain.ProbeResult
	if err := json.Unmarshal(out, &result); err != nil {
		return domain.MediaInfo{}, fmt.Errorf("parse ffprobe output for %s: %w", filepath.Base(path), err)
	}
	info, err := result.MediaInfo()
	if err != nil {
		return domain.MediaInfo{}, fmt.Errorf("probe %s: %w", filepath.Base(path), err)
	}
	return info, nil
}

// Cut renders one segment. Preview segments are re-encoded with burned-in
// labels; final segments copy video and only re-encode audio for the fades.
func (c *Converter) Cut(ctx context.Context, req domain.CutRequest) error {
	if err := validatePath(req.InputPath); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(req.OutputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if req.End <= req.Start {
		return fmt.Errorf("invalid range %s-%s", formatSeconds(req.Start), formatSeconds(req.End))
	}

	args := c.finalCutArgs(req)
	if req.Preview {
		args = c.previewCutArgs(req)
	}
	if _, err := c.run(ctx, c.opts.FFmpegBin, args...); err != nil {
		return err
	}
	return nil
}

// Concat stream-copies segments, in order, into outputPath. The manifest is
// written next to the output.
func (c *Converter) Concat(ctx context.Context, segments []string, outputPath string) error {
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if len(segments) == 0 {
		return errors.New("no segments to concatenate")
	}

	abs := make([]string, len(segments))
	for i, seg := range segments {
		if err := validatePath(seg); err != nil {
			return fmt.Errorf("invalid segment path: %w", err)
		}
		p, err := filepath.Abs(seg)
		if err != nil {
			return fmt.Errorf("resolve segment %s: %w", seg, err)
		}
		abs[i] = p
	}

	manifest := filepath.Join(filepath.Dir(outputPath), manifestName)
	if err := os.WriteFile(manifest, []byte(concatManifest(abs)), 0o644); err != nil {
		return fmt.Errorf("write concat manifest: %w", err)
	}

	if _, err := c.run(ctx, c.opts.FFmpegBin, concatArgs(manifest, outputPath)...); err != nil {
		return err
	}
	return nil
}

func (c *Converter) Thumbnail(ctx context.Context, inputPath, outputPath string) error {
	if err := validatePath(inputPath); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if _, err := c.run(ctx, c.opts.FFmpegBin, thumbnailArgs(inputPath, outputPath)...); err != nil {
		return fmt.Errorf("thumbnail %s: %w", filepath.Base(inputPath), err)
	}
	return nil
}

var _ port.MediaConverter = (*Converter)(nil)
