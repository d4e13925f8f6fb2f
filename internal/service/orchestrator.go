package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/port"
)

const (
	segmentsDirName = "segments"
	ResultName      = "result.mp4"
	finalizeTimeout = 10 * time.Second
)

// Orchestrator drives one assembly from processing to done or failed.
type Orchestrator struct {
	store      port.AssemblyStore
	converter  port.MediaConverter
	events     EventPublisher
	sourcesDir string
	mediaDir   string
}

func NewOrchestrator(store port.AssemblyStore, converter port.MediaConverter, events EventPublisher, sourcesDir, mediaDir string) *Orchestrator {
	return &Orchestrator{
		store:      store,
		converter:  converter,
		events:     events,
		sourcesDir: sourcesDir,
		mediaDir:   mediaDir,
	}
}

// WorkDir is the directory holding segments and the result of an assembly.
func WorkDir(mediaDir, assemblyID string) string {
	return filepath.Join(mediaDir, assemblyID)
}

// OutputURL is the public location of a finished assembly.
func OutputURL(assemblyID string) string {
	return "/media/" + assemblyID + "/" + ResultName
}

// Run executes the pipeline and writes the terminal state exactly once,
// also when ctx is cancelled mid-flight.
func (o *Orchestrator) Run(ctx context.Context, asm *domain.Assembly, runID string) {
	log := logger.With("assembly_id", asm.ID, "run_id", runID)
	log.Infow("assembly started", "clips", len(asm.Clips), "preview", asm.Preview)
	started := time.Now()

	o.publish(asm.ID, Event{Type: EventStatus, Status: string(domain.AssemblyStatusProcessing)})

	duration, err := o.execute(ctx, asm, log)
	if err != nil {
		asm.MarkAsFailed(err)
		log.Warnw("assembly failed", "error", logger.SanitizeForLog(err.Error()), "elapsed", time.Since(started))
	} else {
		asm.MarkAsDone(OutputURL(asm.ID), duration)
		log.Infow("assembly done", "duration", duration, "elapsed", time.Since(started))
	}

	o.finalize(ctx, asm, log)
}

func (o *Orchestrator) execute(ctx context.Context, asm *domain.Assembly, log *zap.SugaredLogger) (duration float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("assembly panicked", "panic", r)
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return 0, &domain.StepFailure{Step: domain.StepPrepare, Err: err}
	}

	workDir := WorkDir(o.mediaDir, asm.ID)
	segDir := filepath.Join(workDir, segmentsDirName)
	if err := os.MkdirAll(segDir, 0o755); err != nil {
		return 0, &domain.StepFailure{Step: domain.StepPrepare, Err: err}
	}

	segments, failure := o.cutAll(ctx, asm, segDir, log)
	if failure != nil {
		return 0, failure
	}

	if !asm.Preview {
		if failure := o.checkCompatible(ctx, segments); failure != nil {
			return 0, failure
		}
	}

	o.publish(asm.ID, Event{Type: EventProgress, Step: string(domain.StepConcat), Total: len(segments)})
	resultPath := filepath.Join(workDir, ResultName)
	if err := o.converter.Concat(ctx, segments, resultPath); err != nil {
		return 0, &domain.StepFailure{Step: domain.StepConcat, Err: err}
	}

	info, err := o.converter.Probe(ctx, resultPath)
	if err != nil {
		return 0, &domain.StepFailure{Step: domain.StepProbe, Err: err}
	}
	return info.Duration, nil
}

// cutAll renders segments strictly in pos order; the concat manifest
// relies on it.
func (o *Orchestrator) cutAll(ctx context.Context, asm *domain.Assembly, segDir string, log *zap.SugaredLogger) ([]string, *domain.StepFailure) {
	clips := slices.Clone(asm.Clips)
	slices.SortFunc(clips, func(a, b domain.ClipDetail) int { return a.Pos - b.Pos })

	ext := asm.SegmentExt()
	segments := make([]string, 0, len(clips))
	for _, clip := range clips {
		if err := ctx.Err(); err != nil {
			return nil, &domain.StepFailure{Step: domain.StepCut, Pos: clip.Pos, Err: err}
		}

		out := filepath.Join(segDir, domain.SegmentName(clip.Pos, ext))
		req := domain.CutRequest{
			InputPath:  filepath.Join(o.sourcesDir, clip.Filename),
			Filename:   clip.Filename,
			Start:      clip.Start,
			End:        clip.End,
			OutputPath: out,
			Preview:    asm.Preview,
			Pos:        clip.Pos,
		}
		log.Debugw("cutting segment", "pos", clip.Pos, "file", logger.SanitizeForLog(clip.Filename), "start", clip.Start, "end", clip.End)
		if err := o.converter.Cut(ctx, req); err != nil {
			return nil, &domain.StepFailure{Step: domain.StepCut, Pos: clip.Pos, Err: err}
		}
		segments = append(segments, out)
		o.publish(asm.ID, Event{Type: EventProgress, Step: string(domain.StepCut), Pos: clip.Pos, Total: len(clips)})
	}
	return segments, nil
}

// checkCompatible probes final-mode segments and refuses to concatenate
// video streams that differ in codec or resolution.
func (o *Orchestrator) checkCompatible(ctx context.Context, segments []string) *domain.StepFailure {
	if len(segments) < 2 {
		return nil
	}

	var first domain.MediaInfo
	for i, seg := range segments {
		pos := i + 1
		info, err := o.converter.Probe(ctx, seg)
		if err != nil {
			return &domain.StepFailure{Step: domain.StepCheck, Pos: pos, Err: err}
		}
		if i == 0 {
			first = info
			continue
		}
		if info.Codec != first.Codec || info.Resolution != first.Resolution {
			return &domain.StepFailure{
				Step: domain.StepConcat,
				Pos:  pos,
				Err: fmt.Errorf("%w: %s %s differs from clip 1 %s %s",
					domain.ErrIncompatibleSegments, info.Codec, info.Resolution, first.Codec, first.Resolution),
			}
		}
	}
	return nil
}

// finalize persists the terminal state. The write must outlive a cancelled
// job context, so it runs detached with its own deadline.
func (o *Orchestrator) finalize(ctx context.Context, asm *domain.Assembly, log *zap.SugaredLogger) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	err := o.store.Finalize(wctx, asm)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Infow("assembly record gone before completion, result discarded", "status", asm.Status)
		return
	case err != nil:
		log.Errorw("failed to persist assembly state", "status", asm.Status, "error", err)
		return
	}

	o.publish(asm.ID, Event{Type: EventStatus, Status: string(asm.Status), Message: asm.Error})
}

func (o *Orchestrator) publish(assemblyID string, event Event) {
	if o.events != nil {
		o.events.Publish(assemblyID, event)
	}
}
