package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/service"
)

const waitPollInterval = 2 * time.Second

func newAssembleCommand(ctx *commandContext) *cobra.Command {
	var (
		name     string
		final    bool
		clipArgs []string
		specFile string
	)

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Submit an assembly and wait for it to finish",
		Long: `Submit an assembly and run it in this process.

Clips are given as SOURCE[:START[:END]] where SOURCE is a catalog index or a
filename, for example --clip 1:2:5 --clip intro.mov::3.5. Alternatively
--file reads a JSON request body as accepted by POST /api/v1/assemblies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildSubmitRequest(specFile, clipArgs)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				req.Name = name
			}
			if cmd.Flags().Changed("final") {
				preview := !final
				req.Preview = &preview
			}

			a, err := openApp(ctx.configValue(), true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.pool.Start(runCtx)
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.CancelTimeout())
				defer cancel()
				if err := a.pool.Shutdown(shutdownCtx); err != nil {
					logger.Warnf("worker shutdown: %v", err)
				}
			}()

			asm, err := a.assemblies.Submit(runCtx, req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Submitted %s (%d clips, %s)\n", asm.ID, len(asm.Clips), modeLabel(asm.Preview))

			// An interrupt cancels the job; its terminal state is still written.
			result, err := a.assemblies.Wait(context.WithoutCancel(runCtx), asm.ID, waitPollInterval)
			if err != nil {
				return err
			}
			writeAssemblyDetail(out, result)
			if result.Status == domain.AssemblyStatusFailed {
				return fmt.Errorf("assembly %s failed", result.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Assembly name")
	cmd.Flags().BoolVar(&final, "final", false, "Stream-copy render instead of a preview")
	cmd.Flags().StringArrayVar(&clipArgs, "clip", nil, "Clip as SOURCE[:START[:END]] (repeatable)")
	cmd.Flags().StringVarP(&specFile, "file", "f", "", "JSON request file")
	return cmd
}

func buildSubmitRequest(specFile string, clipArgs []string) (service.SubmitRequest, error) {
	var req service.SubmitRequest
	if specFile != "" {
		data, err := os.ReadFile(specFile)
		if err != nil {
			return req, fmt.Errorf("read %s: %w", specFile, err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parse %s: %w", specFile, err)
		}
	}
	for _, arg := range clipArgs {
		clip, err := parseClip(arg)
		if err != nil {
			return req, err
		}
		req.Clips = append(req.Clips, clip)
	}
	if len(req.Clips) == 0 {
		return req, errors.New("no clips given: use --clip or --file")
	}
	return req, nil
}

// parseClip reads SOURCE[:START[:END]]; empty bounds keep their defaults.
func parseClip(arg string) (domain.ClipSpec, error) {
	parts := strings.Split(arg, ":")
	if len(parts) > 3 || parts[0] == "" {
		return domain.ClipSpec{}, fmt.Errorf("invalid clip %q: want SOURCE[:START[:END]]", arg)
	}

	var clip domain.ClipSpec
	if idx, err := strconv.Atoi(parts[0]); err == nil {
		clip.Source = domain.SourceRef{Index: idx}
	} else {
		clip.Source = domain.SourceRef{Filename: parts[0]}
	}

	bounds := []**float64{&clip.Start, &clip.End}
	for i, raw := range parts[1:] {
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.ClipSpec{}, fmt.Errorf("invalid clip %q: %q is not a number of seconds", arg, raw)
		}
		*bounds[i] = &v
	}
	return clip, nil
}
