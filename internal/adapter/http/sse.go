package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/service"
)

const keepAliveInterval = 15 * time.Second

// SSE event names. "status" carries the full assembly, "progress" a
// service.Event.
const (
	sseStatus   = "status"
	sseProgress = "progress"
)

type SSEHandler struct {
	eventBus   *service.EventBus
	assemblies AssemblyService
}

func NewSSEHandler(eventBus *service.EventBus, assemblies AssemblyService) *SSEHandler {
	return &SSEHandler{
		eventBus:   eventBus,
		assemblies: assemblies,
	}
}

// sseWrite writes one SSE event, splitting multi-line data.
func sseWrite(w http.ResponseWriter, eventName string, data string) {
	_, _ = fmt.Fprintf(w, "event: %s\n", eventName)
	for _, line := range strings.Split(data, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func sseWriteJSON(w http.ResponseWriter, eventName string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	sseWrite(w, eventName, string(data))
	return nil
}

func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// Events streams the state of one assembly: its current record first, then
// progress and status changes until it is done or failed.
func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		ctx := r.Context()

		// Subscribe before reading the record so no transition is missed.
		ch := h.eventBus.Subscribe(id)
		defer h.eventBus.Unsubscribe(id, ch)

		asm, err := h.assemblies.Get(ctx, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		if err := sseWriteJSON(w, sseStatus, asm); err != nil {
			logger.Warnf("sse %s: %v", id, err)
			return
		}
		if asm.IsTerminal() {
			return
		}

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case event, ok := <-ch:
				if !ok {
					return
				}
				if event.Type == service.EventProgress {
					_ = sseWriteJSON(w, sseProgress, event)
					continue
				}

				// Re-read so clients get output_url, duration and error.
				asm, err := h.assemblies.Get(ctx, id)
				if err != nil {
					if !errors.Is(err, domain.ErrNotFound) {
						logger.Warnf("sse %s: reload: %v", id, err)
					}
					return
				}
				_ = sseWriteJSON(w, sseStatus, asm)
				if asm.IsTerminal() {
					return
				}
			}
		}
	}
}
