package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
	"github.com/kazqvaizer/kalinsky-maker/internal/service"
)

const maxRequestBytes = 1 << 20

type AssemblyService interface {
	Submit(ctx context.Context, req service.SubmitRequest) (*domain.Assembly, error)
	Get(ctx context.Context, id string) (*domain.Assembly, error)
	List(ctx context.Context) ([]*domain.Assembly, error)
	UpdateNote(ctx context.Context, id, note string) (*domain.Assembly, error)
	Delete(ctx context.Context, id string) error
}

type CatalogService interface {
	Sources(ctx context.Context) ([]domain.Source, error)
	Reindex(ctx context.Context) ([]domain.Source, error)
}

type Handlers struct {
	assemblies AssemblyService
	catalog    CatalogService
	mediaDir   string
}

func NewHandlers(assemblies AssemblyService, catalog CatalogService, mediaDir string) *Handlers {
	return &Handlers{
		assemblies: assemblies,
		catalog:    catalog,
		mediaDir:   mediaDir,
	}
}

type errorBody struct {
	Detail string `json:"detail"`
}

type noteBody struct {
	Note *string `json:"note"`
}

type reindexBody struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// HTTPStatus maps a service error onto a response code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrEmptyClips):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCatalogEmpty):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warnf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", r.Method, logger.SanitizeForLog(r.URL.Path), err)
		detail = "internal error"
	}
	writeJSON(w, status, errorBody{Detail: detail})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty request body", domain.ErrValidation)
		}
		return fmt.Errorf("%w: invalid request body: %v", domain.ErrValidation, err)
	}
	return nil
}

func (h *Handlers) CreateAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req service.SubmitRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		asm, err := h.assemblies.Submit(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusAccepted, asm)
	}
}

func (h *Handlers) ListAssemblies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.assemblies.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if list == nil {
			list = []*domain.Assembly{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (h *Handlers) GetAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asm, err := h.assemblies.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, asm)
	}
}

func (h *Handlers) UpdateAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body noteBody
		if err := decodeJSON(w, r, &body); err != nil {
			writeError(w, r, err)
			return
		}
		if body.Note == nil {
			writeError(w, r, fmt.Errorf("%w: note is required", domain.ErrValidation))
			return
		}

		asm, err := h.assemblies.UpdateNote(r.Context(), r.PathValue("id"), *body.Note)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, asm)
	}
}

func (h *Handlers) DeleteAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.assemblies.Delete(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DownloadAssembly serves the result file as an attachment named after the
// assembly.
func (h *Handlers) DownloadAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asm, err := h.assemblies.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if asm.Status != domain.AssemblyStatusDone {
			writeJSON(w, http.StatusConflict, errorBody{Detail: fmt.Sprintf("assembly is %s", asm.Status)})
			return
		}

		path := filepath.Join(service.WorkDir(h.mediaDir, asm.ID), service.ResultName)
		if _, err := os.Stat(path); err != nil {
			writeError(w, r, fmt.Errorf("result of %s: %w", asm.ID, domain.ErrNotFound))
			return
		}

		name := asm.Name
		if name == "" {
			name = asm.ID
		}
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Content-Disposition", ContentDisposition(name+".mp4"))
		http.ServeFile(w, r, path)
	}
}

func (h *Handlers) ListSources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sources, err := h.catalog.Sources(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sources)
	}
}

func (h *Handlers) Reindex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sources, err := h.catalog.Reindex(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reindexBody{Status: "ok", Count: len(sources)})
	}
}

// Dashboard renders the assembly list. A missing catalog only hides the
// sources table.
func (h *Handlers) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.assemblies.List(r.Context())
		if err != nil {
			logger.Errorf("dashboard list error: %v", err)
			list = []*domain.Assembly{}
		}
		sources, err := h.catalog.Sources(r.Context())
		if err != nil && !errors.Is(err, domain.ErrCatalogEmpty) {
			logger.Errorf("dashboard sources error: %v", err)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := Dashboard(list, sources).Render(r.Context(), w); err != nil {
			logger.Warnf("render dashboard: %v", err)
		}
	}
}

// staticDir serves files below root without directory listings.
func staticDir(prefix, root string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(root)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == prefix || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
