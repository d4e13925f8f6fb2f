package http

import (
	"net/http"

	"github.com/kazqvaizer/kalinsky-maker/internal/adapter/http/middleware"
	"github.com/kazqvaizer/kalinsky-maker/internal/service"
)

type Server struct {
	mux        *http.ServeMux
	handlers   *Handlers
	sseHandler *SSEHandler
	mediaDir   string
	sourcesDir string
	handler    http.Handler
}

func NewServer(assemblies AssemblyService, catalog CatalogService, eventBus *service.EventBus, mediaDir, sourcesDir string) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		handlers:   NewHandlers(assemblies, catalog, mediaDir),
		sseHandler: NewSSEHandler(eventBus, assemblies),
		mediaDir:   mediaDir,
		sourcesDir: sourcesDir,
	}

	s.registerRoutes()
	s.registerStatic()

	s.handler = middleware.RequestLogger(middleware.SecurityHeaders(middleware.CORS(s.mux)))
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /api/v1/assemblies", s.handlers.CreateAssembly())
	s.mux.HandleFunc("GET /api/v1/assemblies", s.handlers.ListAssemblies())
	s.mux.HandleFunc("GET /api/v1/assemblies/{id}", s.handlers.GetAssembly())
	s.mux.HandleFunc("PATCH /api/v1/assemblies/{id}", s.handlers.UpdateAssembly())
	s.mux.HandleFunc("DELETE /api/v1/assemblies/{id}", s.handlers.DeleteAssembly())
	s.mux.HandleFunc("GET /api/v1/assemblies/{id}/events", s.sseHandler.Events())
	s.mux.HandleFunc("GET /api/v1/assemblies/{id}/download", s.handlers.DownloadAssembly())

	s.mux.HandleFunc("GET /api/v1/sources", s.handlers.ListSources())
	s.mux.HandleFunc("POST /api/v1/sources/reindex", s.handlers.Reindex())

	s.mux.HandleFunc("GET /{$}", s.handlers.Dashboard())
}

func (s *Server) registerStatic() {
	s.mux.Handle("GET /media/", staticDir("/media/", s.mediaDir))
	s.mux.Handle("GET /sources/", staticDir("/sources/", s.sourcesDir))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
