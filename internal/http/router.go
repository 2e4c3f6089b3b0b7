package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"softsell/internal/handlers"
	"softsell/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	RelayService    service.RelayService
	ContactService  service.ContactService
	DB              *sql.DB
	RelayConfigured bool
	IndexHTML       string // Prerendered landing page
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.RelayService)
	contactHandler := handlers.NewContactHandler(deps.ContactService)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.RelayConfigured)

	// Register API routes. Each handler rejects non-matching verbs itself
	// so wrong-method requests get the structured {"error"} body instead
	// of chi's plain 405.
	r.Route("/api", func(r chi.Router) {
		r.Handle("/chat", chatHandler)
		r.Handle("/contact", contactHandler)
		r.Handle("/health", healthHandler)
	})

	// Serve the landing page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
