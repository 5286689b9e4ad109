package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"inkwell/internal/pinning"
	"inkwell/internal/service"
	"inkwell/internal/utils"
)

// Pinger is the liveness probe surface of the database layer.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds all HTTP handler dependencies
type Server struct {
	Service        *service.Service
	DB             Pinger
	Pinner         *pinning.Client
	Log            *slog.Logger
	RequestTimeout time.Duration
}

// NewServer creates a new Server instance with the given components
func NewServer(svc *service.Service, db Pinger, pinner *pinning.Client, log *slog.Logger) *Server {
	return &Server{
		Service:        svc,
		DB:             db,
		Pinner:         pinner,
		Log:            log,
		RequestTimeout: 30 * time.Second,
	}
}

// Routes registers every endpoint on the mux. Paths are fixed; clients
// depend on them.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /upload/", s.HandleUpload())
	mux.HandleFunc("GET /health", s.HandleHealth())

	mux.HandleFunc("GET /api/articles/search", s.HandleSearchArticles())
	mux.HandleFunc("POST /api/articles/{article_id}/view", s.HandleRecordView())
	mux.HandleFunc("POST /api/articles/react", s.HandleReact())
	mux.HandleFunc("GET /api/articles/{article_id}/analytics", s.HandleAnalytics())
	mux.HandleFunc("GET /api/articles/{article_id}/user-reaction/{user_wallet}", s.HandleUserReaction())
	mux.HandleFunc("DELETE /api/articles/{article_id}/react/{user_wallet}", s.HandleRemoveReaction())

	mux.HandleFunc("POST /api/users/profile", s.HandleUpsertProfile())
	mux.HandleFunc("GET /api/users/profile/{wallet_address}", s.HandleGetProfile())
	mux.HandleFunc("POST /api/users/favorites", s.HandleAddFavorite())
	mux.HandleFunc("DELETE /api/users/favorites/{user_wallet}/{article_id}", s.HandleRemoveFavorite())
	mux.HandleFunc("POST /api/users/articles", s.HandlePublishArticle())
	// /api/users/{wallet}/favorites and /api/users/{wallet}/articles would
	// conflict with the literal profile route under ServeMux pattern rules,
	// so the listings are dispatched by hand.
	mux.HandleFunc("GET /api/users/", s.HandleUserListings())
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.RequestTimeout)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError maps AppError codes to HTTP statuses; anything else surfaces
// as a 500 with the raw error text.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*utils.AppError); ok {
		http.Error(w, appErr.Error(), utils.AppErrorToHTTPStatus(appErr.Code))
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
