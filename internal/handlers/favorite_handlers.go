package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// AddFavoriteRequest represents a request to favorite an article
type AddFavoriteRequest struct {
	UserWallet   string `json:"user_wallet"`
	ArticleID    string `json:"article_id"`
	ArticleTitle string `json:"article_title"`
}

// PublishArticleRequest represents a request to record a published article
type PublishArticleRequest struct {
	UserWallet   string `json:"user_wallet"`
	ArticleID    string `json:"article_id"`
	ArticleTitle string `json:"article_title"`
	IPFSHash     string `json:"ipfs_hash"`
}

// HandleAddFavorite favorites an article; re-adding is a success
func (s *Server) HandleAddFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		if req.UserWallet == "" || req.ArticleID == "" {
			http.Error(w, "user_wallet and article_id are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := s.requestContext(r)
		defer cancel()

		already, err := s.Service.AddFavorite(ctx, req.UserWallet, req.ArticleID, req.ArticleTitle)
		if err != nil {
			s.writeError(w, err)
			return
		}

		response := map[string]interface{}{"success": true}
		if already {
			response["message"] = "article already favorited"
		}
		s.writeJSON(w, response)
	}
}

// HandleRemoveFavorite removes a favorite; absence is still a success
func (s *Server) HandleRemoveFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userWallet := r.PathValue("user_wallet")
		articleID := r.PathValue("article_id")

		ctx, cancel := s.requestContext(r)
		defer cancel()

		if err := s.Service.RemoveFavorite(ctx, userWallet, articleID); err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, map[string]bool{"success": true})
	}
}

// HandleUserListings serves GET /api/users/{wallet}/favorites and
// GET /api/users/{wallet}/articles, both newest first.
func (s *Server) HandleUserListings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/users/")
		parts := strings.Split(rest, "/")
		if len(parts) != 2 || parts[0] == "" {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		userWallet := parts[0]

		ctx, cancel := s.requestContext(r)
		defer cancel()

		switch parts[1] {
		case "favorites":
			favorites, err := s.Service.ListFavorites(ctx, userWallet)
			if err != nil {
				s.writeError(w, err)
				return
			}
			s.writeJSON(w, favorites)
		case "articles":
			articles, err := s.Service.UserArticles(ctx, userWallet)
			if err != nil {
				s.writeError(w, err)
				return
			}
			s.writeJSON(w, articles)
		default:
			http.Error(w, "Not found", http.StatusNotFound)
		}
	}
}

// HandleSearchArticles matches the query against favorite titles across all
// wallets
func (s *Server) HandleSearchArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")

		ctx, cancel := s.requestContext(r)
		defer cancel()

		matches, err := s.Service.SearchFavorites(ctx, query)
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, matches)
	}
}

// HandlePublishArticle records an article the wallet has published
func (s *Server) HandlePublishArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PublishArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		if req.UserWallet == "" || req.ArticleID == "" {
			http.Error(w, "user_wallet and article_id are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := s.requestContext(r)
		defer cancel()

		if err := s.Service.PublishArticle(ctx, req.UserWallet, req.ArticleID, req.ArticleTitle, req.IPFSHash); err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, map[string]bool{"success": true})
	}
}

