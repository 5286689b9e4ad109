package handlers

import (
	"encoding/json"
	"net/http"

	"inkwell/internal/models"
)

// ReactRequest represents a request to set a like/dislike on an article
type ReactRequest struct {
	ArticleID    string `json:"article_id"`
	UserWallet   string `json:"user_wallet"`
	ReactionType string `json:"reaction_type"`
}

// HandleRecordView records a view once per (article, wallet) pair
func (s *Server) HandleRecordView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID := r.PathValue("article_id")
		userWallet := r.URL.Query().Get("user_wallet")
		if userWallet == "" {
			http.Error(w, "user_wallet is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := s.requestContext(r)
		defer cancel()

		if err := s.Service.RecordView(ctx, articleID, userWallet); err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, map[string]bool{"success": true})
	}
}

// HandleReact sets or switches the wallet's reaction and returns fresh counts
func (s *Server) HandleReact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		if req.ArticleID == "" || req.UserWallet == "" {
			http.Error(w, "article_id and user_wallet are required", http.StatusBadRequest)
			return
		}

		reactionType := models.ReactionType(req.ReactionType)
		if !reactionType.Valid() {
			http.Error(w, "reaction_type must be like or dislike", http.StatusBadRequest)
			return
		}

		ctx, cancel := s.requestContext(r)
		defer cancel()

		likes, dislikes, err := s.Service.React(ctx, req.ArticleID, req.UserWallet, reactionType)
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, map[string]interface{}{
			"success":  true,
			"likes":    likes,
			"dislikes": dislikes,
		})
	}
}

// HandleRemoveReaction clears the wallet's reaction and returns fresh counts
func (s *Server) HandleRemoveReaction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID := r.PathValue("article_id")
		userWallet := r.PathValue("user_wallet")

		ctx, cancel := s.requestContext(r)
		defer cancel()

		likes, dislikes, err := s.Service.RemoveReaction(ctx, articleID, userWallet)
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, map[string]interface{}{
			"success":  true,
			"likes":    likes,
			"dislikes": dislikes,
		})
	}
}

// HandleAnalytics returns the article's summary, zero-valued when absent
func (s *Server) HandleAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID := r.PathValue("article_id")

		ctx, cancel := s.requestContext(r)
		defer cancel()

		analytics, err := s.Service.Analytics(ctx, articleID)
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, analytics)
	}
}

// HandleUserReaction reports whether and how the wallet reacted
func (s *Server) HandleUserReaction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID := r.PathValue("article_id")
		userWallet := r.PathValue("user_wallet")

		ctx, cancel := s.requestContext(r)
		defer cancel()

		hasReacted, reactionType, err := s.Service.UserReaction(ctx, articleID, userWallet)
		if err != nil {
			s.writeError(w, err)
			return
		}

		response := map[string]interface{}{"has_reacted": hasReacted}
		if hasReacted {
			response["reaction_type"] = reactionType
		} else {
			response["reaction_type"] = nil
		}
		s.writeJSON(w, response)
	}
}
