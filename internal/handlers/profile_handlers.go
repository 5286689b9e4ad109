package handlers

import (
	"encoding/json"
	"net/http"

	"inkwell/internal/models"
)

// UpsertProfileRequest represents a request to create or update a profile
type UpsertProfileRequest struct {
	WalletAddress string  `json:"wallet_address"`
	Username      *string `json:"username"`
	Email         *string `json:"email"`
	Bio           *string `json:"bio"`
	AvatarURL     *string `json:"avatar_url"`
}

// HandleUpsertProfile creates or updates the profile for a wallet address
func (s *Server) HandleUpsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpsertProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		if req.WalletAddress == "" {
			http.Error(w, "wallet_address is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := s.requestContext(r)
		defer cancel()

		profile, err := s.Service.UpsertProfile(ctx, &models.UserProfile{
			WalletAddress: req.WalletAddress,
			Username:      req.Username,
			Email:         req.Email,
			Bio:           req.Bio,
			AvatarURL:     req.AvatarURL,
		})
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, profile)
	}
}

// HandleGetProfile returns the stored profile, or a default one when the
// wallet has never written a profile.
func (s *Server) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := r.PathValue("wallet_address")

		ctx, cancel := s.requestContext(r)
		defer cancel()

		profile, err := s.Service.Profile(ctx, walletAddress)
		if err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, profile)
	}
}
