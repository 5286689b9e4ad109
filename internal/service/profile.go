package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/utils"
)

// UpsertProfile writes the profile keyed by wallet address and returns the
// post-write document.
func (s *Service) UpsertProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if profile.WalletAddress == "" {
		return nil, utils.NewAppError(utils.ErrInvalidInput, "wallet_address is required", nil)
	}

	if err := s.store.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}
	return s.store.GetProfile(ctx, profile.WalletAddress)
}

// Profile fetches the stored profile, or synthesizes a default one when no
// record exists. Absence is modeled as a default value, not an error.
func (s *Service) Profile(ctx context.Context, walletAddress string) (*models.UserProfile, error) {
	profile, err := s.store.GetProfile(ctx, walletAddress)
	if utils.IsErrorCode(err, utils.ErrNotFound) {
		return &models.UserProfile{WalletAddress: walletAddress}, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}
