package service

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/google/uuid"
)

// AddFavorite inserts a favorite row for the wallet. Adding an article that
// is already favorited is reported as success; the returned flag tells the
// two cases apart.
func (s *Service) AddFavorite(ctx context.Context, userWallet, articleID, articleTitle string) (alreadyFavorited bool, err error) {
	favorite := &models.FavoriteArticle{
		ID:           uuid.NewString(),
		UserWallet:   userWallet,
		ArticleID:    articleID,
		ArticleTitle: articleTitle,
		AddedAt:      time.Now().UTC(),
	}

	err = s.store.InsertFavorite(ctx, favorite)
	if utils.IsErrorCode(err, utils.ErrDuplicate) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// RemoveFavorite deletes the favorite; a missing row is not an error.
func (s *Service) RemoveFavorite(ctx context.Context, userWallet, articleID string) error {
	return s.store.DeleteFavorite(ctx, userWallet, articleID)
}

// ListFavorites returns the wallet's favorites, most recent first.
func (s *Service) ListFavorites(ctx context.Context, userWallet string) ([]*models.FavoriteArticle, error) {
	return s.store.ListFavorites(ctx, userWallet)
}

// SearchFavorites matches query as a case-insensitive substring against
// favorite titles across all wallets, capped at SearchLimit.
func (s *Service) SearchFavorites(ctx context.Context, query string) ([]*models.FavoriteArticle, error) {
	return s.store.SearchFavorites(ctx, query, SearchLimit)
}
