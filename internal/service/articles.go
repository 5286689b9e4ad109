package service

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/google/uuid"
)

// PublishArticle records an article the wallet has published, after the
// content has been pinned.
func (s *Service) PublishArticle(ctx context.Context, userWallet, articleID, articleTitle, ipfsHash string) error {
	if userWallet == "" || articleID == "" {
		return utils.NewAppError(utils.ErrInvalidInput, "user_wallet and article_id are required", nil)
	}

	article := &models.UserArticle{
		ID:           uuid.NewString(),
		UserWallet:   userWallet,
		ArticleID:    articleID,
		ArticleTitle: articleTitle,
		IPFSHash:     ipfsHash,
		PublishedAt:  time.Now().UTC(),
	}
	return s.store.InsertUserArticle(ctx, article)
}

// UserArticles returns the wallet's published articles, newest first.
func (s *Service) UserArticles(ctx context.Context, userWallet string) ([]*models.UserArticle, error) {
	return s.store.ListUserArticles(ctx, userWallet)
}
