// Package service holds the business logic between the HTTP handlers and the
// document store: profile upserts, view/reaction analytics, favorites and
// published-article records.
package service

import (
	"context"

	"inkwell/internal/models"
)

// SearchLimit caps the number of results a title search returns.
const SearchLimit = 50

// Store is the document-store surface the service needs. *database.MongoDB
// implements it; tests substitute an in-memory fake.
type Store interface {
	UpsertProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context, walletAddress string) (*models.UserProfile, error)

	InsertView(ctx context.Context, view *models.ArticleView) error
	IncrementViews(ctx context.Context, articleID string) error
	SaveReaction(ctx context.Context, reaction *models.ArticleReaction) error
	DeleteReaction(ctx context.Context, articleID, userWallet string) (bool, error)
	GetReaction(ctx context.Context, articleID, userWallet string) (*models.ArticleReaction, error)
	CountReactions(ctx context.Context, articleID string, reactionType models.ReactionType) (int64, error)
	SetReactionCounts(ctx context.Context, articleID string, likes, dislikes int64) error
	GetAnalytics(ctx context.Context, articleID string) (*models.ArticleAnalytics, error)

	InsertFavorite(ctx context.Context, favorite *models.FavoriteArticle) error
	DeleteFavorite(ctx context.Context, userWallet, articleID string) error
	ListFavorites(ctx context.Context, userWallet string) ([]*models.FavoriteArticle, error)
	SearchFavorites(ctx context.Context, query string, limit int64) ([]*models.FavoriteArticle, error)

	InsertUserArticle(ctx context.Context, article *models.UserArticle) error
	ListUserArticles(ctx context.Context, userWallet string) ([]*models.UserArticle, error)
}

// Service implements the platform operations over a Store.
type Service struct {
	store Store
}

// New creates a Service backed by the given store.
func New(store Store) *Service {
	return &Service{store: store}
}
