// internal/database/favorites_repository.go
package database

import (
	"context"
	"regexp"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FavoriteDocument represents the MongoDB schema for a favorited article.
type FavoriteDocument struct {
	ID           string    `bson:"_id"`
	UserWallet   string    `bson:"user_wallet"`
	ArticleID    string    `bson:"article_id"`
	ArticleTitle string    `bson:"article_title"`
	AddedAt      time.Time `bson:"added_at"`
}

func favoriteToModel(doc *FavoriteDocument) *models.FavoriteArticle {
	return &models.FavoriteArticle{
		ID:           doc.ID,
		UserWallet:   doc.UserWallet,
		ArticleID:    doc.ArticleID,
		ArticleTitle: doc.ArticleTitle,
		AddedAt:      doc.AddedAt,
	}
}

// InsertFavorite adds a favorite row. A duplicate (user_wallet, article_id)
// pair surfaces as a DUPLICATE error for the caller to treat as success.
func (m *MongoDB) InsertFavorite(ctx context.Context, favorite *models.FavoriteArticle) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}

	doc := FavoriteDocument{
		ID:           favorite.ID,
		UserWallet:   favorite.UserWallet,
		ArticleID:    favorite.ArticleID,
		ArticleTitle: favorite.ArticleTitle,
		AddedAt:      favorite.AddedAt,
	}

	_, err = db.Collection(ColFavorites).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return utils.NewAppError(utils.ErrDuplicate, "article already favorited", err)
	}
	return err
}

// DeleteFavorite removes the favorite if present. A missing row is not an
// error.
func (m *MongoDB) DeleteFavorite(ctx context.Context, userWallet, articleID string) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection(ColFavorites).DeleteOne(ctx, bson.M{
		"user_wallet": userWallet,
		"article_id":  articleID,
	})
	return err
}

// ListFavorites returns all favorites for a wallet, most recent first.
func (m *MongoDB) ListFavorites(ctx context.Context, userWallet string) ([]*models.FavoriteArticle, error) {
	db, err := m.database(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}})
	cursor, err := db.Collection(ColFavorites).Find(ctx, bson.M{"user_wallet": userWallet}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	favorites := []*models.FavoriteArticle{}
	for cursor.Next(ctx) {
		var doc FavoriteDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		favorites = append(favorites, favoriteToModel(&doc))
	}

	return favorites, cursor.Err()
}

// SearchFavorites does a case-insensitive substring match of query against
// favorite titles across all wallets, capped at limit. No ordering beyond
// the store's default.
func (m *MongoDB) SearchFavorites(ctx context.Context, query string, limit int64) ([]*models.FavoriteArticle, error) {
	db, err := m.database(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"article_title": primitive.Regex{
		Pattern: regexp.QuoteMeta(query),
		Options: "i",
	}}

	opts := options.Find().SetLimit(limit)
	cursor, err := db.Collection(ColFavorites).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	matches := []*models.FavoriteArticle{}
	for cursor.Next(ctx) {
		var doc FavoriteDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		matches = append(matches, favoriteToModel(&doc))
	}

	return matches, cursor.Err()
}
