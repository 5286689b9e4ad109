// internal/database/article_repository.go
package database

import (
	"context"
	"time"

	"inkwell/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserArticleDocument represents the MongoDB schema for a published article
// record.
type UserArticleDocument struct {
	ID           string    `bson:"_id"`
	UserWallet   string    `bson:"user_wallet"`
	ArticleID    string    `bson:"article_id"`
	ArticleTitle string    `bson:"article_title"`
	IPFSHash     string    `bson:"ipfs_hash"`
	PublishedAt  time.Time `bson:"published_at"`
}

// InsertUserArticle records an article the wallet has published.
func (m *MongoDB) InsertUserArticle(ctx context.Context, article *models.UserArticle) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}

	doc := UserArticleDocument{
		ID:           article.ID,
		UserWallet:   article.UserWallet,
		ArticleID:    article.ArticleID,
		ArticleTitle: article.ArticleTitle,
		IPFSHash:     article.IPFSHash,
		PublishedAt:  article.PublishedAt,
	}

	_, err = db.Collection(ColUserArticles).InsertOne(ctx, doc)
	return err
}

// ListUserArticles returns the wallet's published articles, newest first.
func (m *MongoDB) ListUserArticles(ctx context.Context, userWallet string) ([]*models.UserArticle, error) {
	db, err := m.database(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	cursor, err := db.Collection(ColUserArticles).Find(ctx, bson.M{"user_wallet": userWallet}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	articles := []*models.UserArticle{}
	for cursor.Next(ctx) {
		var doc UserArticleDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		articles = append(articles, &models.UserArticle{
			ID:           doc.ID,
			UserWallet:   doc.UserWallet,
			ArticleID:    doc.ArticleID,
			ArticleTitle: doc.ArticleTitle,
			IPFSHash:     doc.IPFSHash,
			PublishedAt:  doc.PublishedAt,
		})
	}

	return articles, cursor.Err()
}
