// internal/database/analytics_repository.go
package database

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ViewDocument represents the MongoDB schema for an article view.
type ViewDocument struct {
	ID         string    `bson:"_id"`
	ArticleID  string    `bson:"article_id"`
	UserWallet string    `bson:"user_wallet"`
	ViewedAt   time.Time `bson:"viewed_at"`
}

// ReactionDocument represents the MongoDB schema for a like/dislike.
type ReactionDocument struct {
	ID           string    `bson:"_id"`
	ArticleID    string    `bson:"article_id"`
	UserWallet   string    `bson:"user_wallet"`
	ReactionType string    `bson:"reaction_type"`
	CreatedAt    time.Time `bson:"created_at"`
}

// AnalyticsDocument represents the MongoDB schema for the per-article summary.
type AnalyticsDocument struct {
	ID            string    `bson:"_id"`
	ArticleID     string    `bson:"article_id"`
	TotalViews    int64     `bson:"total_views"`
	TotalLikes    int64     `bson:"total_likes"`
	TotalDislikes int64     `bson:"total_dislikes"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

// InsertView inserts a view record for the (article, wallet) pair. A second
// view of the same pair violates the unique index and comes back as a
// DUPLICATE error for the caller to swallow.
func (m *MongoDB) InsertView(ctx context.Context, view *models.ArticleView) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}

	doc := ViewDocument{
		ID:         view.ID,
		ArticleID:  view.ArticleID,
		UserWallet: view.UserWallet,
		ViewedAt:   view.ViewedAt,
	}

	_, err = db.Collection(ColViews).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return utils.NewAppError(utils.ErrDuplicate, "view already recorded", err)
	}
	return err
}

// IncrementViews bumps total_views by one, creating the summary if needed.
func (m *MongoDB) IncrementViews(ctx context.Context, articleID string) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}

	filter := bson.M{"article_id": articleID}
	update := bson.M{
		"$inc": bson.M{"total_views": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
		"$setOnInsert": bson.M{
			"_id":            uuid.NewString(),
			"total_likes":    int64(0),
			"total_dislikes": int64(0),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err = db.Collection(ColAnalytics).UpdateOne(ctx, filter, update, opts)
	return err
}

// SaveReaction creates or overwrites the wallet's reaction on an article.
func (m *MongoDB) SaveReaction(ctx context.Context, reaction *models.ArticleReaction) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}

	filter := bson.M{"article_id": reaction.ArticleID, "user_wallet": reaction.UserWallet}
	update := bson.M{
		"$set": bson.M{
			"reaction_type": string(reaction.ReactionType),
			"created_at":    reaction.CreatedAt,
		},
		"$setOnInsert": bson.M{"_id": reaction.ID},
	}

	opts := options.Update().SetUpsert(true)
	_, err = db.Collection(ColReactions).UpdateOne(ctx, filter, update, opts)
	return err
}

// DeleteReaction removes the wallet's reaction, if any. Absence is not an
// error; the returned bool reports whether a document was actually deleted.
func (m *MongoDB) DeleteReaction(ctx context.Context, articleID, userWallet string) (bool, error) {
	db, err := m.database(ctx)
	if err != nil {
		return false, err
	}

	result, err := db.Collection(ColReactions).DeleteOne(ctx, bson.M{
		"article_id":  articleID,
		"user_wallet": userWallet,
	})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// GetReaction retrieves the wallet's reaction on an article.
func (m *MongoDB) GetReaction(ctx context.Context, articleID, userWallet string) (*models.ArticleReaction, error) {
	db, err := m.database(ctx)
	if err != nil {
		return nil, err
	}

	var doc ReactionDocument
	err = db.Collection(ColReactions).FindOne(ctx, bson.M{
		"article_id":  articleID,
		"user_wallet": userWallet,
	}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewAppError(utils.ErrNotFound, "reaction not found", err)
	}
	if err != nil {
		return nil, err
	}

	return &models.ArticleReaction{
		ID:           doc.ID,
		ArticleID:    doc.ArticleID,
		UserWallet:   doc.UserWallet,
		ReactionType: models.ReactionType(doc.ReactionType),
		CreatedAt:    doc.CreatedAt,
	}, nil
}

// CountReactions returns the live number of reactions of the given type for
// an article.
func (m *MongoDB) CountReactions(ctx context.Context, articleID string, reactionType models.ReactionType) (int64, error) {
	db, err := m.database(ctx)
	if err != nil {
		return 0, err
	}

	return db.Collection(ColReactions).CountDocuments(ctx, bson.M{
		"article_id":    articleID,
		"reaction_type": string(reactionType),
	})
}

// SetReactionCounts writes freshly recomputed like/dislike totals into the
// summary, creating it if needed. total_views is left untouched.
func (m *MongoDB) SetReactionCounts(ctx context.Context, articleID string, likes, dislikes int64) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}

	filter := bson.M{"article_id": articleID}
	update := bson.M{
		"$set": bson.M{
			"total_likes":    likes,
			"total_dislikes": dislikes,
			"updated_at":     time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id":         uuid.NewString(),
			"total_views": int64(0),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err = db.Collection(ColAnalytics).UpdateOne(ctx, filter, update, opts)
	return err
}

// GetAnalytics retrieves the stored summary for an article.
func (m *MongoDB) GetAnalytics(ctx context.Context, articleID string) (*models.ArticleAnalytics, error) {
	db, err := m.database(ctx)
	if err != nil {
		return nil, err
	}

	var doc AnalyticsDocument
	err = db.Collection(ColAnalytics).FindOne(ctx, bson.M{"article_id": articleID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewAppError(utils.ErrNotFound, "analytics not found", err)
	}
	if err != nil {
		return nil, err
	}

	return &models.ArticleAnalytics{
		ArticleID:     doc.ArticleID,
		TotalViews:    doc.TotalViews,
		TotalLikes:    doc.TotalLikes,
		TotalDislikes: doc.TotalDislikes,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}
