// internal/database/indexes.go
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

func indexSpecs() []indexSpec {
	unique := options.Index().SetUnique(true)

	return []indexSpec{
		{ColProfiles, mongo.IndexModel{
			Keys:    bson.D{{Key: "wallet_address", Value: 1}},
			Options: unique,
		}},
		{ColViews, mongo.IndexModel{
			Keys:    bson.D{{Key: "article_id", Value: 1}, {Key: "user_wallet", Value: 1}},
			Options: unique,
		}},
		{ColReactions, mongo.IndexModel{
			Keys:    bson.D{{Key: "article_id", Value: 1}, {Key: "user_wallet", Value: 1}},
			Options: unique,
		}},
		{ColFavorites, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_wallet", Value: 1}, {Key: "article_id", Value: 1}},
			Options: unique,
		}},
		{ColAnalytics, mongo.IndexModel{
			Keys:    bson.D{{Key: "article_id", Value: 1}},
			Options: unique,
		}},
		{ColUserArticles, mongo.IndexModel{
			Keys: bson.D{{Key: "user_wallet", Value: 1}},
		}},
		// Text index on favorite titles. Search itself uses a substring
		// regex, so this only exists for parity with the stored schema.
		{ColFavorites, mongo.IndexModel{
			Keys: bson.D{{Key: "article_title", Value: "text"}},
		}},
	}
}

// ensureIndexes declares the uniqueness and search indexes the collections
// rely on. Runs once per process after the first successful connect, which
// after a degraded start may be a later reconnect. A failure here is logged
// and non-fatal: the service keeps serving without the guarantee the index
// would have provided.
func (m *MongoDB) ensureIndexes(ctx context.Context, db *mongo.Database) {
	for _, spec := range indexSpecs() {
		if _, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model); err != nil {
			m.log.Warn("index creation failed", "collection", spec.collection, "err", err)
		}
	}
}
