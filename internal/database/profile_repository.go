// internal/database/profile_repository.go
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

// ProfileDocument represents the MongoDB schema for a user profile.
type ProfileDocument struct {
	ID            string    `bson:"_id"`
	WalletAddress string    `bson:"wallet_address"`
	Username      *string   `bson:"username"`
	Email         *string   `bson:"email"`
	Bio           *string   `bson:"bio"`
	AvatarURL     *string   `bson:"avatar_url"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func profileToModel(doc *ProfileDocument) *models.UserProfile {
	return &models.UserProfile{
		WalletAddress: doc.WalletAddress,
		Username:      doc.Username,
		Email:         doc.Email,
		Bio:           doc.Bio,
		AvatarURL:     doc.AvatarURL,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

// UpsertProfile updates-or-inserts the profile keyed by wallet address.
// created_at is set only on insert; updated_at is refreshed on every write.
func (m *MongoDB) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	db, err := m.database(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	filter := bson.M{"wallet_address": profile.WalletAddress}
	update := bson.M{
		"$set": bson.M{
			"username":   profile.Username,
			"email":      profile.Email,
			"bio":        profile.Bio,
			"avatar_url": profile.AvatarURL,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":            uuid.NewString(),
			"wallet_address": profile.WalletAddress,
			"created_at":     now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err = db.Collection(ColProfiles).UpdateOne(ctx, filter, update, opts)
	return err
}

// GetProfile retrieves a profile by wallet address.
func (m *MongoDB) GetProfile(ctx context.Context, walletAddress string) (*models.UserProfile, error) {
	db, err := m.database(ctx)
	if err != nil {
		return nil, err
	}

	var doc ProfileDocument
	err = db.Collection(ColProfiles).FindOne(ctx, bson.M{"wallet_address": walletAddress}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewAppError(utils.ErrNotFound, "profile not found", err)
	}
	if err != nil {
		return nil, err
	}

	return profileToModel(&doc), nil
}
