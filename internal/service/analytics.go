package service

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/google/uuid"
)

// RecordView inserts a view for the (article, wallet) pair and bumps
// total_views. A repeat view is a silent success with no increment.
func (s *Service) RecordView(ctx context.Context, articleID, userWallet string) error {
	view := &models.ArticleView{
		ID:         uuid.NewString(),
		ArticleID:  articleID,
		UserWallet: userWallet,
		ViewedAt:   time.Now().UTC(),
	}

	err := s.store.InsertView(ctx, view)
	if utils.IsErrorCode(err, utils.ErrDuplicate) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.store.IncrementViews(ctx, articleID)
}

// React sets the wallet's reaction on an article, overwriting any prior one,
// then refreshes the summary from a full recount of the reaction collection.
// The count-then-upsert sequence is not atomic; a concurrent reaction write
// can interleave between the recount and the summary write.
func (s *Service) React(ctx context.Context, articleID, userWallet string, reactionType models.ReactionType) (likes, dislikes int64, err error) {
	if !reactionType.Valid() {
		return 0, 0, utils.NewAppError(utils.ErrInvalidInput, "reaction_type must be like or dislike", nil)
	}

	reaction := &models.ArticleReaction{
		ID:           uuid.NewString(),
		ArticleID:    articleID,
		UserWallet:   userWallet,
		ReactionType: reactionType,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.SaveReaction(ctx, reaction); err != nil {
		return 0, 0, err
	}
	return s.refreshReactionCounts(ctx, articleID)
}

// RemoveReaction deletes the wallet's reaction if one exists and refreshes
// the summary. Removing a reaction that was never set is a no-op success
// with unchanged counts.
func (s *Service) RemoveReaction(ctx context.Context, articleID, userWallet string) (likes, dislikes int64, err error) {
	if _, err := s.store.DeleteReaction(ctx, articleID, userWallet); err != nil {
		return 0, 0, err
	}
	return s.refreshReactionCounts(ctx, articleID)
}

func (s *Service) refreshReactionCounts(ctx context.Context, articleID string) (likes, dislikes int64, err error) {
	likes, err = s.store.CountReactions(ctx, articleID, models.ReactionLike)
	if err != nil {
		return 0, 0, err
	}
	dislikes, err = s.store.CountReactions(ctx, articleID, models.ReactionDislike)
	if err != nil {
		return 0, 0, err
	}

	if err := s.store.SetReactionCounts(ctx, articleID, likes, dislikes); err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}

// Analytics returns the stored summary, or a zero-valued one when the
// article has no analytics yet.
func (s *Service) Analytics(ctx context.Context, articleID string) (*models.ArticleAnalytics, error) {
	analytics, err := s.store.GetAnalytics(ctx, articleID)
	if utils.IsErrorCode(err, utils.ErrNotFound) {
		return &models.ArticleAnalytics{ArticleID: articleID}, nil
	}
	if err != nil {
		return nil, err
	}
	return analytics, nil
}

// UserReaction reports whether the wallet has reacted to the article and, if
// so, with which type.
func (s *Service) UserReaction(ctx context.Context, articleID, userWallet string) (hasReacted bool, reactionType models.ReactionType, err error) {
	reaction, err := s.store.GetReaction(ctx, articleID, userWallet)
	if utils.IsErrorCode(err, utils.ErrNotFound) {
		return false, "", nil
	}
	if err != nil {
		return false, "", err
	}
	return true, reaction.ReactionType, nil
}
