package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/utils"
)

func now() time.Time { return time.Now().UTC() }

// fakeStore is an in-memory Store with the same duplicate-key and not-found
// behavior as the MongoDB implementation.
type fakeStore struct {
	mu        sync.Mutex
	profiles  map[string]*models.UserProfile
	views     map[string]*models.ArticleView
	reactions map[string]*models.ArticleReaction
	analytics map[string]*models.ArticleAnalytics
	favorites []*models.FavoriteArticle
	articles  []*models.UserArticle
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles:  make(map[string]*models.UserProfile),
		views:     make(map[string]*models.ArticleView),
		reactions: make(map[string]*models.ArticleReaction),
		analytics: make(map[string]*models.ArticleAnalytics),
	}
}

func pairKey(a, b string) string { return a + "|" + b }

func (f *fakeStore) UpsertProfile(_ context.Context, profile *models.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.profiles[profile.WalletAddress]
	if !ok {
		copied := *profile
		copied.CreatedAt = now()
		copied.UpdatedAt = copied.CreatedAt
		f.profiles[profile.WalletAddress] = &copied
		return nil
	}
	stored.Username = profile.Username
	stored.Email = profile.Email
	stored.Bio = profile.Bio
	stored.AvatarURL = profile.AvatarURL
	stored.UpdatedAt = now()
	return nil
}

func (f *fakeStore) GetProfile(_ context.Context, walletAddress string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	profile, ok := f.profiles[walletAddress]
	if !ok {
		return nil, utils.NewAppError(utils.ErrNotFound, "profile not found", nil)
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeStore) InsertView(_ context.Context, view *models.ArticleView) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := pairKey(view.ArticleID, view.UserWallet)
	if _, ok := f.views[key]; ok {
		return utils.NewAppError(utils.ErrDuplicate, "view already recorded", nil)
	}
	f.views[key] = view
	return nil
}

func (f *fakeStore) IncrementViews(_ context.Context, articleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary := f.summaryLocked(articleID)
	summary.TotalViews++
	summary.UpdatedAt = now()
	return nil
}

func (f *fakeStore) SaveReaction(_ context.Context, reaction *models.ArticleReaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reactions[pairKey(reaction.ArticleID, reaction.UserWallet)] = reaction
	return nil
}

func (f *fakeStore) DeleteReaction(_ context.Context, articleID, userWallet string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := pairKey(articleID, userWallet)
	if _, ok := f.reactions[key]; !ok {
		return false, nil
	}
	delete(f.reactions, key)
	return true, nil
}

func (f *fakeStore) GetReaction(_ context.Context, articleID, userWallet string) (*models.ArticleReaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reaction, ok := f.reactions[pairKey(articleID, userWallet)]
	if !ok {
		return nil, utils.NewAppError(utils.ErrNotFound, "reaction not found", nil)
	}
	return reaction, nil
}

func (f *fakeStore) CountReactions(_ context.Context, articleID string, reactionType models.ReactionType) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, reaction := range f.reactions {
		if reaction.ArticleID == articleID && reaction.ReactionType == reactionType {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) SetReactionCounts(_ context.Context, articleID string, likes, dislikes int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary := f.summaryLocked(articleID)
	summary.TotalLikes = likes
	summary.TotalDislikes = dislikes
	summary.UpdatedAt = now()
	return nil
}

func (f *fakeStore) GetAnalytics(_ context.Context, articleID string) (*models.ArticleAnalytics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary, ok := f.analytics[articleID]
	if !ok {
		return nil, utils.NewAppError(utils.ErrNotFound, "analytics not found", nil)
	}
	copied := *summary
	return &copied, nil
}

func (f *fakeStore) InsertFavorite(_ context.Context, favorite *models.FavoriteArticle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.favorites {
		if existing.UserWallet == favorite.UserWallet && existing.ArticleID == favorite.ArticleID {
			return utils.NewAppError(utils.ErrDuplicate, "article already favorited", nil)
		}
	}
	f.favorites = append(f.favorites, favorite)
	return nil
}

func (f *fakeStore) DeleteFavorite(_ context.Context, userWallet, articleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.favorites {
		if existing.UserWallet == userWallet && existing.ArticleID == articleID {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) ListFavorites(_ context.Context, userWallet string) ([]*models.FavoriteArticle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Newest first; insertion order stands in for added_at.
	result := []*models.FavoriteArticle{}
	for i := len(f.favorites) - 1; i >= 0; i-- {
		if f.favorites[i].UserWallet == userWallet {
			result = append(result, f.favorites[i])
		}
	}
	return result, nil
}

func (f *fakeStore) SearchFavorites(_ context.Context, query string, limit int64) ([]*models.FavoriteArticle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	needle := strings.ToLower(query)
	result := []*models.FavoriteArticle{}
	for _, favorite := range f.favorites {
		if int64(len(result)) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(favorite.ArticleTitle), needle) {
			result = append(result, favorite)
		}
	}
	return result, nil
}

func (f *fakeStore) InsertUserArticle(_ context.Context, article *models.UserArticle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.articles = append(f.articles, article)
	return nil
}

func (f *fakeStore) ListUserArticles(_ context.Context, userWallet string) ([]*models.UserArticle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := []*models.UserArticle{}
	for i := len(f.articles) - 1; i >= 0; i-- {
		if f.articles[i].UserWallet == userWallet {
			result = append(result, f.articles[i])
		}
	}
	return result, nil
}

func (f *fakeStore) summaryLocked(articleID string) *models.ArticleAnalytics {
	summary, ok := f.analytics[articleID]
	if !ok {
		summary = &models.ArticleAnalytics{ArticleID: articleID}
		f.analytics[articleID] = summary
	}
	return summary
}
