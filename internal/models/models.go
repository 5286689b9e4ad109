package models

import "time"

// UserProfile is the profile document for a wallet address. Optional fields
// are pointers so an unset field serializes as null rather than "".
type UserProfile struct {
	WalletAddress string    `json:"wallet_address"`
	Username      *string   `json:"username"`
	Email         *string   `json:"email"`
	Bio           *string   `json:"bio"`
	AvatarURL     *string   `json:"avatar_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ArticleView records that a wallet has seen an article. At most one view
// document exists per (article, wallet) pair.
type ArticleView struct {
	ID         string    `json:"id"`
	ArticleID  string    `json:"article_id"`
	UserWallet string    `json:"user_wallet"`
	ViewedAt   time.Time `json:"viewed_at"`
}

// ArticleReaction is a wallet's like or dislike on an article. A wallet has
// at most one active reaction per article; a new reaction overwrites it.
type ArticleReaction struct {
	ID           string       `json:"id"`
	ArticleID    string       `json:"article_id"`
	UserWallet   string       `json:"user_wallet"`
	ReactionType ReactionType `json:"reaction_type"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ArticleAnalytics is the denormalized per-article summary. TotalViews is
// purely incremental; TotalLikes and TotalDislikes are recomputed from the
// reaction collection on every reaction mutation.
type ArticleAnalytics struct {
	ArticleID     string    `json:"article_id"`
	TotalViews    int64     `json:"total_views"`
	TotalLikes    int64     `json:"total_likes"`
	TotalDislikes int64     `json:"total_dislikes"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FavoriteArticle is a wallet's bookmark of an article. The title is a
// denormalized copy taken at add time.
type FavoriteArticle struct {
	ID           string    `json:"id"`
	UserWallet   string    `json:"user_wallet"`
	ArticleID    string    `json:"article_id"`
	ArticleTitle string    `json:"article_title"`
	AddedAt      time.Time `json:"added_at"`
}

// UserArticle records an article a wallet has published, with the IPFS hash
// returned by the pinning provider.
type UserArticle struct {
	ID           string    `json:"id"`
	UserWallet   string    `json:"user_wallet"`
	ArticleID    string    `json:"article_id"`
	ArticleTitle string    `json:"article_title"`
	IPFSHash     string    `json:"ipfs_hash"`
	PublishedAt  time.Time `json:"published_at"`
}
