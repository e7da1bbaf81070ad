package store

import (
	"context"

	"github.com/feral-file/ff-donate/internal/domain"
)

// Store defines the interface for campaign, donation and social feed persistence.
// Every returned entity is a copy; mutating it never affects stored state.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateCampaign creates a campaign with a zero raised total
	CreateCampaign(ctx context.Context, input domain.InsertCampaign) (*domain.Campaign, error)
	// GetCampaign retrieves a campaign by ID
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// GetCampaignWithDonations retrieves a campaign and its donations from a single snapshot
	GetCampaignWithDonations(ctx context.Context, id string) (*domain.CampaignWithDonations, error)
	// ListCampaigns lists all campaigns, newest first
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListCampaignsByCreator lists the campaigns of a creator, newest first
	ListCampaignsByCreator(ctx context.Context, creatorAddress string) ([]domain.Campaign, error)

	// CreateDonation records a donation and adds its amount to the campaign's raised total atomically
	CreateDonation(ctx context.Context, input domain.InsertDonation) (*domain.Donation, error)
	// ListDonations lists all donations, newest first
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	// ListDonationsByCampaign lists the donations of a campaign, newest first
	ListDonationsByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error)
	// ListDonationsByDonor lists the donations made by a donor, newest first
	ListDonationsByDonor(ctx context.Context, donorAddress string) ([]domain.Donation, error)

	// CreateSocialPost creates a post with zero likes
	CreateSocialPost(ctx context.Context, input domain.InsertSocialPost) (*domain.SocialPost, error)
	// GetSocialPost retrieves a post by ID
	GetSocialPost(ctx context.Context, id string) (*domain.SocialPost, error)
	// ListSocialPostsByAuthor lists the posts of an author, newest first
	ListSocialPostsByAuthor(ctx context.Context, authorAddress string) ([]domain.SocialPost, error)
	// ListSocialPostsWithDetails lists all posts newest first with comments and the viewer's like state
	ListSocialPostsWithDetails(ctx context.Context, viewerAddress string) ([]domain.SocialPostWithDetails, error)

	// CreateComment adds a comment to an existing post
	CreateComment(ctx context.Context, input domain.InsertComment) (*domain.Comment, error)
	// ListCommentsByPost lists the comments of a post, oldest first
	ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error)

	// ToggleLike likes the post if the user has no active like, otherwise removes it
	ToggleLike(ctx context.Context, postID, userAddress string) (*domain.LikeToggle, error)
	// DeleteLike removes the user's like if present and reports whether one was removed.
	// A missing post or an address with no like is a no-op, not an error.
	DeleteLike(ctx context.Context, postID, userAddress string) (removed bool, likes int, err error)
	// ListLikesByPost lists the active likes of a post, oldest first
	ListLikesByPost(ctx context.Context, postID string) ([]domain.Like, error)
	// HasLiked reports whether the user has an active like on the post
	HasLiked(ctx context.Context, postID, userAddress string) (bool, error)

	// GetPlatformStats aggregates campaign and donation totals
	GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)

	// Ping checks that the underlying storage is reachable
	Ping(ctx context.Context) error
}
