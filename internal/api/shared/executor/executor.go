package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-donate/internal/adapter"
	"github.com/feral-file/ff-donate/internal/domain"
	"github.com/feral-file/ff-donate/internal/logger"
	"github.com/feral-file/ff-donate/internal/messaging"
	"github.com/feral-file/ff-donate/internal/metrics"
	"github.com/feral-file/ff-donate/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetPlatformStats aggregates campaign and donation totals
	GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)

	// ListCampaigns lists all campaigns, newest first
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListCampaignsByCreator lists the campaigns of a creator, newest first
	ListCampaignsByCreator(ctx context.Context, creatorAddress string) ([]domain.Campaign, error)
	// GetCampaign retrieves a campaign together with its donations
	GetCampaign(ctx context.Context, id string) (*domain.CampaignWithDonations, error)
	// CreateCampaign validates and creates a campaign
	CreateCampaign(ctx context.Context, input domain.InsertCampaign) (*domain.Campaign, error)

	// ListDonations lists all donations, newest first
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	// ListDonationsByCampaign lists the donations of a campaign, newest first
	ListDonationsByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error)
	// ListDonationsByDonor lists the donations of a donor, newest first
	ListDonationsByDonor(ctx context.Context, donorAddress string) ([]domain.Donation, error)
	// CreateDonation validates and records a donation
	CreateDonation(ctx context.Context, input domain.InsertDonation) (*domain.Donation, error)

	// ListSocialPosts lists all posts with comments and the viewer's like state
	ListSocialPosts(ctx context.Context, viewerAddress string) ([]domain.SocialPostWithDetails, error)
	// ListSocialPostsByAuthor lists the posts of an author, newest first
	ListSocialPostsByAuthor(ctx context.Context, authorAddress string) ([]domain.SocialPost, error)
	// GetSocialPost retrieves a post with its comments and the viewer's like state
	GetSocialPost(ctx context.Context, id string, viewerAddress string) (*domain.SocialPostWithDetails, error)
	// CreateSocialPost validates and creates a post
	CreateSocialPost(ctx context.Context, input domain.InsertSocialPost) (*domain.SocialPost, error)

	// ListComments lists the comments of a post, oldest first
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
	// CreateComment validates and adds a comment to a post
	CreateComment(ctx context.Context, input domain.InsertComment) (*domain.Comment, error)

	// ToggleLike likes the post, or removes the user's like when one is active
	ToggleLike(ctx context.Context, input domain.InsertLike) (*domain.LikeToggle, error)
	// DeleteLike removes the user's like if present
	DeleteLike(ctx context.Context, input domain.InsertLike) error

	// Ping checks that the store is reachable
	Ping(ctx context.Context) error
}

type executor struct {
	store      store.Store
	dispatcher messaging.Dispatcher
	clock      adapter.Clock
}

func NewExecutor(store store.Store, dispatcher messaging.Dispatcher, clock adapter.Clock) Executor {
	return &executor{store: store, dispatcher: dispatcher, clock: clock}
}

func (e *executor) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	return e.store.GetPlatformStats(ctx)
}

func (e *executor) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return e.store.ListCampaigns(ctx)
}

func (e *executor) ListCampaignsByCreator(ctx context.Context, creatorAddress string) ([]domain.Campaign, error) {
	return e.store.ListCampaignsByCreator(ctx, creatorAddress)
}

func (e *executor) GetCampaign(ctx context.Context, id string) (*domain.CampaignWithDonations, error) {
	return e.store.GetCampaignWithDonations(ctx, id)
}

func (e *executor) CreateCampaign(ctx context.Context, input domain.InsertCampaign) (*domain.Campaign, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	campaign, err := e.store.CreateCampaign(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.RecordCreated(metrics.ENTITY_CAMPAIGN)
	e.dispatch(ctx, domain.NewEvent(
		domain.EventCampaignCreated,
		campaign.ID,
		domain.NewDID(campaign.CreatorAddress, campaign.Network),
		campaign,
		campaign.CreatedAt))

	return campaign, nil
}

func (e *executor) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	return e.store.ListDonations(ctx)
}

func (e *executor) ListDonationsByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	return e.store.ListDonationsByCampaign(ctx, campaignID)
}

func (e *executor) ListDonationsByDonor(ctx context.Context, donorAddress string) ([]domain.Donation, error) {
	return e.store.ListDonationsByDonor(ctx, donorAddress)
}

func (e *executor) CreateDonation(ctx context.Context, input domain.InsertDonation) (*domain.Donation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	donation, err := e.store.CreateDonation(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.RecordDonation(donation.Network, donation.Amount)
	e.dispatch(ctx, domain.NewEvent(
		domain.EventDonationRecorded,
		donation.CampaignID,
		domain.NewDID(donation.DonorAddress, donation.Network),
		donation,
		donation.CreatedAt))

	return donation, nil
}

func (e *executor) ListSocialPosts(ctx context.Context, viewerAddress string) ([]domain.SocialPostWithDetails, error) {
	return e.store.ListSocialPostsWithDetails(ctx, viewerAddress)
}

func (e *executor) ListSocialPostsByAuthor(ctx context.Context, authorAddress string) ([]domain.SocialPost, error) {
	return e.store.ListSocialPostsByAuthor(ctx, authorAddress)
}

func (e *executor) GetSocialPost(ctx context.Context, id string, viewerAddress string) (*domain.SocialPostWithDetails, error) {
	post, err := e.store.GetSocialPost(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := e.store.ListCommentsByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	liked := false
	if viewerAddress != "" {
		liked, err = e.store.HasLiked(ctx, id, viewerAddress)
		if err != nil {
			return nil, err
		}
	}

	return &domain.SocialPostWithDetails{SocialPost: *post, Comments: comments, UserHasLiked: liked}, nil
}

func (e *executor) CreateSocialPost(ctx context.Context, input domain.InsertSocialPost) (*domain.SocialPost, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post, err := e.store.CreateSocialPost(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.RecordCreated(metrics.ENTITY_POST)
	e.dispatch(ctx, domain.NewEvent(
		domain.EventPostCreated,
		post.ID,
		socialActor(post.AuthorAddress),
		post,
		post.CreatedAt))

	return post, nil
}

func (e *executor) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	return e.store.ListCommentsByPost(ctx, postID)
}

func (e *executor) CreateComment(ctx context.Context, input domain.InsertComment) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	comment, err := e.store.CreateComment(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.RecordCreated(metrics.ENTITY_COMMENT)
	e.dispatch(ctx, domain.NewEvent(
		domain.EventCommentCreated,
		comment.PostID,
		socialActor(comment.AuthorAddress),
		comment,
		comment.CreatedAt))

	return comment, nil
}

func (e *executor) ToggleLike(ctx context.Context, input domain.InsertLike) (*domain.LikeToggle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result, err := e.store.ToggleLike(ctx, input.PostID, input.UserAddress)
	if err != nil {
		return nil, err
	}

	e.likeToggled(ctx, input, result.Liked, result.Likes)

	return result, nil
}

// DeleteLike is idempotent: an unknown post or an address without a like removes nothing
func (e *executor) DeleteLike(ctx context.Context, input domain.InsertLike) error {
	removed, likes, err := e.store.DeleteLike(ctx, input.PostID, input.UserAddress)
	if err != nil {
		return err
	}

	if removed {
		e.likeToggled(ctx, input, false, likes)
	}

	return nil
}

func (e *executor) Ping(ctx context.Context) error {
	if err := e.store.Ping(ctx); err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	return nil
}

func (e *executor) likeToggled(ctx context.Context, input domain.InsertLike, liked bool, likes int) {
	metrics.RecordLikeToggle(liked)
	e.dispatch(ctx, domain.NewEvent(
		domain.EventLikeToggled,
		input.PostID,
		socialActor(input.UserAddress),
		domain.LikeToggledData{
			PostID:      input.PostID,
			UserAddress: input.UserAddress,
			Liked:       liked,
			Likes:       likes,
		},
		e.clock.Now()))
}

func (e *executor) dispatch(ctx context.Context, event domain.Event) {
	logger.DebugCtx(ctx, "Dispatching event",
		zap.String("type", string(event.Type)),
		zap.String("subjectID", event.SubjectID))
	e.dispatcher.Dispatch(ctx, event)
}

// socialActor identifies feed participants, which are not bound to a network, on mainnet
func socialActor(address string) domain.DID {
	return domain.NewDID(address, domain.NetworkMainnet)
}
