package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-donate/internal/domain"
	"github.com/feral-file/ff-donate/internal/mocks"
	"github.com/feral-file/ff-donate/internal/types"
)

const (
	creator = "0x1111111111111111111111111111111111111111"
	donor   = "0x2222222222222222222222222222222222222222"
)

type testExecutor struct {
	executor   Executor
	store      *mocks.MockStore
	dispatcher *mocks.MockDispatcher
	clock      *mocks.MockClock
}

func setupTestExecutor(t *testing.T) *testExecutor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tc := &testExecutor{
		store:      mocks.NewMockStore(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	tc.executor = NewExecutor(tc.store, tc.dispatcher, tc.clock)
	return tc
}

func validCampaignInput() domain.InsertCampaign {
	return domain.InsertCampaign{
		Title:              "Clean water",
		Description:        "Wells for three villages",
		Goal:               1000,
		BeneficiaryAddress: creator,
		CreatorAddress:     creator,
		Network:            domain.NetworkTestnet,
	}
}

func TestCreateCampaign_ValidationFailureSkipsStore(t *testing.T) {
	tc := setupTestExecutor(t)

	input := validCampaignInput()
	input.Goal = -5

	campaign, err := tc.executor.CreateCampaign(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, campaign)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.True(t, validationErr.HasField("goal"))
}

func TestCreateCampaign_DispatchesEvent(t *testing.T) {
	tc := setupTestExecutor(t)
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	input := validCampaignInput()
	created := &domain.Campaign{
		ID:             "c1",
		Title:          input.Title,
		Goal:           input.Goal,
		CreatorAddress: creator,
		Network:        domain.NetworkTestnet,
		CreatedAt:      createdAt,
	}

	tc.store.EXPECT().CreateCampaign(ctx, input).Return(created, nil)
	tc.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Do(func(_ context.Context, event domain.Event) {
		assert.Equal(t, domain.EventCampaignCreated, event.Type)
		assert.Equal(t, "c1", event.SubjectID)
		assert.Equal(t, domain.DID("did:pkh:eip155:11155111:"+creator), event.Actor)
		assert.Equal(t, createdAt, event.OccurredAt)
		assert.Equal(t, created, event.Data)
		assert.Len(t, event.ID, 26)
	})

	campaign, err := tc.executor.CreateCampaign(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, created, campaign)
}

func TestCreateDonation_MissingCampaignDoesNotDispatch(t *testing.T) {
	tc := setupTestExecutor(t)
	ctx := context.Background()

	input := domain.InsertDonation{
		CampaignID:   "missing",
		DonorAddress: donor,
		Amount:       10,
		TxHash:       "0xabc",
		Network:      domain.NetworkMainnet,
	}
	tc.store.EXPECT().CreateDonation(ctx, input).Return(nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, "missing"))

	donation, err := tc.executor.CreateDonation(ctx, input)
	assert.Nil(t, donation)
	assert.True(t, domain.IsNotFound(err))
}

func TestCreateDonation_DispatchesEvent(t *testing.T) {
	tc := setupTestExecutor(t)
	ctx := context.Background()

	input := domain.InsertDonation{
		CampaignID:   "c1",
		DonorAddress: donor,
		Amount:       300,
		TxHash:       "0xabc",
		Network:      domain.NetworkMainnet,
	}
	created := &domain.Donation{ID: "d1", CampaignID: "c1", DonorAddress: donor, Amount: 300, TxHash: "0xabc", Network: domain.NetworkMainnet}

	tc.store.EXPECT().CreateDonation(ctx, input).Return(created, nil)
	tc.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Do(func(_ context.Context, event domain.Event) {
		assert.Equal(t, domain.EventDonationRecorded, event.Type)
		assert.Equal(t, "c1", event.SubjectID)
		assert.Equal(t, domain.DID("did:pkh:eip155:1:"+donor), event.Actor)
	})

	donation, err := tc.executor.CreateDonation(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, created, donation)
}

func TestGetCampaign_WithDonations(t *testing.T) {
	tc := setupTestExecutor(t)
	ctx := context.Background()

	expected := &domain.CampaignWithDonations{
		Campaign:  domain.Campaign{ID: "c1", Raised: 550},
		Donations: []domain.Donation{{ID: "d2", Amount: 250}, {ID: "d1", Amount: 300}},
	}

	tc.store.EXPECT().GetCampaignWithDonations(ctx, "c1").Return(expected, nil)

	result, err := tc.executor.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetCampaign_NotFound(t *testing.T) {
	tc := setupTestExecutor(t)
	ctx := context.Background()

	tc.store.EXPECT().GetCampaignWithDonations(ctx, "missing").Return(nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, "missing"))

	result, err := tc.executor.GetCampaign(ctx, "missing")
	assert.Nil(t, result)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetSocialPost(t *testing.T) {
	post := &domain.SocialPost{ID: "p1", AuthorAddress: creator, Content: "hello", Likes: 1}
	comments := []domain.Comment{{ID: "k1", PostID: "p1", Content: "first"}}

	t.Run("without viewer", func(t *testing.T) {
		tc := setupTestExecutor(t)
		ctx := context.Background()

		tc.store.EXPECT().GetSocialPost(ctx, "p1").Return(post, nil)
		tc.store.EXPECT().ListCommentsByPost(ctx, "p1").Return(comments, nil)

		result, err := tc.executor.GetSocialPost(ctx, "p1", "")
		require.NoError(t, err)
		assert.Equal(t, comments, result.Comments)
		assert.False(t, result.UserHasLiked)
	})

	t.Run("with viewer", func(t *testing.T) {
		tc := setupTestExecutor(t)
		ctx := context.Background()

		tc.store.EXPECT().GetSocialPost(ctx, "p1").Return(post, nil)
		tc.store.EXPECT().ListCommentsByPost(ctx, "p1").Return(comments, nil)
		tc.store.EXPECT().HasLiked(ctx, "p1", donor).Return(true, nil)

		result, err := tc.executor.GetSocialPost(ctx, "p1", donor)
		require.NoError(t, err)
		assert.True(t, result.UserHasLiked)
	})
}

func TestCreateSocialPost(t *testing.T) {
	tc := setupTestExecutor(t)
	ctx := context.Background()

	input := domain.InsertSocialPost{AuthorAddress: creator, Content: "hello", ImageURL: "https://example.com/a.png"}
	created := &domain.SocialPost{ID: "p1", AuthorAddress: creator, Content: "hello", ImageURL: types.StringPtr("https://example.com/a.png")}

	tc.store.EXPECT().CreateSocialPost(ctx, input).Return(created, nil)
	tc.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Do(func(_ context.Context, event domain.Event) {
		assert.Equal(t, domain.EventPostCreated, event.Type)
		assert.Equal(t, domain.DID("did:pkh:eip155:1:"+creator), event.Actor)
	})

	post, err := tc.executor.CreateSocialPost(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, created, post)
}

func TestCreateComment_EmptyContent(t *testing.T) {
	tc := setupTestExecutor(t)

	_, err := tc.executor.CreateComment(context.Background(), domain.InsertComment{PostID: "p1", AuthorAddress: creator})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.True(t, validationErr.HasField("content"))
}

func TestToggleLike_DispatchesEvent(t *testing.T) {
	tc := setupTestExecutor(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	input := domain.InsertLike{PostID: "p1", UserAddress: donor}
	tc.store.EXPECT().ToggleLike(ctx, "p1", donor).Return(&domain.LikeToggle{Liked: true, Likes: 1}, nil)
	tc.clock.EXPECT().Now().Return(now)
	tc.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Do(func(_ context.Context, event domain.Event) {
		assert.Equal(t, domain.EventLikeToggled, event.Type)
		assert.Equal(t, "p1", event.SubjectID)
		assert.Equal(t, now, event.OccurredAt)
		assert.Equal(t, domain.LikeToggledData{PostID: "p1", UserAddress: donor, Liked: true, Likes: 1}, event.Data)
	})

	result, err := tc.executor.ToggleLike(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, &domain.LikeToggle{Liked: true, Likes: 1}, result)
}

func TestToggleLike_InvalidAddress(t *testing.T) {
	tc := setupTestExecutor(t)

	_, err := tc.executor.ToggleLike(context.Background(), domain.InsertLike{PostID: "p1", UserAddress: "alice"})
	assert.True(t, domain.IsValidation(err))
}

func TestDeleteLike(t *testing.T) {
	input := domain.InsertLike{PostID: "p1", UserAddress: donor}

	t.Run("removes active like", func(t *testing.T) {
		tc := setupTestExecutor(t)
		ctx := context.Background()

		tc.store.EXPECT().DeleteLike(ctx, "p1", donor).Return(true, 0, nil)
		tc.clock.EXPECT().Now().Return(time.Now())
		tc.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Do(func(_ context.Context, event domain.Event) {
			assert.Equal(t, domain.LikeToggledData{PostID: "p1", UserAddress: donor, Liked: false, Likes: 0}, event.Data)
		})

		require.NoError(t, tc.executor.DeleteLike(ctx, input))
	})

	t.Run("no active like", func(t *testing.T) {
		tc := setupTestExecutor(t)
		ctx := context.Background()

		tc.store.EXPECT().DeleteLike(ctx, "p1", donor).Return(false, 3, nil)

		require.NoError(t, tc.executor.DeleteLike(ctx, input))
	})

	t.Run("address is not validated", func(t *testing.T) {
		tc := setupTestExecutor(t)
		ctx := context.Background()

		tc.store.EXPECT().DeleteLike(ctx, "p1", "alice").Return(false, 0, nil)

		require.NoError(t, tc.executor.DeleteLike(ctx, domain.InsertLike{PostID: "p1", UserAddress: "alice"}))
	})

	t.Run("store failure", func(t *testing.T) {
		tc := setupTestExecutor(t)
		ctx := context.Background()

		tc.store.EXPECT().DeleteLike(ctx, "p1", donor).Return(false, 0, errors.New("connection reset"))

		err := tc.executor.DeleteLike(ctx, input)
		require.Error(t, err)
		assert.False(t, domain.IsNotFound(err))
	})
}

func TestPing(t *testing.T) {
	tc := setupTestExecutor(t)
	ctx := context.Background()

	tc.store.EXPECT().Ping(ctx).Return(errors.New("connection refused"))

	err := tc.executor.Ping(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
