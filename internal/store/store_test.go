package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-donate/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	creatorAddress     = "0x1111111111111111111111111111111111111111"
	beneficiaryAddress = "0x2222222222222222222222222222222222222222"
	donorUpper         = "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	donorLower         = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	otherDonor         = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	missingID          = "00000000-0000-4000-8000-000000000000"
)

// buildTestCampaign creates a test campaign input
func buildTestCampaign(title string, goal float64) domain.InsertCampaign {
	return domain.InsertCampaign{
		Title:              title,
		Description:        "A campaign used in store tests",
		Goal:               goal,
		BeneficiaryAddress: beneficiaryAddress,
		CreatorAddress:     creatorAddress,
		Network:            domain.NetworkTestnet,
	}
}

// buildTestDonation creates a test donation input
func buildTestDonation(campaignID, donor string, amount float64) domain.InsertDonation {
	return domain.InsertDonation{
		CampaignID:   campaignID,
		DonorAddress: donor,
		Amount:       amount,
		TxHash:       fmt.Sprintf("0xtx%s%v", strings.ToLower(donor[2:8]), amount),
		Network:      domain.NetworkTestnet,
	}
}

// buildTestPost creates a test post input
func buildTestPost(author, content string) domain.InsertSocialPost {
	return domain.InsertSocialPost{AuthorAddress: author, Content: content}
}

func mustCreateCampaign(t *testing.T, store Store, title string, goal float64) *domain.Campaign {
	t.Helper()
	c, err := store.CreateCampaign(context.Background(), buildTestCampaign(title, goal))
	require.NoError(t, err)
	return c
}

func mustCreatePost(t *testing.T, store Store, author, content string) *domain.SocialPost {
	t.Helper()
	p, err := store.CreateSocialPost(context.Background(), buildTestPost(author, content))
	require.NoError(t, err)
	return p
}

// =============================================================================
// Test: Campaigns
// =============================================================================

func testCampaigns(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create sets defaults", func(t *testing.T) {
		c, err := store.CreateCampaign(ctx, buildTestCampaign("Clean water", 1000))
		require.NoError(t, err)

		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "Clean water", c.Title)
		assert.Equal(t, float64(1000), c.Goal)
		assert.Equal(t, float64(0), c.Raised)
		assert.Nil(t, c.ImageURL)
		assert.Equal(t, domain.NetworkTestnet, c.Network)
		assert.False(t, c.CreatedAt.IsZero())

		got, err := store.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.Equal(t, c.Title, got.Title)
		assert.True(t, c.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("image url is kept", func(t *testing.T) {
		input := buildTestCampaign("With image", 10)
		input.ImageURL = "https://example.com/a.png"

		c, err := store.CreateCampaign(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, c.ImageURL)
		assert.Equal(t, "https://example.com/a.png", *c.ImageURL)
	})

	t.Run("get missing campaign", func(t *testing.T) {
		_, err := store.GetCampaign(ctx, missingID)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))

		_, err = store.GetCampaign(ctx, "not-a-uuid")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("list newest first", func(t *testing.T) {
		first := mustCreateCampaign(t, store, "First", 1)
		second := mustCreateCampaign(t, store, "Second", 1)
		third := mustCreateCampaign(t, store, "Third", 1)

		campaigns, err := store.ListCampaigns(ctx)
		require.NoError(t, err)

		order := map[string]int{}
		for i, c := range campaigns {
			order[c.ID] = i
		}
		assert.Less(t, order[third.ID], order[second.ID])
		assert.Less(t, order[second.ID], order[first.ID])
	})

	t.Run("list by creator is case-insensitive", func(t *testing.T) {
		input := buildTestCampaign("Other creator", 5)
		input.CreatorAddress = donorUpper
		c, err := store.CreateCampaign(ctx, input)
		require.NoError(t, err)

		campaigns, err := store.ListCampaignsByCreator(ctx, donorLower)
		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, c.ID, campaigns[0].ID)
		assert.Equal(t, donorUpper, campaigns[0].CreatorAddress)
	})

	t.Run("returned campaign is a copy", func(t *testing.T) {
		input := buildTestCampaign("Copy check", 5)
		input.ImageURL = "https://example.com/original.png"
		c, err := store.CreateCampaign(ctx, input)
		require.NoError(t, err)

		c.Raised = 999
		*c.ImageURL = "https://example.com/changed.png"

		got, err := store.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(0), got.Raised)
		assert.Equal(t, "https://example.com/original.png", *got.ImageURL)
	})
}

// =============================================================================
// Test: Donations
// =============================================================================

func testDonations(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("donations accumulate raised", func(t *testing.T) {
		c := mustCreateCampaign(t, store, "Goal thousand", 1000)

		_, err := store.CreateDonation(ctx, buildTestDonation(c.ID, donorUpper, 300))
		require.NoError(t, err)
		d, err := store.CreateDonation(ctx, buildTestDonation(c.ID, otherDonor, 250))
		require.NoError(t, err)
		assert.Equal(t, c.ID, d.CampaignID)
		assert.Equal(t, float64(250), d.Amount)

		got, err := store.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(550), got.Raised)

		donations, err := store.ListDonationsByCampaign(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, donations, 2)
		assert.Equal(t, d.ID, donations[0].ID, "newest first")

		stats, err := store.GetPlatformStats(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.TotalRaised, float64(550))
	})

	t.Run("campaign with donations", func(t *testing.T) {
		c := mustCreateCampaign(t, store, "With donations", 100)

		empty, err := store.GetCampaignWithDonations(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, empty.ID)
		assert.NotNil(t, empty.Donations)
		assert.Empty(t, empty.Donations)

		d1, err := store.CreateDonation(ctx, buildTestDonation(c.ID, donorUpper, 40))
		require.NoError(t, err)
		d2, err := store.CreateDonation(ctx, buildTestDonation(c.ID, otherDonor, 2.5))
		require.NoError(t, err)

		got, err := store.GetCampaignWithDonations(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 42.5, got.Raised)
		require.Len(t, got.Donations, 2)
		assert.Equal(t, d2.ID, got.Donations[0].ID)
		assert.Equal(t, d1.ID, got.Donations[1].ID)

		_, err = store.GetCampaignWithDonations(ctx, missingID)
		assert.True(t, domain.IsNotFound(err))
		_, err = store.GetCampaignWithDonations(ctx, "not-a-uuid")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("donation to missing campaign has no side effect", func(t *testing.T) {
		before, err := store.GetPlatformStats(ctx)
		require.NoError(t, err)

		_, err = store.CreateDonation(ctx, buildTestDonation(missingID, donorUpper, 10))
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))

		_, err = store.CreateDonation(ctx, buildTestDonation("nope", donorUpper, 10))
		assert.True(t, domain.IsNotFound(err))

		after, err := store.GetPlatformStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		donations, err := store.ListDonationsByCampaign(ctx, missingID)
		require.NoError(t, err)
		assert.Empty(t, donations)
	})

	t.Run("donor filter is case-insensitive", func(t *testing.T) {
		c := mustCreateCampaign(t, store, "Donor filter", 100)
		const donor = "0xCcCcCcCcCcCcCcCcCcCcCcCcCcCcCcCcCcCcCcCc"

		d1, err := store.CreateDonation(ctx, buildTestDonation(c.ID, donor, 1))
		require.NoError(t, err)
		d2, err := store.CreateDonation(ctx, buildTestDonation(c.ID, strings.ToLower(donor), 2))
		require.NoError(t, err)

		donations, err := store.ListDonationsByDonor(ctx, "0x"+strings.ToUpper(donor[2:]))
		require.NoError(t, err)
		require.Len(t, donations, 2)
		assert.Equal(t, d2.ID, donations[0].ID)
		assert.Equal(t, d1.ID, donations[1].ID)
		assert.Equal(t, donor, donations[1].DonorAddress, "stored case is preserved")
	})

	t.Run("list all donations", func(t *testing.T) {
		c := mustCreateCampaign(t, store, "List all", 100)
		d, err := store.CreateDonation(ctx, buildTestDonation(c.ID, otherDonor, 7))
		require.NoError(t, err)

		donations, err := store.ListDonations(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, donations)
		assert.Equal(t, d.ID, donations[0].ID)
	})
}

// =============================================================================
// Test: Platform stats
// =============================================================================

func testPlatformStats(t *testing.T, store Store) {
	ctx := context.Background()

	before, err := store.GetPlatformStats(ctx)
	require.NoError(t, err)

	c := mustCreateCampaign(t, store, "Stats", 100)
	const donor = "0xDdDdDdDdDdDdDdDdDdDdDdDdDdDdDdDdDdDdDdDd"

	_, err = store.CreateDonation(ctx, buildTestDonation(c.ID, donor, 10))
	require.NoError(t, err)
	_, err = store.CreateDonation(ctx, buildTestDonation(c.ID, strings.ToLower(donor), 15))
	require.NoError(t, err)

	after, err := store.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalCampaigns+1, after.TotalCampaigns)
	assert.Equal(t, before.TotalDonations+2, after.TotalDonations)
	assert.InDelta(t, before.TotalRaised+25, after.TotalRaised, 1e-9)
	assert.Equal(t, before.ActiveDonors+1, after.ActiveDonors, "mixed-case donor counted once")
}

// =============================================================================
// Test: Social posts and comments
// =============================================================================

func testSocialPosts(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get post", func(t *testing.T) {
		p := mustCreatePost(t, store, creatorAddress, "gm")
		assert.Equal(t, 0, p.Likes)
		assert.Nil(t, p.ImageURL)

		got, err := store.GetSocialPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "gm", got.Content)

		_, err = store.GetSocialPost(ctx, missingID)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("comments ordered oldest first", func(t *testing.T) {
		p := mustCreatePost(t, store, creatorAddress, "thread")

		first, err := store.CreateComment(ctx, domain.InsertComment{PostID: p.ID, AuthorAddress: otherDonor, Content: "one"})
		require.NoError(t, err)
		second, err := store.CreateComment(ctx, domain.InsertComment{PostID: p.ID, AuthorAddress: donorUpper, Content: "two"})
		require.NoError(t, err)

		comments, err := store.ListCommentsByPost(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, first.ID, comments[0].ID)
		assert.Equal(t, second.ID, comments[1].ID)
	})

	t.Run("comment on missing post creates nothing", func(t *testing.T) {
		_, err := store.CreateComment(ctx, domain.InsertComment{PostID: missingID, AuthorAddress: otherDonor, Content: "hi"})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))

		comments, err := store.ListCommentsByPost(ctx, missingID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("list by author is case-insensitive", func(t *testing.T) {
		const author = "0xEeEeEeEeEeEeEeEeEeEeEeEeEeEeEeEeEeEeEeEe"
		p1 := mustCreatePost(t, store, author, "first")
		p2 := mustCreatePost(t, store, strings.ToLower(author), "second")

		posts, err := store.ListSocialPostsByAuthor(ctx, strings.ToLower(author))
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, p2.ID, posts[0].ID)
		assert.Equal(t, p1.ID, posts[1].ID)
	})

	t.Run("feed with details", func(t *testing.T) {
		older := mustCreatePost(t, store, creatorAddress, "older")
		newer := mustCreatePost(t, store, creatorAddress, "newer")

		_, err := store.CreateComment(ctx, domain.InsertComment{PostID: older.ID, AuthorAddress: otherDonor, Content: "c1"})
		require.NoError(t, err)
		_, err = store.ToggleLike(ctx, newer.ID, donorUpper)
		require.NoError(t, err)

		feed, err := store.ListSocialPostsWithDetails(ctx, donorLower)
		require.NoError(t, err)

		index := map[string]int{}
		for i, p := range feed {
			index[p.ID] = i
		}
		require.Contains(t, index, older.ID)
		require.Contains(t, index, newer.ID)
		assert.Less(t, index[newer.ID], index[older.ID])

		olderDetails := feed[index[older.ID]]
		require.Len(t, olderDetails.Comments, 1)
		assert.Equal(t, "c1", olderDetails.Comments[0].Content)
		assert.False(t, olderDetails.UserHasLiked)

		newerDetails := feed[index[newer.ID]]
		assert.True(t, newerDetails.UserHasLiked)
		assert.Equal(t, 1, newerDetails.Likes)
		assert.NotNil(t, newerDetails.Comments)
		assert.Empty(t, newerDetails.Comments)

		anonymous, err := store.ListSocialPostsWithDetails(ctx, "")
		require.NoError(t, err)
		for _, p := range anonymous {
			assert.False(t, p.UserHasLiked)
		}
	})
}

// =============================================================================
// Test: Likes
// =============================================================================

func testLikes(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("toggle twice restores state", func(t *testing.T) {
		p := mustCreatePost(t, store, creatorAddress, "likeable")

		res, err := store.ToggleLike(ctx, p.ID, donorUpper)
		require.NoError(t, err)
		assert.Equal(t, domain.LikeToggle{Liked: true, Likes: 1}, *res)

		liked, err := store.HasLiked(ctx, p.ID, donorLower)
		require.NoError(t, err)
		assert.True(t, liked)

		res, err = store.ToggleLike(ctx, p.ID, donorLower)
		require.NoError(t, err)
		assert.Equal(t, domain.LikeToggle{Liked: false, Likes: 0}, *res)

		got, err := store.GetSocialPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Likes)

		likes, err := store.ListLikesByPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Empty(t, likes)
	})

	t.Run("likes count matches active likes", func(t *testing.T) {
		p := mustCreatePost(t, store, creatorAddress, "popular")

		for _, user := range []string{donorUpper, otherDonor, creatorAddress} {
			_, err := store.ToggleLike(ctx, p.ID, user)
			require.NoError(t, err)
		}

		likes, err := store.ListLikesByPost(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, likes, 3)
		assert.Equal(t, donorUpper, likes[0].UserAddress)

		got, err := store.GetSocialPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Likes)
	})

	t.Run("toggle on missing post", func(t *testing.T) {
		_, err := store.ToggleLike(ctx, missingID, donorUpper)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))

		liked, err := store.HasLiked(ctx, missingID, donorUpper)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("delete like", func(t *testing.T) {
		p := mustCreatePost(t, store, creatorAddress, "deletable")

		removed, likes, err := store.DeleteLike(ctx, p.ID, donorUpper)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 0, likes)

		_, err = store.ToggleLike(ctx, p.ID, donorUpper)
		require.NoError(t, err)

		removed, likes, err = store.DeleteLike(ctx, p.ID, donorLower)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, 0, likes)

		got, err := store.GetSocialPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Likes)

		removed, likes, err = store.DeleteLike(ctx, missingID, donorUpper)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 0, likes)

		removed, _, err = store.DeleteLike(ctx, "not-a-uuid", "not-an-address")
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

// =============================================================================
// Test: Concurrency
// =============================================================================

func testConcurrentDonations(t *testing.T, store Store) {
	ctx := context.Background()
	c := mustCreateCampaign(t, store, "Concurrent", 1_000_000)

	const workers = 20
	const perWorker = 10

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker+1)

	// Readers must always see raised equal to the listed donations
	done := make(chan struct{})
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			select {
			case <-done:
				return
			default:
			}
			snapshot, err := store.GetCampaignWithDonations(ctx, c.ID)
			if err != nil {
				errs <- err
				return
			}
			var sum float64
			for _, d := range snapshot.Donations {
				sum += d.Amount
			}
			if sum != snapshot.Raised {
				errs <- fmt.Errorf("raised %v does not match donations sum %v", snapshot.Raised, sum)
				return
			}
		}
	}()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				input := buildTestDonation(c.ID, otherDonor, float64(w+1))
				input.TxHash = fmt.Sprintf("0xtx-%d-%d", w, i)
				if _, err := store.CreateDonation(ctx, input); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(done)
	<-readerDone
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// sum over w of (w+1)*perWorker
	expected := float64(perWorker * workers * (workers + 1) / 2)

	got, err := store.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, got.Raised)

	donations, err := store.ListDonationsByCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, donations, workers*perWorker)

	var sum float64
	for _, d := range donations {
		sum += d.Amount
	}
	assert.Equal(t, got.Raised, sum)
}

func testConcurrentToggles(t *testing.T, store Store) {
	ctx := context.Background()
	p := mustCreatePost(t, store, creatorAddress, "contended")

	users := []string{donorUpper, otherDonor, creatorAddress, beneficiaryAddress}

	const togglesPerUser = 7

	var wg sync.WaitGroup
	errs := make(chan error, len(users)*togglesPerUser*2)
	for _, user := range users {
		for g := 0; g < 2; g++ {
			wg.Add(1)
			go func(user string, n int) {
				defer wg.Done()
				for i := 0; i < n; i++ {
					if _, err := store.ToggleLike(ctx, p.ID, user); err != nil {
						errs <- err
					}
				}
			}(user, togglesPerUser-g*3)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// each user toggles 7 + 4 = 11 times: an odd count, so liked
	got, err := store.GetSocialPost(ctx, p.ID)
	require.NoError(t, err)

	likes, err := store.ListLikesByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, likes, len(users))
	assert.Equal(t, len(likes), got.Likes)

	for _, user := range users {
		liked, err := store.HasLiked(ctx, p.ID, user)
		require.NoError(t, err)
		assert.True(t, liked, user)
	}
}

// RunStoreTests runs the behavioural suite shared by every engine
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store Store)
	}{
		{"Campaigns", testCampaigns},
		{"Donations", testDonations},
		{"PlatformStats", testPlatformStats},
		{"SocialPosts", testSocialPosts},
		{"Likes", testLikes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

// RunStoreConcurrencyTests runs the interleaving checks. The store must be safe
// for concurrent use, so engines isolated inside a single transaction cannot run these.
func RunStoreConcurrencyTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	t.Run("ConcurrentDonations", func(t *testing.T) {
		store := initDB(t)
		defer cleanupDB(t)
		testConcurrentDonations(t, store)
	})
	t.Run("ConcurrentToggles", func(t *testing.T) {
		store := initDB(t)
		defer cleanupDB(t)
		testConcurrentToggles(t, store)
	})
}
