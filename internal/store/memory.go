package store

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-donate/internal/adapter"
	"github.com/feral-file/ff-donate/internal/domain"
	"github.com/feral-file/ff-donate/internal/types"
)

// campaignRecord holds a campaign with its donations. mu guards every field but seq.
type campaignRecord struct {
	mu        sync.Mutex
	seq       uint64
	campaign  domain.Campaign
	donations []donationRecord
}

type donationRecord struct {
	seq      uint64
	donation domain.Donation
}

// postRecord holds a post with its comments and likes. mu guards every field but seq.
type postRecord struct {
	mu       sync.Mutex
	seq      uint64
	post     domain.SocialPost
	comments []commentRecord
	likes    map[string]likeRecord // keyed by types.AddressKey(userAddress)
}

type commentRecord struct {
	seq     uint64
	comment domain.Comment
}

type likeRecord struct {
	seq  uint64
	like domain.Like
}

type memoryStore struct {
	clock adapter.Clock
	seq   atomic.Uint64

	// mu guards the indexes below, never the records themselves.
	// It is never held while waiting on a record lock.
	mu        sync.RWMutex
	campaigns map[string]*campaignRecord
	donations []donationRecord
	posts     map[string]*postRecord
}

// NewMemoryStore creates an in-process store with per-campaign and per-post locking
func NewMemoryStore(clock adapter.Clock) Store {
	return &memoryStore{
		clock:     clock,
		campaigns: make(map[string]*campaignRecord),
		posts:     make(map[string]*postRecord),
	}
}

func (s *memoryStore) nextSeq() uint64 {
	return s.seq.Add(1)
}

func (s *memoryStore) campaignRecord(id string) (*campaignRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.campaigns[id]
	return r, ok
}

func (s *memoryStore) postRecord(id string) (*postRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.posts[id]
	return r, ok
}

func (s *memoryStore) campaignRecords() []*campaignRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*campaignRecord, 0, len(s.campaigns))
	for _, r := range s.campaigns {
		records = append(records, r)
	}
	return records
}

func (s *memoryStore) postRecords() []*postRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*postRecord, 0, len(s.posts))
	for _, r := range s.posts {
		records = append(records, r)
	}
	return records
}

// =============================================================================
// Campaigns
// =============================================================================

func (s *memoryStore) CreateCampaign(ctx context.Context, input domain.InsertCampaign) (*domain.Campaign, error) {
	r := &campaignRecord{
		seq: s.nextSeq(),
		campaign: domain.Campaign{
			ID:                 uuid.NewString(),
			Title:              input.Title,
			Description:        input.Description,
			Goal:               input.Goal,
			Raised:             0,
			BeneficiaryAddress: input.BeneficiaryAddress,
			CreatorAddress:     input.CreatorAddress,
			ImageURL:           types.NilIfEmpty(input.ImageURL),
			Network:            input.Network,
			CreatedAt:          s.clock.Now(),
		},
	}

	s.mu.Lock()
	s.campaigns[r.campaign.ID] = r
	s.mu.Unlock()

	c := r.campaign.Clone()
	return &c, nil
}

func (s *memoryStore) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	r, ok := s.campaignRecord(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, id)
	}

	r.mu.Lock()
	c := r.campaign.Clone()
	r.mu.Unlock()

	return &c, nil
}

func (s *memoryStore) GetCampaignWithDonations(ctx context.Context, id string) (*domain.CampaignWithDonations, error) {
	r, ok := s.campaignRecord(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, id)
	}

	r.mu.Lock()
	c := r.campaign.Clone()
	records := make([]donationRecord, len(r.donations))
	copy(records, r.donations)
	r.mu.Unlock()

	return &domain.CampaignWithDonations{Campaign: c, Donations: sortDonations(records)}, nil
}

func (s *memoryStore) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.listCampaigns(func(domain.Campaign) bool { return true }), nil
}

func (s *memoryStore) ListCampaignsByCreator(ctx context.Context, creatorAddress string) ([]domain.Campaign, error) {
	return s.listCampaigns(func(c domain.Campaign) bool {
		return types.SameAddress(c.CreatorAddress, creatorAddress)
	}), nil
}

func (s *memoryStore) listCampaigns(match func(domain.Campaign) bool) []domain.Campaign {
	type entry struct {
		seq      uint64
		campaign domain.Campaign
	}

	var entries []entry
	for _, r := range s.campaignRecords() {
		r.mu.Lock()
		if match(r.campaign) {
			entries = append(entries, entry{seq: r.seq, campaign: r.campaign.Clone()})
		}
		r.mu.Unlock()
	}

	sort.Slice(entries, func(i, j int) bool {
		return newerFirst(entries[i].campaign.CreatedAt, entries[i].seq, entries[j].campaign.CreatedAt, entries[j].seq)
	})

	campaigns := make([]domain.Campaign, 0, len(entries))
	for _, e := range entries {
		campaigns = append(campaigns, e.campaign)
	}
	return campaigns
}

// =============================================================================
// Donations
// =============================================================================

func (s *memoryStore) CreateDonation(ctx context.Context, input domain.InsertDonation) (*domain.Donation, error) {
	r, ok := s.campaignRecord(input.CampaignID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, input.CampaignID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d := donationRecord{
		seq: s.nextSeq(),
		donation: domain.Donation{
			ID:           uuid.NewString(),
			CampaignID:   input.CampaignID,
			DonorAddress: input.DonorAddress,
			Amount:       input.Amount,
			TxHash:       input.TxHash,
			Network:      input.Network,
			CreatedAt:    s.clock.Now(),
		},
	}

	r.donations = append(r.donations, d)
	r.campaign.Raised += d.donation.Amount

	// Indexed under the campaign lock so platform totals and raised stay in step
	s.mu.Lock()
	s.donations = append(s.donations, d)
	s.mu.Unlock()

	donation := d.donation
	return &donation, nil
}

func (s *memoryStore) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	return s.listDonations(func(domain.Donation) bool { return true }), nil
}

func (s *memoryStore) ListDonationsByDonor(ctx context.Context, donorAddress string) ([]domain.Donation, error) {
	return s.listDonations(func(d domain.Donation) bool {
		return types.SameAddress(d.DonorAddress, donorAddress)
	}), nil
}

func (s *memoryStore) listDonations(match func(domain.Donation) bool) []domain.Donation {
	s.mu.RLock()
	var records []donationRecord
	for _, d := range s.donations {
		if match(d.donation) {
			records = append(records, d)
		}
	}
	s.mu.RUnlock()

	return sortDonations(records)
}

func (s *memoryStore) ListDonationsByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	r, ok := s.campaignRecord(campaignID)
	if !ok {
		return []domain.Donation{}, nil
	}

	r.mu.Lock()
	records := make([]donationRecord, len(r.donations))
	copy(records, r.donations)
	r.mu.Unlock()

	return sortDonations(records), nil
}

func sortDonations(records []donationRecord) []domain.Donation {
	sort.Slice(records, func(i, j int) bool {
		return newerFirst(records[i].donation.CreatedAt, records[i].seq, records[j].donation.CreatedAt, records[j].seq)
	})

	donations := make([]domain.Donation, 0, len(records))
	for _, d := range records {
		donations = append(donations, d.donation)
	}
	return donations
}

// =============================================================================
// Social posts
// =============================================================================

func (s *memoryStore) CreateSocialPost(ctx context.Context, input domain.InsertSocialPost) (*domain.SocialPost, error) {
	r := &postRecord{
		seq: s.nextSeq(),
		post: domain.SocialPost{
			ID:            uuid.NewString(),
			AuthorAddress: input.AuthorAddress,
			Content:       input.Content,
			ImageURL:      types.NilIfEmpty(input.ImageURL),
			Likes:         0,
			CreatedAt:     s.clock.Now(),
		},
		likes: make(map[string]likeRecord),
	}

	s.mu.Lock()
	s.posts[r.post.ID] = r
	s.mu.Unlock()

	p := r.post.Clone()
	return &p, nil
}

func (s *memoryStore) GetSocialPost(ctx context.Context, id string) (*domain.SocialPost, error) {
	r, ok := s.postRecord(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.ENTITY_POST, id)
	}

	r.mu.Lock()
	p := r.post.Clone()
	r.mu.Unlock()

	return &p, nil
}

func (s *memoryStore) ListSocialPostsByAuthor(ctx context.Context, authorAddress string) ([]domain.SocialPost, error) {
	details := s.listPosts("", func(p domain.SocialPost) bool {
		return types.SameAddress(p.AuthorAddress, authorAddress)
	}, false)

	posts := make([]domain.SocialPost, 0, len(details))
	for _, d := range details {
		posts = append(posts, d.SocialPost)
	}
	return posts, nil
}

func (s *memoryStore) ListSocialPostsWithDetails(ctx context.Context, viewerAddress string) ([]domain.SocialPostWithDetails, error) {
	return s.listPosts(viewerAddress, func(domain.SocialPost) bool { return true }, true), nil
}

func (s *memoryStore) listPosts(viewerAddress string, match func(domain.SocialPost) bool, withComments bool) []domain.SocialPostWithDetails {
	type entry struct {
		seq     uint64
		details domain.SocialPostWithDetails
	}

	viewerKey := types.AddressKey(viewerAddress)

	var entries []entry
	for _, r := range s.postRecords() {
		r.mu.Lock()
		if !match(r.post) {
			r.mu.Unlock()
			continue
		}

		details := domain.SocialPostWithDetails{SocialPost: r.post.Clone()}
		if withComments {
			details.Comments = r.sortedComments()
		}
		if viewerKey != "" {
			_, details.UserHasLiked = r.likes[viewerKey]
		}
		entries = append(entries, entry{seq: r.seq, details: details})
		r.mu.Unlock()
	}

	sort.Slice(entries, func(i, j int) bool {
		return newerFirst(entries[i].details.CreatedAt, entries[i].seq, entries[j].details.CreatedAt, entries[j].seq)
	})

	posts := make([]domain.SocialPostWithDetails, 0, len(entries))
	for _, e := range entries {
		posts = append(posts, e.details)
	}
	return posts
}

// =============================================================================
// Comments
// =============================================================================

func (s *memoryStore) CreateComment(ctx context.Context, input domain.InsertComment) (*domain.Comment, error) {
	r, ok := s.postRecord(input.PostID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.ENTITY_POST, input.PostID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := commentRecord{
		seq: s.nextSeq(),
		comment: domain.Comment{
			ID:            uuid.NewString(),
			PostID:        input.PostID,
			AuthorAddress: input.AuthorAddress,
			Content:       input.Content,
			CreatedAt:     s.clock.Now(),
		},
	}
	r.comments = append(r.comments, c)

	comment := c.comment
	return &comment, nil
}

func (s *memoryStore) ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	r, ok := s.postRecord(postID)
	if !ok {
		return []domain.Comment{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedComments(), nil
}

// sortedComments returns the comments oldest first. The caller must hold r.mu.
func (r *postRecord) sortedComments() []domain.Comment {
	records := make([]commentRecord, len(r.comments))
	copy(records, r.comments)

	sort.Slice(records, func(i, j int) bool {
		return newerFirst(records[j].comment.CreatedAt, records[j].seq, records[i].comment.CreatedAt, records[i].seq)
	})

	comments := make([]domain.Comment, 0, len(records))
	for _, c := range records {
		comments = append(comments, c.comment)
	}
	return comments
}

// =============================================================================
// Likes
// =============================================================================

func (s *memoryStore) ToggleLike(ctx context.Context, postID, userAddress string) (*domain.LikeToggle, error) {
	r, ok := s.postRecord(postID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.ENTITY_POST, postID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := types.AddressKey(userAddress)
	if _, liked := r.likes[key]; liked {
		r.removeLike(key)
		return &domain.LikeToggle{Liked: false, Likes: r.post.Likes}, nil
	}

	r.likes[key] = likeRecord{
		seq: s.nextSeq(),
		like: domain.Like{
			ID:          uuid.NewString(),
			PostID:      postID,
			UserAddress: userAddress,
			CreatedAt:   s.clock.Now(),
		},
	}
	r.post.Likes++

	return &domain.LikeToggle{Liked: true, Likes: r.post.Likes}, nil
}

func (s *memoryStore) DeleteLike(ctx context.Context, postID, userAddress string) (bool, int, error) {
	r, ok := s.postRecord(postID)
	if !ok {
		return false, 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := types.AddressKey(userAddress)
	if _, liked := r.likes[key]; !liked {
		return false, r.post.Likes, nil
	}

	r.removeLike(key)
	return true, r.post.Likes, nil
}

// removeLike deletes a like and decrements the counter, floored at zero. The caller must hold r.mu.
func (r *postRecord) removeLike(key string) {
	delete(r.likes, key)
	if r.post.Likes > 0 {
		r.post.Likes--
	}
}

func (s *memoryStore) ListLikesByPost(ctx context.Context, postID string) ([]domain.Like, error) {
	r, ok := s.postRecord(postID)
	if !ok {
		return []domain.Like{}, nil
	}

	r.mu.Lock()
	records := make([]likeRecord, 0, len(r.likes))
	for _, l := range r.likes {
		records = append(records, l)
	}
	r.mu.Unlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].seq < records[j].seq
	})

	likes := make([]domain.Like, 0, len(records))
	for _, l := range records {
		likes = append(likes, l.like)
	}
	return likes, nil
}

func (s *memoryStore) HasLiked(ctx context.Context, postID, userAddress string) (bool, error) {
	r, ok := s.postRecord(postID)
	if !ok {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, liked := r.likes[types.AddressKey(userAddress)]
	return liked, nil
}

// =============================================================================
// Stats
// =============================================================================

func (s *memoryStore) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &domain.PlatformStats{
		TotalCampaigns: len(s.campaigns),
		TotalDonations: len(s.donations),
	}

	donors := make(map[string]struct{})
	for _, d := range s.donations {
		stats.TotalRaised += d.donation.Amount
		donors[types.AddressKey(d.donation.DonorAddress)] = struct{}{}
	}
	stats.ActiveDonors = len(donors)

	return stats, nil
}

func (s *memoryStore) Ping(ctx context.Context) error {
	return nil
}

// newerFirst orders by creation time descending, breaking ties by insertion sequence
func newerFirst(aAt time.Time, aSeq uint64, bAt time.Time, bSeq uint64) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aSeq > bSeq
}
