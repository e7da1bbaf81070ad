package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-donate/internal/adapter"
	"github.com/feral-file/ff-donate/internal/domain"
	"github.com/feral-file/ff-donate/internal/logger"
	"github.com/feral-file/ff-donate/internal/store/schema"
	"github.com/feral-file/ff-donate/internal/types"
)

// snapshotTxOptions runs multi-statement reads against one snapshot
var snapshotTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

type pgStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, clock adapter.Clock) Store {
	return &pgStore{db: db, clock: clock}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// now returns the current time at the precision postgres stores
func (s *pgStore) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

// =============================================================================
// Campaigns
// =============================================================================

func (s *pgStore) CreateCampaign(ctx context.Context, input domain.InsertCampaign) (*domain.Campaign, error) {
	row := schema.Campaign{
		ID:                 uuid.NewString(),
		Title:              input.Title,
		Description:        input.Description,
		Goal:               input.Goal,
		Raised:             0,
		BeneficiaryAddress: input.BeneficiaryAddress,
		CreatorAddress:     input.CreatorAddress,
		ImageURL:           types.NilIfEmpty(input.ImageURL),
		Network:            input.Network,
		CreatedAt:          s.now(),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	c := row.ToDomain()
	return &c, nil
}

func (s *pgStore) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if !isUUID(id) {
		return nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, id)
	}

	var row schema.Campaign
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, id)
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	c := row.ToDomain()
	return &c, nil
}

func (s *pgStore) GetCampaignWithDonations(ctx context.Context, id string) (*domain.CampaignWithDonations, error) {
	if !isUUID(id) {
		return nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, id)
	}

	var result domain.CampaignWithDonations
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.Campaign
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, id)
			}
			return fmt.Errorf("failed to get campaign: %w", err)
		}

		donations, err := s.listDonations(tx.Where("campaign_id = ?", id))
		if err != nil {
			return err
		}

		result = domain.CampaignWithDonations{Campaign: row.ToDomain(), Donations: donations}
		return nil
	}, snapshotTxOptions)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *pgStore) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.listCampaigns(s.db.WithContext(ctx))
}

func (s *pgStore) ListCampaignsByCreator(ctx context.Context, creatorAddress string) ([]domain.Campaign, error) {
	return s.listCampaigns(s.db.WithContext(ctx).Where("lower(creator_address) = ?", types.AddressKey(creatorAddress)))
}

func (s *pgStore) listCampaigns(query *gorm.DB) ([]domain.Campaign, error) {
	var rows []schema.Campaign
	if err := query.Order("created_at DESC, seq DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	campaigns := make([]domain.Campaign, 0, len(rows))
	for _, r := range rows {
		campaigns = append(campaigns, r.ToDomain())
	}
	return campaigns, nil
}

// =============================================================================
// Donations
// =============================================================================

func (s *pgStore) CreateDonation(ctx context.Context, input domain.InsertDonation) (*domain.Donation, error) {
	if !isUUID(input.CampaignID) {
		return nil, domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, input.CampaignID)
	}

	row := schema.Donation{
		ID:           uuid.NewString(),
		CampaignID:   input.CampaignID,
		DonorAddress: input.DonorAddress,
		Amount:       input.Amount,
		TxHash:       input.TxHash,
		Network:      input.Network,
		CreatedAt:    s.now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the campaign row so concurrent donations serialize on it
		var campaign schema.Campaign
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", input.CampaignID).
			First(&campaign).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, input.CampaignID)
			}
			return fmt.Errorf("failed to lock campaign: %w", err)
		}

		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create donation: %w", err)
		}

		if err := tx.Model(&schema.Campaign{}).
			Where("id = ?", input.CampaignID).
			Update("raised", gorm.Expr("raised + ?", input.Amount)).Error; err != nil {
			return fmt.Errorf("failed to update campaign raised: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	d := row.ToDomain()
	return &d, nil
}

func (s *pgStore) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	return s.listDonations(s.db.WithContext(ctx))
}

func (s *pgStore) ListDonationsByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	if !isUUID(campaignID) {
		return []domain.Donation{}, nil
	}
	return s.listDonations(s.db.WithContext(ctx).Where("campaign_id = ?", campaignID))
}

func (s *pgStore) ListDonationsByDonor(ctx context.Context, donorAddress string) ([]domain.Donation, error) {
	return s.listDonations(s.db.WithContext(ctx).Where("lower(donor_address) = ?", types.AddressKey(donorAddress)))
}

func (s *pgStore) listDonations(query *gorm.DB) ([]domain.Donation, error) {
	var rows []schema.Donation
	if err := query.Order("created_at DESC, seq DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	donations := make([]domain.Donation, 0, len(rows))
	for _, r := range rows {
		donations = append(donations, r.ToDomain())
	}
	return donations, nil
}

// =============================================================================
// Social posts
// =============================================================================

func (s *pgStore) CreateSocialPost(ctx context.Context, input domain.InsertSocialPost) (*domain.SocialPost, error) {
	row := schema.SocialPost{
		ID:            uuid.NewString(),
		AuthorAddress: input.AuthorAddress,
		Content:       input.Content,
		ImageURL:      types.NilIfEmpty(input.ImageURL),
		Likes:         0,
		CreatedAt:     s.now(),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create social post: %w", err)
	}

	p := row.ToDomain()
	return &p, nil
}

func (s *pgStore) GetSocialPost(ctx context.Context, id string) (*domain.SocialPost, error) {
	if !isUUID(id) {
		return nil, domain.NewNotFoundError(domain.ENTITY_POST, id)
	}

	var row schema.SocialPost
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.ENTITY_POST, id)
		}
		return nil, fmt.Errorf("failed to get social post: %w", err)
	}

	p := row.ToDomain()
	return &p, nil
}

func (s *pgStore) ListSocialPostsByAuthor(ctx context.Context, authorAddress string) ([]domain.SocialPost, error) {
	var rows []schema.SocialPost
	err := s.db.WithContext(ctx).
		Where("lower(author_address) = ?", types.AddressKey(authorAddress)).
		Order("created_at DESC, seq DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list social posts by author: %w", err)
	}

	posts := make([]domain.SocialPost, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, r.ToDomain())
	}
	return posts, nil
}

func (s *pgStore) ListSocialPostsWithDetails(ctx context.Context, viewerAddress string) ([]domain.SocialPostWithDetails, error) {
	var result []domain.SocialPostWithDetails
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = listPostsWithDetails(tx, viewerAddress)
		return err
	}, snapshotTxOptions)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// listPostsWithDetails reads posts, their comments and the viewer's likes; callers run it in one snapshot
func listPostsWithDetails(db *gorm.DB, viewerAddress string) ([]domain.SocialPostWithDetails, error) {
	var posts []schema.SocialPost
	if err := db.Order("created_at DESC, seq DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list social posts: %w", err)
	}
	if len(posts) == 0 {
		return []domain.SocialPostWithDetails{}, nil
	}

	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}

	var comments []schema.Comment
	err := db.Where("post_id IN ?", postIDs).
		Order("created_at ASC, seq ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	commentsByPost := make(map[string][]domain.Comment, len(posts))
	for _, c := range comments {
		commentsByPost[c.PostID] = append(commentsByPost[c.PostID], c.ToDomain())
	}

	liked := make(map[string]bool)
	if viewer := types.AddressKey(viewerAddress); viewer != "" {
		var likedIDs []string
		err := db.Model(&schema.Like{}).
			Where("post_id IN ? AND lower(user_address) = ?", postIDs, viewer).
			Pluck("post_id", &likedIDs).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list viewer likes: %w", err)
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	result := make([]domain.SocialPostWithDetails, 0, len(posts))
	for _, p := range posts {
		postComments := commentsByPost[p.ID]
		if postComments == nil {
			postComments = []domain.Comment{}
		}
		result = append(result, domain.SocialPostWithDetails{
			SocialPost:   p.ToDomain(),
			Comments:     postComments,
			UserHasLiked: liked[p.ID],
		})
	}
	return result, nil
}

// =============================================================================
// Comments
// =============================================================================

func (s *pgStore) CreateComment(ctx context.Context, input domain.InsertComment) (*domain.Comment, error) {
	if !isUUID(input.PostID) {
		return nil, domain.NewNotFoundError(domain.ENTITY_POST, input.PostID)
	}

	row := schema.Comment{
		ID:            uuid.NewString(),
		PostID:        input.PostID,
		AuthorAddress: input.AuthorAddress,
		Content:       input.Content,
		CreatedAt:     s.now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockPost(tx, input.PostID); err != nil {
			return err
		}

		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := row.ToDomain()
	return &c, nil
}

func (s *pgStore) ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	if !isUUID(postID) {
		return []domain.Comment{}, nil
	}

	var rows []schema.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, r.ToDomain())
	}
	return comments, nil
}

// =============================================================================
// Likes
// =============================================================================

// lockPost selects the post row FOR UPDATE, returning a NotFoundError when absent
func lockPost(tx *gorm.DB, postID string) (*schema.SocialPost, error) {
	var post schema.SocialPost
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", postID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.ENTITY_POST, postID)
		}
		return nil, fmt.Errorf("failed to lock social post: %w", err)
	}
	return &post, nil
}

// removeLike deletes the user's like and decrements the counter, floored at zero.
// The post row must already be locked by tx.
func removeLike(tx *gorm.DB, post *schema.SocialPost, userKey string) (bool, int, error) {
	res := tx.Where("post_id = ? AND lower(user_address) = ?", post.ID, userKey).Delete(&schema.Like{})
	if res.Error != nil {
		return false, 0, fmt.Errorf("failed to delete like: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, post.Likes, nil
	}

	if err := tx.Model(&schema.SocialPost{}).
		Where("id = ?", post.ID).
		Update("likes", gorm.Expr("GREATEST(likes - 1, 0)")).Error; err != nil {
		return false, 0, fmt.Errorf("failed to decrement likes: %w", err)
	}

	likes := post.Likes - 1
	if likes < 0 {
		likes = 0
	}
	return true, likes, nil
}

func (s *pgStore) ToggleLike(ctx context.Context, postID, userAddress string) (*domain.LikeToggle, error) {
	if !isUUID(postID) {
		return nil, domain.NewNotFoundError(domain.ENTITY_POST, postID)
	}

	var result domain.LikeToggle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := lockPost(tx, postID)
		if err != nil {
			return err
		}

		removed, likes, err := removeLike(tx, post, types.AddressKey(userAddress))
		if err != nil {
			return err
		}
		if removed {
			result = domain.LikeToggle{Liked: false, Likes: likes}
			return nil
		}

		like := schema.Like{
			ID:          uuid.NewString(),
			PostID:      postID,
			UserAddress: userAddress,
			CreatedAt:   s.now(),
		}
		if err := tx.Create(&like).Error; err != nil {
			return fmt.Errorf("failed to create like: %w", err)
		}

		if err := tx.Model(&schema.SocialPost{}).
			Where("id = ?", postID).
			Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment likes: %w", err)
		}

		result = domain.LikeToggle{Liked: true, Likes: post.Likes + 1}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *pgStore) DeleteLike(ctx context.Context, postID, userAddress string) (bool, int, error) {
	if !isUUID(postID) {
		return false, 0, nil
	}

	var (
		removed bool
		likes   int
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := lockPost(tx, postID)
		if err != nil {
			return err
		}

		removed, likes, err = removeLike(tx, post, types.AddressKey(userAddress))
		return err
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return false, 0, nil
		}
		return false, 0, err
	}

	return removed, likes, nil
}

func (s *pgStore) ListLikesByPost(ctx context.Context, postID string) ([]domain.Like, error) {
	if !isUUID(postID) {
		return []domain.Like{}, nil
	}

	var rows []schema.Like
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	likes := make([]domain.Like, 0, len(rows))
	for _, r := range rows {
		likes = append(likes, r.ToDomain())
	}
	return likes, nil
}

func (s *pgStore) HasLiked(ctx context.Context, postID, userAddress string) (bool, error) {
	if !isUUID(postID) {
		return false, nil
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Like{}).
		Where("post_id = ? AND lower(user_address) = ?", postID, types.AddressKey(userAddress)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return count > 0, nil
}

// =============================================================================
// Stats
// =============================================================================

type platformStatsRow struct {
	TotalCampaigns int64
	TotalDonations int64
	TotalRaised    float64
	ActiveDonors   int64
}

func (s *pgStore) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	// Single statement so every total comes from the same snapshot
	var row platformStatsRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM campaigns) AS total_campaigns,
			COUNT(*) AS total_donations,
			COALESCE(SUM(amount), 0) AS total_raised,
			COUNT(DISTINCT lower(donor_address)) AS active_donors
		FROM donations`).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}

	return &domain.PlatformStats{
		TotalCampaigns: int(row.TotalCampaigns),
		TotalDonations: int(row.TotalDonations),
		TotalRaised:    row.TotalRaised,
		ActiveDonors:   int(row.ActiveDonors),
	}, nil
}

func (s *pgStore) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		logger.WarnCtx(ctx, "Database ping failed", zap.Error(err))
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// isUUID reports whether id can be compared against a uuid column
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
