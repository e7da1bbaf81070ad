package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-donate/internal/api/shared/dto"
	"github.com/feral-file/ff-donate/internal/api/shared/executor"
	"github.com/feral-file/ff-donate/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetPlatformStats returns campaign and donation totals
	// GET /api/stats
	GetPlatformStats(c *gin.Context)

	// ListCampaigns lists all campaigns, newest first
	// GET /api/campaigns
	ListCampaigns(c *gin.Context)

	// GetCampaign retrieves a campaign with its donations
	// GET /api/campaigns/:id
	GetCampaign(c *gin.Context)

	// ListCampaignsByCreator lists the campaigns of a creator
	// GET /api/campaigns/creator/:creatorAddress
	ListCampaignsByCreator(c *gin.Context)

	// CreateCampaign creates a campaign
	// POST /api/campaigns
	CreateCampaign(c *gin.Context)

	// ListDonations lists all donations, newest first
	// GET /api/donations
	ListDonations(c *gin.Context)

	// ListDonationsByCampaign lists the donations of a campaign
	// GET /api/donations/campaign/:campaignId
	ListDonationsByCampaign(c *gin.Context)

	// ListDonationsByDonor lists the donations of a donor, matched case-insensitively
	// GET /api/donations/donor/:donorAddress
	ListDonationsByDonor(c *gin.Context)

	// CreateDonation records a donation and raises the campaign total
	// POST /api/donations
	CreateDonation(c *gin.Context)

	// ListSocialPosts lists the feed with comments and the viewer's like state
	// GET /api/social/posts?userAddress=<address>
	ListSocialPosts(c *gin.Context)

	// GetSocialPost retrieves a post with its comments
	// GET /api/social/posts/:id?userAddress=<address>
	GetSocialPost(c *gin.Context)

	// ListSocialPostsByAuthor lists the posts of an author
	// GET /api/social/posts/author/:authorAddress
	ListSocialPostsByAuthor(c *gin.Context)

	// CreateSocialPost creates a post
	// POST /api/social/posts
	CreateSocialPost(c *gin.Context)

	// ListComments lists the comments of a post, oldest first
	// GET /api/social/comments/:postId
	ListComments(c *gin.Context)

	// CreateComment comments on a post
	// POST /api/social/comments
	CreateComment(c *gin.Context)

	// ToggleLike likes a post, or unlikes it when the user already liked it
	// POST /api/social/likes
	ToggleLike(c *gin.Context)

	// DeleteLike removes a user's like from a post
	// DELETE /api/social/likes/:postId/:userAddress
	DeleteLike(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	storage  string
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, storage string, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		storage:  storage,
		executor: exec,
	}
}

func (h *handler) GetPlatformStats(c *gin.Context) {
	stats, err := h.executor.GetPlatformStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *handler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.executor.ListCampaigns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

func (h *handler) GetCampaign(c *gin.Context) {
	id := c.Param("id")

	campaign, err := h.executor.GetCampaign(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, zap.String("campaignID", id))
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *handler) ListCampaignsByCreator(c *gin.Context) {
	campaigns, err := h.executor.ListCampaignsByCreator(c.Request.Context(), c.Param("creatorAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

func (h *handler) CreateCampaign(c *gin.Context) {
	var input domain.InsertCampaign
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMalformedBody(c, err)
		return
	}

	campaign, err := h.executor.CreateCampaign(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

func (h *handler) ListDonations(c *gin.Context) {
	donations, err := h.executor.ListDonations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donations)
}

func (h *handler) ListDonationsByCampaign(c *gin.Context) {
	campaignID := c.Param("campaignId")

	donations, err := h.executor.ListDonationsByCampaign(c.Request.Context(), campaignID)
	if err != nil {
		respondError(c, err, zap.String("campaignID", campaignID))
		return
	}

	c.JSON(http.StatusOK, donations)
}

func (h *handler) ListDonationsByDonor(c *gin.Context) {
	donations, err := h.executor.ListDonationsByDonor(c.Request.Context(), c.Param("donorAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donations)
}

func (h *handler) CreateDonation(c *gin.Context) {
	var input domain.InsertDonation
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMalformedBody(c, err)
		return
	}

	donation, err := h.executor.CreateDonation(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, zap.String("campaignID", input.CampaignID))
		return
	}

	c.JSON(http.StatusCreated, donation)
}

func (h *handler) ListSocialPosts(c *gin.Context) {
	posts, err := h.executor.ListSocialPosts(c.Request.Context(), c.Query("userAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *handler) GetSocialPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.executor.GetSocialPost(c.Request.Context(), id, c.Query("userAddress"))
	if err != nil {
		respondError(c, err, zap.String("postID", id))
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *handler) ListSocialPostsByAuthor(c *gin.Context) {
	posts, err := h.executor.ListSocialPostsByAuthor(c.Request.Context(), c.Param("authorAddress"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *handler) CreateSocialPost(c *gin.Context) {
	var input domain.InsertSocialPost
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMalformedBody(c, err)
		return
	}

	post, err := h.executor.CreateSocialPost(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *handler) ListComments(c *gin.Context) {
	postID := c.Param("postId")

	comments, err := h.executor.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err, zap.String("postID", postID))
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *handler) CreateComment(c *gin.Context) {
	var input domain.InsertComment
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMalformedBody(c, err)
		return
	}

	comment, err := h.executor.CreateComment(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, zap.String("postID", input.PostID))
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *handler) ToggleLike(c *gin.Context) {
	var input domain.InsertLike
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMalformedBody(c, err)
		return
	}

	result, err := h.executor.ToggleLike(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, zap.String("postID", input.PostID))
		return
	}

	status := http.StatusOK
	if result.Liked {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (h *handler) DeleteLike(c *gin.Context) {
	input := domain.InsertLike{
		PostID:      c.Param("postId"),
		UserAddress: c.Param("userAddress"),
	}

	if err := h.executor.DeleteLike(c.Request.Context(), input); err != nil {
		respondError(c, err, zap.String("postID", input.PostID))
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	response := dto.HealthResponse{
		Status:    dto.HEALTH_STATUS_OK,
		Storage:   h.storage,
		Timestamp: time.Now().UTC(),
	}

	status := http.StatusOK
	if err := h.executor.Ping(c.Request.Context()); err != nil {
		response.Status = dto.HEALTH_STATUS_UNAVAILABLE
		if h.debug {
			response.Error = err.Error()
		}
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}
