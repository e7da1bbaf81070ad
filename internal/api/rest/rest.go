package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-donate/internal/metrics"
)

// SetupRoutes configures all REST API routes. writeLimit guards the routes that create or change state.
func SetupRoutes(router *gin.Engine, handler Handler, writeLimit gin.HandlerFunc) {
	// Health check and metrics endpoints (no prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/stats", handler.GetPlatformStats)

		// Campaign endpoints
		api.GET("/campaigns", handler.ListCampaigns)
		api.GET("/campaigns/:id", handler.GetCampaign)
		api.GET("/campaigns/creator/:creatorAddress", handler.ListCampaignsByCreator)
		api.POST("/campaigns", writeLimit, handler.CreateCampaign)

		// Donation endpoints
		api.GET("/donations", handler.ListDonations)
		api.GET("/donations/campaign/:campaignId", handler.ListDonationsByCampaign)
		api.GET("/donations/donor/:donorAddress", handler.ListDonationsByDonor)
		api.POST("/donations", writeLimit, handler.CreateDonation)

		// Social feed endpoints
		social := api.Group("/social")
		social.GET("/posts", handler.ListSocialPosts)
		social.GET("/posts/:id", handler.GetSocialPost)
		social.GET("/posts/author/:authorAddress", handler.ListSocialPostsByAuthor)
		social.POST("/posts", writeLimit, handler.CreateSocialPost)
		social.GET("/comments/:postId", handler.ListComments)
		social.POST("/comments", writeLimit, handler.CreateComment)
		social.POST("/likes", writeLimit, handler.ToggleLike)
		social.DELETE("/likes/:postId/:userAddress", writeLimit, handler.DeleteLike)
	}
}
