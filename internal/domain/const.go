package domain

const (
	// Campaign field limits
	CAMPAIGN_TITLE_MIN_LENGTH       = 3
	CAMPAIGN_TITLE_MAX_LENGTH       = 200
	CAMPAIGN_DESCRIPTION_MIN_LENGTH = 10
	CAMPAIGN_DESCRIPTION_MAX_LENGTH = 5000

	// Social field limits
	POST_CONTENT_MIN_LENGTH    = 1
	POST_CONTENT_MAX_LENGTH    = 1000
	COMMENT_CONTENT_MIN_LENGTH = 1
	COMMENT_CONTENT_MAX_LENGTH = 500

	// Entity names used in not found errors
	ENTITY_CAMPAIGN = "campaign"
	ENTITY_POST     = "post"
)
