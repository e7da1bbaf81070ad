package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// EventType identifies the kind of domain event
type EventType string

const (
	EventCampaignCreated  EventType = "campaign_created"
	EventDonationRecorded EventType = "donation_recorded"
	EventPostCreated      EventType = "post_created"
	EventCommentCreated   EventType = "comment_created"
	EventLikeToggled      EventType = "like_toggled"
)

// Event is the envelope published after a successful write
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	SubjectID  string    `json:"subjectId"`
	Actor      DID       `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

// NewEvent creates an event envelope with a time-ordered identifier
func NewEvent(eventType EventType, subjectID string, actor DID, data any, occurredAt time.Time) Event {
	return Event{
		ID:         ulid.MustNew(ulid.Timestamp(occurredAt), ulid.DefaultEntropy()).String(),
		Type:       eventType,
		SubjectID:  subjectID,
		Actor:      actor,
		OccurredAt: occurredAt.UTC(),
		Data:       data,
	}
}

// LikeToggledData is the payload of a like_toggled event
type LikeToggledData struct {
	PostID      string `json:"postId"`
	UserAddress string `json:"userAddress"`
	Liked       bool   `json:"liked"`
	Likes       int    `json:"likes"`
}
