package schema

import (
	"time"

	"github.com/feral-file/ff-donate/internal/domain"
)

// SocialPost represents the social_posts table
type SocialPost struct {
	ID            string  `gorm:"column:id;primaryKey;type:uuid"`
	Seq           int64   `gorm:"column:seq;->;type:bigint"`
	AuthorAddress string  `gorm:"column:author_address;not null;type:text"`
	Content       string  `gorm:"column:content;not null;type:text"`
	ImageURL      *string `gorm:"column:image_url;type:text"`
	// Likes mirrors the number of rows in likes for this post
	Likes     int       `gorm:"column:likes;not null;default:0;type:integer"`
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the SocialPost model
func (SocialPost) TableName() string {
	return "social_posts"
}

// ToDomain converts the row into a domain post
func (p SocialPost) ToDomain() domain.SocialPost {
	return domain.SocialPost{
		ID:            p.ID,
		AuthorAddress: p.AuthorAddress,
		Content:       p.Content,
		ImageURL:      p.ImageURL,
		Likes:         p.Likes,
		CreatedAt:     p.CreatedAt.UTC(),
	}
}
