package schema

import (
	"time"

	"github.com/feral-file/ff-donate/internal/domain"
)

// Comment represents the comments table
type Comment struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	Seq           int64     `gorm:"column:seq;->;type:bigint"`
	PostID        string    `gorm:"column:post_id;not null;type:uuid;index"`
	AuthorAddress string    `gorm:"column:author_address;not null;type:text"`
	Content       string    `gorm:"column:content;not null;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}

// ToDomain converts the row into a domain comment
func (c Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:            c.ID,
		PostID:        c.PostID,
		AuthorAddress: c.AuthorAddress,
		Content:       c.Content,
		CreatedAt:     c.CreatedAt.UTC(),
	}
}
