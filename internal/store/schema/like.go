package schema

import (
	"time"

	"github.com/feral-file/ff-donate/internal/domain"
)

// Like represents the likes table.
// A unique index on (post_id, lower(user_address)) keeps one like per user and post.
type Like struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	Seq         int64     `gorm:"column:seq;->;type:bigint"`
	PostID      string    `gorm:"column:post_id;not null;type:uuid"`
	UserAddress string    `gorm:"column:user_address;not null;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the Like model
func (Like) TableName() string {
	return "likes"
}

// ToDomain converts the row into a domain like
func (l Like) ToDomain() domain.Like {
	return domain.Like{
		ID:          l.ID,
		PostID:      l.PostID,
		UserAddress: l.UserAddress,
		CreatedAt:   l.CreatedAt.UTC(),
	}
}
