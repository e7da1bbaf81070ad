package schema

import (
	"time"

	"github.com/feral-file/ff-donate/internal/domain"
)

// Campaign represents the campaigns table
type Campaign struct {
	// ID is the campaign identifier (UUIDv4)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Seq breaks created_at ties in listing order
	Seq int64 `gorm:"column:seq;->;type:bigint"`
	Title       string  `gorm:"column:title;not null;type:text"`
	Description string  `gorm:"column:description;not null;type:text"`
	Goal        float64 `gorm:"column:goal;not null;type:double precision"`
	// Raised is the sum of all donation amounts, only ever incremented in the donation transaction
	Raised             float64        `gorm:"column:raised;not null;default:0;type:double precision"`
	BeneficiaryAddress string         `gorm:"column:beneficiary_address;not null;type:text"`
	CreatorAddress     string         `gorm:"column:creator_address;not null;type:text"`
	ImageURL           *string        `gorm:"column:image_url;type:text"`
	Network            domain.Network `gorm:"column:network;not null;type:text"`
	CreatedAt          time.Time      `gorm:"column:created_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// ToDomain converts the row into a domain campaign
func (c Campaign) ToDomain() domain.Campaign {
	return domain.Campaign{
		ID:                 c.ID,
		Title:              c.Title,
		Description:        c.Description,
		Goal:               c.Goal,
		Raised:             c.Raised,
		BeneficiaryAddress: c.BeneficiaryAddress,
		CreatorAddress:     c.CreatorAddress,
		ImageURL:           c.ImageURL,
		Network:            c.Network,
		CreatedAt:          c.CreatedAt.UTC(),
	}
}
