package schema

import (
	"time"

	"github.com/feral-file/ff-donate/internal/domain"
)

// Donation represents the donations table
type Donation struct {
	ID           string         `gorm:"column:id;primaryKey;type:uuid"`
	Seq          int64          `gorm:"column:seq;->;type:bigint"`
	CampaignID   string         `gorm:"column:campaign_id;not null;type:uuid;index"`
	DonorAddress string         `gorm:"column:donor_address;not null;type:text"`
	Amount       float64        `gorm:"column:amount;not null;type:double precision"`
	TxHash       string         `gorm:"column:tx_hash;not null;type:text"`
	Network      domain.Network `gorm:"column:network;not null;type:text"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the Donation model
func (Donation) TableName() string {
	return "donations"
}

// ToDomain converts the row into a domain donation
func (d Donation) ToDomain() domain.Donation {
	return domain.Donation{
		ID:           d.ID,
		CampaignID:   d.CampaignID,
		DonorAddress: d.DonorAddress,
		Amount:       d.Amount,
		TxHash:       d.TxHash,
		Network:      d.Network,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}
