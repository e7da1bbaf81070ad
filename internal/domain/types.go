package domain

import (
	"time"

	"github.com/feral-file/ff-donate/internal/types"
)

// Network labels the deployment context a campaign or donation belongs to
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// IsValidNetwork checks if a network is valid
func IsValidNetwork(network Network) bool {
	return network == NetworkMainnet || network == NetworkTestnet
}

// Chain returns the CAIP-2 chain identifier of the network
func (n Network) Chain() Chain {
	if n == NetworkTestnet {
		return ChainEthereumSepolia
	}
	return ChainEthereumMainnet
}

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// Campaign is a fundraising effort with a goal and a running raised total
type Campaign struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Goal               float64   `json:"goal"`
	Raised             float64   `json:"raised"` // sum of all donation amounts, never written directly
	BeneficiaryAddress string    `json:"beneficiaryAddress"`
	CreatorAddress     string    `json:"creatorAddress"`
	ImageURL           *string   `json:"imageUrl"`
	Network            Network   `json:"network"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the campaign
func (c Campaign) Clone() Campaign {
	c.ImageURL = types.CloneStringPtr(c.ImageURL)
	return c
}

// Donation is an immutable record of a contribution toward a campaign
type Donation struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaignId"`
	DonorAddress string    `json:"donorAddress"`
	Amount       float64   `json:"amount"`
	TxHash       string    `json:"txHash"` // opaque, never verified
	Network      Network   `json:"network"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SocialPost is a community feed entry
type SocialPost struct {
	ID            string    `json:"id"`
	AuthorAddress string    `json:"authorAddress"`
	Content       string    `json:"content"`
	ImageURL      *string   `json:"imageUrl"`
	Likes         int       `json:"likes"` // number of active likes, never written directly
	CreatedAt     time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the post
func (p SocialPost) Clone() SocialPost {
	p.ImageURL = types.CloneStringPtr(p.ImageURL)
	return p
}

// Comment is an immutable reply to a post
type Comment struct {
	ID            string    `json:"id"`
	PostID        string    `json:"postId"`
	AuthorAddress string    `json:"authorAddress"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Like is a user's approval of a post, at most one per (post, user)
type Like struct {
	ID          string    `json:"id"`
	PostID      string    `json:"postId"`
	UserAddress string    `json:"userAddress"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LikeToggle is the outcome of toggling a like
type LikeToggle struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// PlatformStats aggregates campaign and donation activity
type PlatformStats struct {
	TotalCampaigns int     `json:"totalCampaigns"`
	TotalDonations int     `json:"totalDonations"`
	TotalRaised    float64 `json:"totalRaised"`
	ActiveDonors   int     `json:"activeDonors"`
}

// CampaignWithDonations is a campaign together with its donations, newest first
type CampaignWithDonations struct {
	Campaign
	Donations []Donation `json:"donations"`
}

// SocialPostWithDetails is a post with its comments, oldest first, and whether the viewer liked it
type SocialPostWithDetails struct {
	SocialPost
	Comments     []Comment `json:"comments"`
	UserHasLiked bool      `json:"userHasLiked"`
}
