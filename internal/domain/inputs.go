package domain

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/feral-file/ff-donate/internal/types"
)

// InsertCampaign is the payload for creating a campaign
type InsertCampaign struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Goal               float64 `json:"goal"`
	BeneficiaryAddress string  `json:"beneficiaryAddress"`
	CreatorAddress     string  `json:"creatorAddress"`
	ImageURL           string  `json:"imageUrl,omitempty"`
	Network            Network `json:"network"`
}

// Validate checks the payload against the campaign constraints
func (in InsertCampaign) Validate() error {
	v := &validator{}
	v.length("title", in.Title, CAMPAIGN_TITLE_MIN_LENGTH, CAMPAIGN_TITLE_MAX_LENGTH)
	v.length("description", in.Description, CAMPAIGN_DESCRIPTION_MIN_LENGTH, CAMPAIGN_DESCRIPTION_MAX_LENGTH)
	v.positive("goal", in.Goal)
	v.address("beneficiaryAddress", in.BeneficiaryAddress)
	v.address("creatorAddress", in.CreatorAddress)
	v.imageURL("imageUrl", in.ImageURL)
	v.network("network", in.Network)
	return v.err()
}

// InsertDonation is the payload for recording a donation
type InsertDonation struct {
	CampaignID   string  `json:"campaignId"`
	DonorAddress string  `json:"donorAddress"`
	Amount       float64 `json:"amount"`
	TxHash       string  `json:"txHash"`
	Network      Network `json:"network"`
}

// Validate checks the payload against the donation constraints
func (in InsertDonation) Validate() error {
	v := &validator{}
	v.required("campaignId", in.CampaignID)
	v.address("donorAddress", in.DonorAddress)
	v.positive("amount", in.Amount)
	v.required("txHash", in.TxHash)
	v.network("network", in.Network)
	return v.err()
}

// InsertSocialPost is the payload for creating a post
type InsertSocialPost struct {
	AuthorAddress string `json:"authorAddress"`
	Content       string `json:"content"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// Validate checks the payload against the post constraints
func (in InsertSocialPost) Validate() error {
	v := &validator{}
	v.address("authorAddress", in.AuthorAddress)
	v.length("content", in.Content, POST_CONTENT_MIN_LENGTH, POST_CONTENT_MAX_LENGTH)
	v.imageURL("imageUrl", in.ImageURL)
	return v.err()
}

// InsertComment is the payload for commenting on a post
type InsertComment struct {
	PostID        string `json:"postId"`
	AuthorAddress string `json:"authorAddress"`
	Content       string `json:"content"`
}

// Validate checks the payload against the comment constraints
func (in InsertComment) Validate() error {
	v := &validator{}
	v.required("postId", in.PostID)
	v.address("authorAddress", in.AuthorAddress)
	v.length("content", in.Content, COMMENT_CONTENT_MIN_LENGTH, COMMENT_CONTENT_MAX_LENGTH)
	return v.err()
}

// InsertLike is the payload for liking or unliking a post
type InsertLike struct {
	PostID      string `json:"postId"`
	UserAddress string `json:"userAddress"`
}

// Validate checks the payload against the like constraints
func (in InsertLike) Validate() error {
	v := &validator{}
	v.required("postId", in.PostID)
	v.address("userAddress", in.UserAddress)
	return v.err()
}

// validator collects field violations in declaration order
type validator struct {
	fields []FieldError
}

func (v *validator) add(field, format string, args ...any) {
	v.fields = append(v.fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

func (v *validator) length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n < min:
		v.add(field, "must be at least %d characters", min)
	case n > max:
		v.add(field, "must be at most %d characters", max)
	}
}

func (v *validator) positive(field string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		v.add(field, "must be a positive number")
	}
}

func (v *validator) address(field, value string) {
	if value == "" {
		v.add(field, "is required")
		return
	}
	if !types.IsEthereumAddress(value) {
		v.add(field, "must be a valid wallet address")
	}
}

func (v *validator) imageURL(field, value string) {
	if value != "" && !types.IsValidURL(value) {
		v.add(field, "must be a valid URL")
	}
}

func (v *validator) network(field string, value Network) {
	if !IsValidNetwork(value) {
		v.add(field, "must be one of %s, %s", NetworkMainnet, NetworkTestnet)
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
