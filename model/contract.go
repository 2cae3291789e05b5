package model

import (
	"time"
)

// Contract is a generated contract draft kept for the editor UI
type Contract struct {
	ID             string    `json:"id"`
	Tenant         string    `json:"tenant"`
	BrandName      string    `json:"brand_name"`
	InfluencerName string    `json:"influencer_name"`
	CampaignName   string    `json:"campaign_name"`
	Platform       string    `json:"platform"`
	TotalFee       float64   `json:"total_fee"`
	Status         string    `json:"status"` // draft, final
	ContractText   string    `json:"contract_text,omitempty"`
	DocumentURL    string    `json:"document_url,omitempty"`
	GeneratedAt    time.Time `json:"generated_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Contract lifecycle states. Generation always emits a draft; finalization
// happens elsewhere (e-signature flow).
const (
	StatusDraft = "draft"
	StatusFinal = "final"
)
