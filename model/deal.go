package model

import (
	"time"
)

// DealTerms is the negotiated deal a contract is generated from. Dates
// arrive as YYYY-MM-DD strings on the wire; the contract service parses
// and validates them before anything downstream sees the value.
type DealTerms struct {
	BrandName      string        `json:"brand_name"`
	InfluencerName string        `json:"influencer_name"`
	Platform       string        `json:"platform"`
	CampaignName   string        `json:"campaign_name"`
	TotalFee       float64       `json:"total_fee"`
	Deliverables   []Deliverable `json:"deliverables"`
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
}

// Deliverable is one discrete piece of content owed under the deal.
type Deliverable struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	DueDate     string `json:"due_date"`
}

// ContractResult is the response body of the generate endpoint.
type ContractResult struct {
	ContractText string    `json:"contract_text"`
	ContractID   string    `json:"contract_id"`
	Status       string    `json:"status"`
	GeneratedAt  time.Time `json:"generated_at"`
}
