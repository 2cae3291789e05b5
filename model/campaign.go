package model

import (
	"time"
)

// Campaign is a marketing campaign created through the gateway API.
type Campaign struct {
	ID             string    `json:"id"`
	Tenant         string    `json:"tenant"`
	Name           string    `json:"campaign_name"`
	BrandName      string    `json:"brand_name"`
	TargetAudience string    `json:"target_audience,omitempty"`
	BudgetRange    string    `json:"budget_range,omitempty"`
	Timeline       string    `json:"timeline,omitempty"`
	Platforms      []string  `json:"platforms,omitempty"`
	ContentTypes   []string  `json:"content_types,omitempty"`
	Goals          []string  `json:"campaign_goals,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
