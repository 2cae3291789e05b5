package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestContractStatusConstants(t *testing.T) {
	if StatusDraft != "draft" {
		t.Errorf("Expected 'draft', got '%s'", StatusDraft)
	}
	if StatusFinal != "final" {
		t.Errorf("Expected 'final', got '%s'", StatusFinal)
	}
}

func TestDealTermsUnmarshal(t *testing.T) {
	payload := `{
		"brand_name": "EcoStyle Apparel",
		"influencer_name": "Jamie Lee",
		"platform": "Instagram",
		"campaign_name": "Sustainable Summer Collection",
		"total_fee": 3500,
		"deliverables": [
			{"type": "Instagram Reel", "description": "Product showcase", "quantity": 2, "due_date": "2024-08-10"}
		],
		"start_date": "2024-08-01",
		"end_date": "2024-08-31"
	}`

	var terms DealTerms
	if err := json.Unmarshal([]byte(payload), &terms); err != nil {
		t.Fatalf("Failed to unmarshal deal terms: %v", err)
	}

	if terms.BrandName != "EcoStyle Apparel" {
		t.Errorf("Expected brand 'EcoStyle Apparel', got '%s'", terms.BrandName)
	}
	if terms.TotalFee != 3500 {
		t.Errorf("Expected total_fee 3500, got %v", terms.TotalFee)
	}
	if len(terms.Deliverables) != 1 {
		t.Fatalf("Expected 1 deliverable, got %d", len(terms.Deliverables))
	}
	if terms.Deliverables[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", terms.Deliverables[0].Quantity)
	}
	if terms.Deliverables[0].DueDate != "2024-08-10" {
		t.Errorf("Expected due_date 2024-08-10, got %s", terms.Deliverables[0].DueDate)
	}
}

func TestContractResultMarshal(t *testing.T) {
	generatedAt := time.Date(2024, 8, 1, 12, 30, 0, 0, time.UTC)
	result := ContractResult{
		ContractText: "INFLUENCER MARKETING AGREEMENT",
		ContractID:   "CTR-TEST123",
		Status:       StatusDraft,
		GeneratedAt:  generatedAt,
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal result: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal result: %v", err)
	}

	if decoded["status"] != "draft" {
		t.Errorf("Expected status draft, got %v", decoded["status"])
	}
	// time.Time marshals as RFC 3339, which is what the wire contract wants
	if decoded["generated_at"] != "2024-08-01T12:30:00Z" {
		t.Errorf("Expected ISO-8601 generated_at, got %v", decoded["generated_at"])
	}
}
