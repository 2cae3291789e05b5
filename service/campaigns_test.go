package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/mrlhasang20/influencerFlow/model"
)

func newTestCampaignStore(maxCampaigns int) *CampaignStore {
	return &CampaignStore{
		campaigns:    make(map[string]*model.Campaign),
		maxCampaigns: maxCampaigns,
	}
}

func TestCampaignStoreSaveAndGet(t *testing.T) {
	store := newTestCampaignStore(100)

	store.Save(&model.Campaign{
		ID:        "camp-1",
		Tenant:    "tenant1",
		Name:      "Summer Fitness Challenge",
		BrandName: "FitLife Co.",
		CreatedAt: time.Now(),
	})

	c := store.Get("camp-1")
	if c == nil {
		t.Fatal("Expected to retrieve campaign")
	}
	if c.Name != "Summer Fitness Challenge" {
		t.Errorf("Expected campaign name, got %s", c.Name)
	}

	if store.Get("missing") != nil {
		t.Error("Expected nil for unknown campaign")
	}
}

func TestCampaignStoreGetByTenant(t *testing.T) {
	store := newTestCampaignStore(100)

	base := time.Now()
	store.Save(&model.Campaign{ID: "a", Tenant: "tenant1", CreatedAt: base})
	store.Save(&model.Campaign{ID: "b", Tenant: "tenant1", CreatedAt: base.Add(time.Second)})
	store.Save(&model.Campaign{ID: "c", Tenant: "tenant2", CreatedAt: base})

	campaigns := store.GetByTenant("tenant1")
	if len(campaigns) != 2 {
		t.Fatalf("Expected 2 campaigns, got %d", len(campaigns))
	}
	if campaigns[0].ID != "b" {
		t.Errorf("Expected newest campaign first, got %s", campaigns[0].ID)
	}
}

func TestCampaignStoreEviction(t *testing.T) {
	store := newTestCampaignStore(2)

	base := time.Now()
	for i := 0; i < 4; i++ {
		store.Save(&model.Campaign{
			ID:        fmt.Sprintf("camp-%d", i),
			Tenant:    "tenant1",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	if store.Count() != 2 {
		t.Errorf("Expected 2 campaigns after eviction, got %d", store.Count())
	}
	if store.Get("camp-0") != nil {
		t.Error("Expected oldest campaign evicted")
	}
	if store.Get("camp-3") == nil {
		t.Error("Expected newest campaign to survive")
	}
}

func TestCampaignStoreDelete(t *testing.T) {
	store := newTestCampaignStore(100)

	store.Save(&model.Campaign{ID: "gone", CreatedAt: time.Now()})
	store.Delete("gone")

	if store.Get("gone") != nil {
		t.Error("Expected campaign to be deleted")
	}
}
