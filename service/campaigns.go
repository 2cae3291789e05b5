package service

import (
	"sort"
	"sync"
	"time"

	"github.com/mrlhasang20/influencerFlow/config"
	"github.com/mrlhasang20/influencerFlow/model"
)

// CampaignStore is an in-memory store for campaigns created through the
// gateway API.
type CampaignStore struct {
	campaigns    map[string]*model.Campaign
	mu           sync.RWMutex
	maxCampaigns int
}

var (
	globalCampaignStore *CampaignStore
	campaignStoreOnce   sync.Once
)

// InitCampaignStore initializes the global campaign store with configuration
func InitCampaignStore(cfg *config.StoreConfig) {
	campaignStoreOnce.Do(func() {
		maxCampaigns := cfg.MaxCampaigns
		if maxCampaigns < 0 {
			maxCampaigns = 0
		}
		globalCampaignStore = &CampaignStore{
			campaigns:    make(map[string]*model.Campaign),
			maxCampaigns: maxCampaigns,
		}
	})
}

// GetCampaignStore returns the global campaign store
func GetCampaignStore() *CampaignStore {
	if globalCampaignStore == nil {
		globalCampaignStore = &CampaignStore{
			campaigns:    make(map[string]*model.Campaign),
			maxCampaigns: 100,
		}
	}
	return globalCampaignStore
}

func (s *CampaignStore) Save(campaign *model.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign.UpdatedAt = time.Now()
	s.campaigns[campaign.ID] = campaign

	if s.maxCampaigns > 0 && len(s.campaigns) > s.maxCampaigns {
		s.evictOldest()
	}
}

func (s *CampaignStore) Get(id string) *model.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.campaigns[id]
}

// GetByTenant returns a tenant's campaigns, newest first.
func (s *CampaignStore) GetByTenant(tenant string) []*model.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Campaign
	for _, c := range s.campaigns {
		if c.Tenant == tenant {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *CampaignStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.campaigns, id)
}

// Count returns the number of campaigns in the store
func (s *CampaignStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.campaigns)
}

// evictOldest drops the oldest campaigns beyond the cap.
// Must be called with lock held
func (s *CampaignStore) evictOldest() {
	campaigns := make([]*model.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		campaigns = append(campaigns, c)
	}
	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.Before(campaigns[j].CreatedAt)
	})

	for i := 0; i < len(campaigns)-s.maxCampaigns; i++ {
		delete(s.campaigns, campaigns[i].ID)
	}
}
