package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mrlhasang20/influencerFlow/middleware"
	"github.com/mrlhasang20/influencerFlow/model"
	"github.com/mrlhasang20/influencerFlow/service"
)

type CampaignHandler struct {
	store *service.CampaignStore
}

func NewCampaignHandler() *CampaignHandler {
	return &CampaignHandler{
		store: service.GetCampaignStore(),
	}
}

type createCampaignRequest struct {
	Name           string   `json:"campaign_name" binding:"required"`
	BrandName      string   `json:"brand_name" binding:"required"`
	TargetAudience string   `json:"target_audience"`
	BudgetRange    string   `json:"budget_range"`
	Timeline       string   `json:"timeline"`
	Platforms      []string `json:"platforms"`
	ContentTypes   []string `json:"content_types"`
	Goals          []string `json:"campaign_goals"`
}

// Create registers a new campaign
func (h *CampaignHandler) Create(c *gin.Context) {
	var req createCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	campaign := &model.Campaign{
		ID:             uuid.New().String(),
		Tenant:         middleware.GetTenant(c),
		Name:           req.Name,
		BrandName:      req.BrandName,
		TargetAudience: req.TargetAudience,
		BudgetRange:    req.BudgetRange,
		Timeline:       req.Timeline,
		Platforms:      req.Platforms,
		ContentTypes:   req.ContentTypes,
		Goals:          req.Goals,
		CreatedAt:      time.Now(),
	}
	h.store.Save(campaign)

	c.JSON(http.StatusOK, campaign)
}

// List returns the tenant's campaigns
func (h *CampaignHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	campaigns := h.store.GetByTenant(tenant)
	if campaigns == nil {
		campaigns = []*model.Campaign{}
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// Get returns a single campaign
func (h *CampaignHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	campaign := h.store.Get(id)
	if campaign == nil || campaign.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}

	c.JSON(http.StatusOK, campaign)
}
