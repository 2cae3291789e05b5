package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrlhasang20/influencerFlow/middleware"
	"github.com/mrlhasang20/influencerFlow/model"
	"github.com/mrlhasang20/influencerFlow/pkg/logger"
	"github.com/mrlhasang20/influencerFlow/service"
)

type ContractHandler struct {
	contracts *service.ContractService
	templates *service.TemplateCatalog
	store     *service.ContractStore
	archive   *service.ArchiveService // nil when archiving is disabled
}

func NewContractHandler(contractSvc *service.ContractService, templates *service.TemplateCatalog, archive *service.ArchiveService) *ContractHandler {
	return &ContractHandler{
		contracts: contractSvc,
		templates: templates,
		store:     service.GetContractStore(),
		archive:   archive,
	}
}

type generateRequest struct {
	DealTerms model.DealTerms `json:"deal_terms"`
}

// Generate composes a contract draft from negotiated deal terms
func (h *ContractHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(c.Request.Context(), "failed to parse contract request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate contract"})
		return
	}

	result, err := h.contracts.Generate(req.DealTerms)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		logger.Error(c.Request.Context(), "contract generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate contract"})
		return
	}

	// Keep the draft around for the contract editor
	tenant := middleware.GetTenant(c)
	h.store.Save(&model.Contract{
		ID:             result.ContractID,
		Tenant:         tenant,
		BrandName:      req.DealTerms.BrandName,
		InfluencerName: req.DealTerms.InfluencerName,
		CampaignName:   req.DealTerms.CampaignName,
		Platform:       req.DealTerms.Platform,
		TotalFee:       req.DealTerms.TotalFee,
		Status:         result.Status,
		ContractText:   result.ContractText,
		GeneratedAt:    result.GeneratedAt,
		CreatedAt:      time.Now(),
	})

	if h.archive != nil {
		url, err := h.archive.StoreContract(c.Request.Context(), tenant, result.ContractID, result.ContractText)
		if err != nil {
			// Archiving is best-effort; the contract was still generated
			logger.Warn(c.Request.Context(), "failed to archive contract",
				"contract_id", result.ContractID, "error", err)
		} else {
			h.store.SetDocumentURL(result.ContractID, url)
		}
	}

	c.JSON(http.StatusOK, result)
}

// List returns the tenant's generated contracts without the full text
func (h *ContractHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	contracts := h.store.GetByTenant(tenant)

	result := make([]gin.H, len(contracts))
	for i, contract := range contracts {
		result[i] = gin.H{
			"id":              contract.ID,
			"brand_name":      contract.BrandName,
			"influencer_name": contract.InfluencerName,
			"campaign_name":   contract.CampaignName,
			"platform":        contract.Platform,
			"total_fee":       contract.TotalFee,
			"status":          contract.Status,
			"document_url":    contract.DocumentURL,
			"generated_at":    contract.GeneratedAt.Format(time.RFC3339),
			"created_at":      contract.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{"contracts": result})
}

// Get returns a single contract including its full text
func (h *ContractHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	contract := h.store.Get(id)
	if contract == nil || contract.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// Delete removes a contract draft and its archived document
func (h *ContractHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	contract := h.store.Get(id)
	if contract == nil || contract.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	h.store.Delete(id)

	if h.archive != nil {
		if err := h.archive.DeleteContract(c.Request.Context(), tenant, id); err != nil {
			logger.Warn(c.Request.Context(), "failed to delete archived contract",
				"contract_id", id, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contract deleted"})
}

type complianceRequest struct {
	ContractText string `json:"contract_text" binding:"required"`
	ContractType string `json:"contract_type"`
	Jurisdiction string `json:"jurisdiction"`
}

// CheckCompliance scans contract text for required clauses
func (h *ContractHandler) CheckCompliance(c *gin.Context) {
	var req complianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.ContractType == "" {
		req.ContractType = model.TypeStandard
	}
	if req.Jurisdiction == "" {
		req.Jurisdiction = model.JurisdictionUS
	}

	report := service.CheckCompliance(req.ContractText, req.ContractType, req.Jurisdiction)
	c.JSON(http.StatusOK, report)
}

// ListTemplates returns the contract template catalogue
func (h *ContractHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.templates.List()})
}

// PreviewTemplate returns sample data for one template
func (h *ContractHandler) PreviewTemplate(c *gin.Context) {
	preview, err := h.templates.Preview(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, preview)
}
