package service

import (
	"fmt"

	"github.com/mrlhasang20/influencerFlow/model"
)

// TemplateCatalog is the static set of contract templates the editor UI
// can offer. The generator itself only renders the standard agreement;
// the catalogue documents what each template expects.
type TemplateCatalog struct {
	templates []model.ContractTemplate
}

func NewTemplateCatalog() *TemplateCatalog {
	return &TemplateCatalog{
		templates: []model.ContractTemplate{
			{
				TemplateID:  "standard_contract",
				Name:        "Standard Influencer Marketing Agreement",
				Description: "Basic influencer marketing contract for single campaign collaborations",
				RequiredFields: []string{
					"brand_name", "influencer_name", "platform", "campaign_name",
					"start_date", "end_date", "deliverables", "total_fee",
				},
				OptionalFields: []string{
					"brand_address", "influencer_address", "handle", "payment_schedule",
					"exclusivity_clause", "usage_rights_duration",
				},
				ContractType:  model.TypeStandard,
				Jurisdictions: []string{model.JurisdictionUS, model.JurisdictionIntl},
			},
			{
				TemplateID:  "exclusive_contract",
				Name:        "Exclusive Brand Partnership Agreement",
				Description: "Long-term exclusive partnership contract with comprehensive terms",
				RequiredFields: []string{
					"brand_name", "influencer_name", "platform", "exclusivity_period",
					"minimum_deliverables", "total_fee",
				},
				OptionalFields: []string{
					"performance_bonuses", "renewal_options", "territory_restrictions",
				},
				ContractType:  model.TypeExclusive,
				Jurisdictions: []string{model.JurisdictionUS, model.JurisdictionEU, model.JurisdictionIntl},
			},
			{
				TemplateID:  "nda_contract",
				Name:        "Non-Disclosure Agreement",
				Description: "Confidentiality agreement for sensitive brand collaborations",
				RequiredFields: []string{
					"brand_name", "influencer_name", "confidential_information_scope",
					"nda_duration",
				},
				OptionalFields: []string{
					"permitted_disclosures", "return_of_materials",
				},
				ContractType: model.TypeNDA,
				Jurisdictions: []string{
					model.JurisdictionUS, model.JurisdictionEU,
					model.JurisdictionUK, model.JurisdictionIntl,
				},
			},
		},
	}
}

// List returns all templates in catalogue order.
func (c *TemplateCatalog) List() []model.ContractTemplate {
	return c.templates
}

// Get returns the template with the given ID, or nil.
func (c *TemplateCatalog) Get(templateID string) *model.ContractTemplate {
	for i := range c.templates {
		if c.templates[i].TemplateID == templateID {
			return &c.templates[i]
		}
	}
	return nil
}

// Preview returns placeholder sample data for a template so the editor
// can show what a filled-in contract will need.
func (c *TemplateCatalog) Preview(templateID string) (*model.TemplatePreview, error) {
	tmpl := c.Get(templateID)
	if tmpl == nil {
		return nil, fmt.Errorf("template not found: %s", templateID)
	}

	return &model.TemplatePreview{
		TemplateID: tmpl.TemplateID,
		SampleData: map[string]any{
			"brand_name":      "[Brand Name]",
			"influencer_name": "[Influencer Name]",
			"platform":        "[Platform]",
			"campaign_name":   "[Campaign Name]",
			"start_date":      "[Start Date]",
			"end_date":        "[End Date]",
			"total_fee":       "[Total Fee]",
			"deliverables": []map[string]any{
				{
					"type":        "[Deliverable Type]",
					"description": "[Deliverable Description]",
					"quantity":    "[Quantity]",
					"due_date":    "[Due Date]",
				},
			},
		},
		RequiredFields: tmpl.RequiredFields,
		OptionalFields: tmpl.OptionalFields,
	}, nil
}
