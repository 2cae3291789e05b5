package model

// ContractTemplate describes one entry of the template catalogue.
type ContractTemplate struct {
	TemplateID     string   `json:"template_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"required_fields"`
	OptionalFields []string `json:"optional_fields"`
	ContractType   string   `json:"contract_type"`
	Jurisdictions  []string `json:"jurisdictions"`
}

// TemplatePreview shows what a template expects before the caller fills it in.
type TemplatePreview struct {
	TemplateID     string         `json:"template_id"`
	SampleData     map[string]any `json:"sample_data"`
	RequiredFields []string       `json:"required_fields"`
	OptionalFields []string       `json:"optional_fields"`
}

// Contract types
const (
	TypeStandard  = "standard"
	TypeExclusive = "exclusive"
	TypeNDA       = "nda"
)

// Jurisdictions
const (
	JurisdictionUS   = "united_states"
	JurisdictionEU   = "european_union"
	JurisdictionUK   = "united_kingdom"
	JurisdictionIntl = "international"
)
