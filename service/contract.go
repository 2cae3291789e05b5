package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/mrlhasang20/influencerFlow/config"
	"github.com/mrlhasang20/influencerFlow/model"
)

const dateLayout = "2006-01-02"

// ValidationError is a deal-terms validation failure. Its message is
// surfaced to the caller verbatim with a 400 status; anything else the
// pipeline returns maps to a generic 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validatedDeal is the typed form of deal terms after boundary
// validation. Only valid values exist past this point; the composer
// never re-checks.
type validatedDeal struct {
	Terms    model.DealTerms
	Start    time.Time
	End      time.Time
	DueDates []time.Time
}

// ContractService validates deal terms and composes contract documents.
// Composition is a pure function of the deal terms plus the injected
// clock and ID source, so two calls with the same inputs produce
// byte-identical text.
type ContractService struct {
	cfg   *config.ContractConfig
	now   func() time.Time
	newID func() string
}

func NewContractService(cfg *config.ContractConfig) *ContractService {
	return &ContractService{
		cfg:   cfg,
		now:   time.Now,
		newID: func() string { return NewContractID(cfg.IDPrefix) },
	}
}

// Generate runs the full pipeline: validate the deal terms, then compose
// the contract text. A *ValidationError return means the input was
// rejected and no contract was produced.
func (s *ContractService) Generate(terms model.DealTerms) (*model.ContractResult, error) {
	deal, err := validateDealTerms(terms)
	if err != nil {
		return nil, err
	}

	id := s.newID()
	now := s.now()

	return &model.ContractResult{
		ContractText: s.compose(deal, id, now),
		ContractID:   id,
		Status:       model.StatusDraft,
		GeneratedAt:  now,
	}, nil
}

// validateDealTerms checks the raw deal terms and parses the dates.
// Rules are checked in a fixed order and the first violation wins.
// total_fee and campaign_name presence are deliberately not checked
// here; the contract editor form enforces them before this endpoint is
// ever called.
func validateDealTerms(terms model.DealTerms) (*validatedDeal, error) {
	if terms.BrandName == "" || terms.InfluencerName == "" || terms.Platform == "" {
		return nil, &ValidationError{Message: "Missing required fields"}
	}

	start, err := time.Parse(dateLayout, terms.StartDate)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format"}
	}
	end, err := time.Parse(dateLayout, terms.EndDate)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format"}
	}
	if end.Before(start) {
		return nil, &ValidationError{Message: "End date must be after start date"}
	}

	if len(terms.Deliverables) == 0 {
		return nil, &ValidationError{Message: "At least one deliverable is required"}
	}

	dueDates := make([]time.Time, 0, len(terms.Deliverables))
	for _, d := range terms.Deliverables {
		due, err := time.Parse(dateLayout, d.DueDate)
		if err != nil {
			return nil, &ValidationError{Message: "Invalid deliverable due date"}
		}
		// Bounds are inclusive: due dates on the campaign start or end
		// day are fine.
		if due.Before(start) || due.After(end) {
			return nil, &ValidationError{Message: "Deliverable due date must be within campaign period"}
		}
		dueDates = append(dueDates, due)
	}

	return &validatedDeal{
		Terms:    terms,
		Start:    start,
		End:      end,
		DueDates: dueDates,
	}, nil
}

// compose renders the contract document. Section order and wording are
// fixed; the only variable parts are the deal terms, the contract ID
// and the generation timestamp.
func (s *ContractService) compose(deal *validatedDeal, contractID string, now time.Time) string {
	terms := deal.Terms
	start := formatDate(deal.Start)
	end := formatDate(deal.End)
	total := s.formatAmount(terms.TotalFee)
	installment := s.formatAmount(terms.TotalFee * 0.5)

	var b strings.Builder

	b.WriteString("INFLUENCER MARKETING AGREEMENT\n\n")
	fmt.Fprintf(&b, "This Influencer Marketing Agreement (\"Agreement\") is entered into on %s by and between:\n\n", start)
	fmt.Fprintf(&b, "BRAND: %s (\"Brand\")\n", terms.BrandName)
	fmt.Fprintf(&b, "INFLUENCER: %s (\"Influencer\")\n\n", terms.InfluencerName)

	b.WriteString("CAMPAIGN DETAILS\n\n")
	fmt.Fprintf(&b, "Campaign Name: %s\n", terms.CampaignName)
	fmt.Fprintf(&b, "Platform: %s\n", terms.Platform)
	fmt.Fprintf(&b, "Campaign Period: %s - %s\n", start, end)
	fmt.Fprintf(&b, "Total Compensation: %s\n\n", total)

	b.WriteString("DELIVERABLES\n\n")
	b.WriteString("The Influencer agrees to create and publish the following content:\n\n")
	for i, d := range terms.Deliverables {
		fmt.Fprintf(&b, "%d. %s (Quantity: %d)\n", i+1, d.Type, d.Quantity)
		fmt.Fprintf(&b, "   Description: %s\n", d.Description)
		fmt.Fprintf(&b, "   Due Date: %s\n\n", formatDate(deal.DueDates[i]))
	}

	b.WriteString("COMPENSATION\n\n")
	fmt.Fprintf(&b, "Total Compensation: %s\n\n", total)
	b.WriteString("Payment Schedule:\n")
	fmt.Fprintf(&b, "- Upon contract signing: 50%% (%s)\n", installment)
	fmt.Fprintf(&b, "- Upon campaign completion: 50%% (%s)\n\n", installment)

	b.WriteString("CONTENT GUIDELINES\n\n")
	fmt.Fprintf(&b, "All content must comply with %s community guidelines and applicable "+
		"advertising regulations. Sponsored content must be clearly disclosed in accordance "+
		"with FTC guidelines (#ad or #sponsored). The Brand shall have 48 hours to review "+
		"and approve each deliverable prior to publication.\n\n", terms.Platform)

	b.WriteString("INTELLECTUAL PROPERTY\n\n")
	b.WriteString("The Influencer retains ownership of all created content. The Brand is granted " +
		"a non-exclusive, worldwide license to use, reproduce, and distribute the content for " +
		"marketing purposes for a period of six (6) months from the date of publication.\n\n")

	b.WriteString("CONFIDENTIALITY\n\n")
	b.WriteString("Both parties agree to keep the terms of this Agreement and any non-public " +
		"information exchanged during the campaign strictly confidential, except where " +
		"disclosure is required by law.\n\n")

	b.WriteString("TERMINATION\n\n")
	b.WriteString("Either party may terminate this Agreement with fourteen (14) days written " +
		"notice. In the event of termination, the Influencer shall be compensated on a " +
		"pro-rata basis for deliverables completed and approved prior to the termination " +
		"date.\n\n")

	b.WriteString("GOVERNING LAW\n\n")
	b.WriteString("This Agreement shall be governed by and construed in accordance with the laws " +
		"of the jurisdiction in which the Brand is incorporated, without regard to its " +
		"conflict of law provisions.\n\n")

	b.WriteString("SIGNATURES\n\n")
	fmt.Fprintf(&b, "BRAND: %s\n", terms.BrandName)
	b.WriteString("Signature: _________________________\n")
	fmt.Fprintf(&b, "Date: %s\n\n", start)
	fmt.Fprintf(&b, "INFLUENCER: %s\n", terms.InfluencerName)
	b.WriteString("Signature: _________________________\n")
	fmt.Fprintf(&b, "Date: %s\n\n", start)

	b.WriteString("---\n")
	fmt.Fprintf(&b, "Contract ID: %s\n", contractID)
	fmt.Fprintf(&b, "Generated: %s\n", now.Format(time.RFC3339))

	return b.String()
}

// formatDate renders a human-facing date like "August 1, 2024".
func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// formatAmount renders a fee as currency with thousands grouping,
// keeping only the decimals the input actually carries: 3500 -> $3,500,
// 1749.5 -> $1,749.5.
func (s *ContractService) formatAmount(v float64) string {
	return s.cfg.CurrencySymbol + groupThousands(strconv.FormatFloat(v, 'f', -1, 64))
}

func groupThousands(num string) string {
	sign := ""
	if strings.HasPrefix(num, "-") {
		sign, num = "-", num[1:]
	}

	intPart, frac := num, ""
	if i := strings.IndexByte(num, '.'); i >= 0 {
		intPart, frac = num[:i], num[i:]
	}

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	return sign + b.String() + frac
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewContractID returns a display identifier like "CTR-M0QJ3K2V7XF2P":
// millisecond timestamp in base 36 plus a short random suffix,
// upper-cased. Uniqueness is best-effort; the ID is advisory, not a
// primary key.
func NewContractID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}

	return strings.ToUpper(prefix + "-" + ts + string(suffix))
}
