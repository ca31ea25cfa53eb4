package policyprism

import "regexp"

// Rule extracts one structured field using ordered pattern alternatives.
// Pattern order is significant: the first alternative (in declared order)
// that matches anywhere in the text wins, not the best or longest match.
type Rule struct {
	Label    string
	Patterns []*regexp.Regexp
}

// FirstMatch scans the rule's pattern alternatives in declared order and
// returns the whitespace-normalized capture of the first one that matches.
func (r Rule) FirstMatch(text string) (string, bool) {
	for _, re := range r.Patterns {
		m := re.FindStringSubmatch(text)
		if m == nil || m[1] == "" {
			continue
		}
		return NormalizeWhitespace(m[1]), true
	}
	return "", false
}

// Field labels produced by the default rule set.
const (
	LabelPolicyNumber    = "Policy Number"
	LabelInsuredOwner    = "Insured / Owner"
	LabelEffectiveDate   = "Effective Date"
	LabelIssueDate       = "Issue Date"
	LabelCoverageAmount  = "Coverage Amount"
	LabelPremium         = "Premium"
	LabelBeneficiary     = "Beneficiary"
	LabelRiders          = "Riders"
	LabelCoverageSignals = "Coverage Signals"
	LabelDocumentTitle   = "Document Title"
)

// moneyValue matches amounts with an optional currency symbol, thousands
// separators, and an optional two-digit fractional part. The captured value
// is the matched token as-is; downstream consumers may parse it.
const moneyValue = `([$£€]?[0-9,]+(?:\.[0-9]{2})?)`

var defaultRules = []Rule{
	{
		Label: LabelPolicyNumber,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)policy number[:#\s]*([a-z0-9-]+)`),
			regexp.MustCompile(`(?i)policy no\.?[:#\s]*([a-z0-9-]+)`),
		},
	},
	{
		Label: LabelInsuredOwner,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)insured(?: person| name)?[:\s]*([a-z,'\- ]+)`),
			regexp.MustCompile(`(?i)policy owner[:\s]*([a-z,'\- ]+)`),
		},
	},
	{
		Label: LabelEffectiveDate,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)effective date[:\s]*([a-z0-9,/-]+)`),
			regexp.MustCompile(`(?i)coverage effective[:\s]*([a-z0-9,/-]+)`),
		},
	},
	{
		Label: LabelIssueDate,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)issue date[:\s]*([a-z0-9,/-]+)`),
			regexp.MustCompile(`(?i)policy date[:\s]*([a-z0-9,/-]+)`),
		},
	},
	{
		Label: LabelCoverageAmount,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)coverage amount[:\s]*` + moneyValue),
			regexp.MustCompile(`(?i)face amount[:\s]*` + moneyValue),
			regexp.MustCompile(`(?i)sum assured[:\s]*` + moneyValue),
		},
	},
	{
		Label: LabelPremium,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)premium(?: amount)?[:\s]*` + moneyValue),
			regexp.MustCompile(`(?i)modal premium[:\s]*` + moneyValue),
		},
	},
	{
		Label: LabelBeneficiary,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)primary beneficiary[:\s]*([a-z,'\- ]+)`),
			regexp.MustCompile(`(?i)beneficiary name[:\s]*([a-z,'\- ]+)`),
		},
	},
}

// DefaultRules returns the fixed, ordered rule set. Rule order determines
// field output order in the report.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}
