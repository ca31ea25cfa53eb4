package policyprism

import (
	"regexp"
	"strings"
)

// Carrier describes a supported insurance carrier portal.
type Carrier struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Domains []string `json:"domains"`
	Prompts CarrierPrompts
}

// CarrierPrompts seed the summarisation backend with carrier-specific
// guidance for each report section.
type CarrierPrompts struct {
	Highlights string
	Exclusions string
	Actions    string
}

// CarrierUnknown is the fallback carrier ID when no registry entry matches.
const CarrierUnknown = "unknown"

var carrierRegistry = []Carrier{
	{
		ID:      "prudential",
		Label:   "Prudential",
		Domains: []string{"prudential.com"},
		Prompts: CarrierPrompts{
			Highlights: "Identify riders, supplemental coverage, and accelerated benefit clauses.",
			Exclusions: "List notable exclusions, waiting periods, and suicide clauses.",
			Actions:    "Recommend outstanding tasks for claim adjudication and underwriting review.",
		},
	},
	{
		ID:      "metlife",
		Label:   "MetLife",
		Domains: []string{"metlife.com"},
		Prompts: CarrierPrompts{
			Highlights: "Summarise life, disability, and accident riders in plain language.",
			Exclusions: "Point out exclusions for pre-existing conditions and contestability windows.",
			Actions:    "Suggest follow-ups for clinical documentation and beneficiary confirmation.",
		},
	},
	{
		ID:      "aia",
		Label:   "AIA",
		Domains: []string{"aia.com"},
		Prompts: CarrierPrompts{
			Highlights: "Surface wellness benefits, bundled riders, and multi-policy perks.",
			Exclusions: "Note geographical or residency exclusions and health disclosures.",
			Actions:    "Advise on required agency approvals and customer outreach.",
		},
	},
	{
		ID:      "manulife",
		Label:   "Manulife",
		Domains: []string{"manulife.com"},
		Prompts: CarrierPrompts{
			Highlights: "Capture savings components, investment riders, and payout structures.",
			Exclusions: "List market risk warnings and policy lapses triggers.",
			Actions:    "Flag premium verification steps and tax documentation needs.",
		},
	},
	{
		ID:      "sunlife",
		Label:   "Sun Life",
		Domains: []string{"sunlife.com"},
		Prompts: CarrierPrompts{
			Highlights: "Outline health rider bundles and early payout options.",
			Exclusions: "Highlight claim waiting periods and occupational restrictions.",
			Actions:    "Prompt validation of beneficiary distributions and wellness compliance.",
		},
	},
}

// Carriers returns the fixed carrier registry.
func Carriers() []Carrier {
	carriers := make([]Carrier, len(carrierRegistry))
	copy(carriers, carrierRegistry)
	return carriers
}

// FindCarrierByHostname returns the registry entry whose domain list
// matches the hostname by substring containment, or nil.
func FindCarrierByHostname(hostname string) *Carrier {
	if hostname == "" {
		return nil
	}
	for i := range carrierRegistry {
		for _, domain := range carrierRegistry[i].Domains {
			if strings.Contains(hostname, domain) {
				carrier := carrierRegistry[i]
				return &carrier
			}
		}
	}
	return nil
}

// FindCarrierByID returns the registry entry for the carrier ID.
func FindCarrierByID(id string) (Carrier, bool) {
	for _, carrier := range carrierRegistry {
		if carrier.ID == id {
			return carrier, true
		}
	}
	return Carrier{}, false
}

// carrierHostPatterns is the looser hostname matching used when scraping
// arbitrary portal pages, where subdomains and country TLDs vary.
var carrierHostPatterns = []struct {
	id      string
	pattern *regexp.Regexp
}{
	{"prudential", regexp.MustCompile(`(?i)prudential`)},
	{"metlife", regexp.MustCompile(`(?i)metlife`)},
	{"aia", regexp.MustCompile(`(?i)\.aia\.`)},
	{"manulife", regexp.MustCompile(`(?i)manulife`)},
	{"sunlife", regexp.MustCompile(`(?i)sunlife`)},
}

// DetectCarrierID matches a hostname against carrier host patterns and
// returns the carrier ID, or CarrierUnknown.
func DetectCarrierID(hostname string) string {
	if hostname == "" {
		return CarrierUnknown
	}
	for _, entry := range carrierHostPatterns {
		if entry.pattern.MatchString(hostname) {
			return entry.id
		}
	}
	return CarrierUnknown
}

// CarrierLabel returns the display label for a carrier ID, falling back to
// the ID itself for unregistered carriers.
func CarrierLabel(id string) string {
	for _, carrier := range carrierRegistry {
		if carrier.ID == id {
			return carrier.Label
		}
	}
	return id
}

// NormalizeCarrierIDs filters out IDs not present in the registry,
// preserving input order.
func NormalizeCarrierIDs(ids []string) []string {
	registered := make(map[string]bool, len(carrierRegistry))
	for _, carrier := range carrierRegistry {
		registered[carrier.ID] = true
	}
	var out []string
	for _, id := range ids {
		if registered[id] {
			out = append(out, id)
		}
	}
	return out
}

// CarrierIDs returns the IDs of all registered carriers in registry order.
func CarrierIDs() []string {
	ids := make([]string, 0, len(carrierRegistry))
	for _, carrier := range carrierRegistry {
		ids = append(ids, carrier.ID)
	}
	return ids
}
