package category

import (
	"regexp"
	"strings"
)

// Rule maps a description pattern to a category. Patterns are matched against
// the lower-cased description.
type Rule struct {
	Category Category
	Pattern  *regexp.Regexp
}

// defaultRules is matched in order; the first hit wins, so earlier entries
// shadow later ones. The order must stay stable or categorization drifts
// between releases.
var defaultRules = []Rule{
	{SoftwareSaaS, regexp.MustCompile(`slack|google|gsuite|openai|chatgpt|claude|windsurf|make\.com|shopify|mailgun|capture one|artiphoria|msft|microsoft|amazon web services|aws`)},
	{Shipping, regexp.MustCompile(`swyftcourier|ups|fedex|canada post|cpc |shippo|purolator`)},
	{OfficeSupplies, regexp.MustCompile(`staples|office|indigo|juke box print`)},
	{FoodBeverage, regexp.MustCompile(`dean.*milk|dairy|coffee|cafe|restaurant|food`)},
	{UtilitiesTelecom, regexp.MustCompile(`telus|rogers|bell|shaw|internet|phone`)},
	{Transportation, regexp.MustCompile(`paybyphone|parking|gas|fuel|uber|lyft|transit`)},
	{ProfessionalServices, regexp.MustCompile(`indeed|transunion|biomedical|nova `)},
	{InventorySupplies, regexp.MustCompile(`costco|shimano|cycles lambert|luxottica`)},
	{Storage, regexp.MustCompile(`storguard|storage`)},
	{Entertainment, regexp.MustCompile(`spotify|netflix|disney`)},
	{FeesFines, regexp.MustCompile(`bylaw|fine|fee`)},
	{PaymentReceived, regexp.MustCompile(`payment.*thank|deposit|transfer in`)},
}

// Classifier assigns a best-guess category to a transaction description.
// It is stateless after construction and safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier. Extra rules run ahead of the built-in
// table, so user-defined patterns can shadow the defaults.
func NewClassifier(extra []Rule) *Classifier {
	rules := make([]Rule, 0, len(extra)+len(defaultRules))
	rules = append(rules, extra...)
	rules = append(rules, defaultRules...)
	return &Classifier{rules: rules}
}

// Classify returns the category for a description, or Other if no pattern
// matches.
func (c *Classifier) Classify(description string) Category {
	if description == "" {
		return Other
	}
	desc := strings.ToLower(description)
	for _, r := range c.rules {
		if r.Pattern.MatchString(desc) {
			return r.Category
		}
	}
	return Other
}
