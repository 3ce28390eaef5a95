package category

// Category is a closed-set label summarizing the nature of a transaction.
type Category string

const (
	SoftwareSaaS         Category = "Software & SaaS"
	Shipping             Category = "Shipping"
	OfficeSupplies       Category = "Office & Supplies"
	FoodBeverage         Category = "Food & Beverage"
	UtilitiesTelecom     Category = "Utilities & Telecom"
	Transportation       Category = "Transportation"
	ProfessionalServices Category = "Professional Services"
	InventorySupplies    Category = "Inventory & Supplies"
	Storage              Category = "Storage"
	Entertainment        Category = "Entertainment"
	FeesFines            Category = "Fees & Fines"
	PaymentReceived      Category = "Payment Received"
	Housing              Category = "Housing"
	Insurance            Category = "Insurance"
	Healthcare           Category = "Healthcare"
	Other                Category = "Other"
)

// All returns every category, in display order. The set is closed: manual
// overrides pick from this list.
func All() []Category {
	return []Category{
		SoftwareSaaS, Shipping, OfficeSupplies, FoodBeverage,
		UtilitiesTelecom, Transportation, ProfessionalServices,
		InventorySupplies, Storage, Entertainment, FeesFines,
		PaymentReceived, Housing, Insurance, Healthcare, Other,
	}
}

// Valid reports whether c is one of the known categories.
func Valid(c Category) bool {
	for _, known := range All() {
		if c == known {
			return true
		}
	}
	return false
}
