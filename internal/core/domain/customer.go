package domain

// Customer represents a renting customer. Customers have no state machine;
// they are linked to rentals by reference only.
type Customer struct {
	CustomerID    string `json:"customerID"` // Primary Key (UUID)
	Name          string `json:"name"`
	Email         string `json:"email"` // Optional
	Phone         string `json:"phone"`
	Address       string `json:"address"` // Optional
	LicenseNumber string `json:"licenseNumber"`
	AuditFields
}

// CustomerSummary is the subset of customer fields joined onto rentals for display.
type CustomerSummary struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
