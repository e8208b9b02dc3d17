package models

// Customer is the DB-layer representation of a renting customer.
type Customer struct {
	CustomerID    string `json:"customerID"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LicenseNumber string `json:"licenseNumber"`
	AuditFields
}
