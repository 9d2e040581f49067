package entity

import "strings"

// Address is a saved shipping address. Exactly one address per user may be
// the default; the backend enforces that when SetDefault is called.
type Address struct {
	ID          string `json:"id"`
	UserID      string `json:"userId,omitempty"`
	FullName    string `json:"fullName"`
	MobileNo    string `json:"mobileNo"`
	Street      string `json:"street"`
	Ward        string `json:"ward"`
	District    string `json:"district"`
	City        string `json:"city"`
	Country     string `json:"country"`
	PostalCode  string `json:"postalCode,omitempty"`
	FullAddress string `json:"fullAddress"`
	IsDefault   bool   `json:"isDefault"`
}

// ComposeFullAddress joins the structured parts into the display form,
// skipping empty segments.
func (a *Address) ComposeFullAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.Ward, a.District, a.City, a.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}

	return strings.Join(parts, ", ")
}
