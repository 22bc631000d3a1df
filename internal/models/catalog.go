package models

import "homebanking-sim/internal/money"

// Beneficiary is a saved third-party transfer target. Read-only in the
// engine; the UI offers it as a destination shortcut.
type Beneficiary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	CBU   string `json:"cbu"`
	Alias string `json:"alias"`
}

// Service is a payable biller from the fixed catalog.
type Service struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Icon            string         `json:"icon,omitempty"`
	SuggestedAmount money.Centavos `json:"suggested_amount"`
	Company         string         `json:"company"`
	CUIT            string         `json:"cuit"`
}

// Card is a physical debit/credit card shown on the client profile.
// Reference data only; no engine mutates it.
type Card struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	Number        string         `json:"-"`
	DisplayNumber string         `json:"display_number"`
	Brand         string         `json:"brand"`
	ExpiryDate    string         `json:"expiry_date"`
	LinkedAccount string         `json:"linked_account,omitempty"`
	Limit         money.Centavos `json:"limit,omitempty"`
	Available     money.Centavos `json:"available,omitempty"`
}
