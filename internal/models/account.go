package models

import "homebanking-sim/internal/money"

// AccountKind distinguishes the product behind an account.
type AccountKind string

const (
	AccountChecking AccountKind = "checking"
	AccountSavings  AccountKind = "savings"
	AccountCredit   AccountKind = "credit" // balance is spent amount against CreditLimit
)

type Account struct {
	ID            string         `json:"id"`
	Kind          AccountKind    `json:"kind"`
	Label         string         `json:"label"` // display name, e.g. "Cuenta Corriente"
	Number        string         `json:"number"`
	DisplayNumber string         `json:"display_number"`
	Balance       money.Centavos `json:"balance"`
	CreditLimit   money.Centavos `json:"credit_limit,omitempty"`
	Currency      string         `json:"currency"`
	CBU           string         `json:"cbu,omitempty"`
}
