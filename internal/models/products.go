package models

import (
	"time"

	"homebanking-sim/internal/money"
)

const (
	DepositActive    = "active"
	DepositCancelled = "cancelled"

	LoanActive    = "active"
	LoanPaid      = "paid"
	LoanRetracted = "retracted"

	CardActive = "active"
)

// FixedDeposit records which account funded it so cancellation can refund
// the same account.
type FixedDeposit struct {
	ID                string         `json:"id"`
	SourceAccountID   string         `json:"source_account"`
	Amount            money.Centavos `json:"amount"`
	Term              int            `json:"term"` // days
	Rate              int            `json:"rate"` // TNA, percent
	StartDate         time.Time      `json:"start_date"`
	MaturityDate      time.Time      `json:"maturity_date"`
	EstimatedInterest money.Centavos `json:"estimated_interest"`
	Status            string         `json:"status"`
}

type Loan struct {
	ID                string         `json:"id"`
	Amount            money.Centavos `json:"amount"`
	Installments      int            `json:"installments"`
	InstallmentAmount money.Centavos `json:"installment_amount"`
	StartDate         time.Time      `json:"start_date"`
	Status            string         `json:"status"`
}

// VirtualCard is a per-account virtual payment instrument. At most one
// exists per account at any time.
type VirtualCard struct {
	ID            string    `json:"id"`
	Number        string    `json:"-"`
	DisplayNumber string    `json:"display_number"`
	FullNumber    string    `json:"full_number"`
	CVV           string    `json:"cvv"`
	ExpiryDate    string    `json:"expiry_date"`
	LinkedAccount string    `json:"linked_account"`
	CreatedDate   time.Time `json:"created_date"`
	Status        string    `json:"status"`
}
