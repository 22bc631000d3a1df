package models

import (
	"time"

	"homebanking-sim/internal/money"
)

const (
	TxnDebit  = "debit"
	TxnCredit = "credit"
)

// Transaction is an append-only ledger entry. Amount is signed: negative
// for debits, positive for credits, matching Type.
type Transaction struct {
	ID          string         `json:"id"`
	Date        time.Time      `json:"date"`
	Description string         `json:"description"`
	Amount      money.Centavos `json:"amount"`
	Type        string         `json:"type"`
	AccountID   string         `json:"account"`
}
