// Package seed rehydrates the process-lifetime dataset every engine works
// against. The dataset ships embedded in the binary and is checked against
// a JSON schema before anything is built from it, so a bad edit fails at
// startup instead of surfacing as a broken ledger later.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/crypto/bcrypt"

	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
)

//go:embed seed.json
var seedJSON []byte

//go:embed seed.schema.json
var schemaJSON []byte

// Data is the provisioned state handed to the ledger and session service.
type Data struct {
	Users         []*models.User
	Accounts      map[string][]*models.Account
	Transactions  map[string][]*models.Transaction
	Deposits      map[string][]*models.FixedDeposit
	Loans         map[string][]*models.Loan
	Cards         map[string][]models.Card
	Beneficiaries map[string][]models.Beneficiary
	Services      []models.Service
}

type rawUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Locked   bool   `json:"locked"`
}

type rawTransaction struct {
	ID          string  `json:"id"`
	DaysAgo     int     `json:"days_ago"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Account     string  `json:"account"`
}

type rawDeposit struct {
	ID                string  `json:"id"`
	SourceAccount     string  `json:"source_account"`
	Amount            float64 `json:"amount"`
	Term              int     `json:"term"`
	Rate              int     `json:"rate"`
	StartDaysAgo      int     `json:"start_days_ago"`
	EstimatedInterest float64 `json:"estimated_interest"`
	Status            string  `json:"status"`
}

type rawLoan struct {
	ID                string  `json:"id"`
	Amount            float64 `json:"amount"`
	Installments      int     `json:"installments"`
	InstallmentAmount float64 `json:"installment_amount"`
	StartDaysAgo      int     `json:"start_days_ago"`
	Status            string  `json:"status"`
}

type rawSeed struct {
	Users         []rawUser                       `json:"users"`
	Accounts      map[string][]*models.Account    `json:"accounts"`
	Transactions  map[string][]rawTransaction     `json:"transactions"`
	FixedDeposits map[string][]rawDeposit         `json:"fixed_deposits"`
	Loans         map[string][]rawLoan            `json:"loans"`
	Cards         map[string][]models.Card        `json:"cards"`
	Beneficiaries map[string][]models.Beneficiary `json:"beneficiaries"`
	Services      []models.Service                `json:"services"`
}

// Load validates the embedded dataset and builds the runtime entities.
// Seed passwords are stored in the clear (it is a demo dataset) and hashed
// here, at provisioning time.
func Load() (*Data, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("seed schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(seedJSON))
	if err != nil {
		return nil, fmt.Errorf("seed validation: %w", err)
	}
	if !res.Valid() {
		return nil, fmt.Errorf("seed dataset invalid: %v", res.Errors())
	}

	var raw rawSeed
	if err := json.Unmarshal(seedJSON, &raw); err != nil {
		return nil, fmt.Errorf("seed decode: %w", err)
	}

	now := time.Now()
	data := &Data{
		Accounts:      raw.Accounts,
		Transactions:  make(map[string][]*models.Transaction, len(raw.Transactions)),
		Deposits:      make(map[string][]*models.FixedDeposit, len(raw.FixedDeposits)),
		Loans:         make(map[string][]*models.Loan, len(raw.Loans)),
		Cards:         raw.Cards,
		Beneficiaries: raw.Beneficiaries,
		Services:      raw.Services,
	}

	for _, u := range raw.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		data.Users = append(data.Users, &models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Name:         u.Name,
			DNI:          u.DNI,
			Email:        u.Email,
			Phone:        u.Phone,
			Address:      u.Address,
			Locked:       u.Locked,
		})
	}

	for user, txns := range raw.Transactions {
		for _, t := range txns {
			data.Transactions[user] = append(data.Transactions[user], &models.Transaction{
				ID:          t.ID,
				Date:        now.AddDate(0, 0, -t.DaysAgo),
				Description: t.Description,
				Amount:      money.FromFloat(t.Amount),
				Type:        t.Type,
				AccountID:   t.Account,
			})
		}
	}

	for user, deps := range raw.FixedDeposits {
		for _, d := range deps {
			start := now.AddDate(0, 0, -d.StartDaysAgo)
			data.Deposits[user] = append(data.Deposits[user], &models.FixedDeposit{
				ID:                d.ID,
				SourceAccountID:   d.SourceAccount,
				Amount:            money.FromFloat(d.Amount),
				Term:              d.Term,
				Rate:              d.Rate,
				StartDate:         start,
				MaturityDate:      start.AddDate(0, 0, d.Term),
				EstimatedInterest: money.FromFloat(d.EstimatedInterest),
				Status:            d.Status,
			})
		}
	}

	for user, loans := range raw.Loans {
		for _, l := range loans {
			data.Loans[user] = append(data.Loans[user], &models.Loan{
				ID:                l.ID,
				Amount:            money.FromFloat(l.Amount),
				Installments:      l.Installments,
				InstallmentAmount: money.FromFloat(l.InstallmentAmount),
				StartDate:         now.AddDate(0, 0, -l.StartDaysAgo),
				Status:            l.Status,
			})
		}
	}

	return data, nil
}
