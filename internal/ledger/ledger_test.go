// Shared fixtures for the engine tests. Everything runs in-memory against
// a hand-built dataset so each test controls its balances exactly.
package ledger

import (
	"errors"
	"testing"

	"homebanking-sim/internal/config"
	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
	"homebanking-sim/internal/seed"
)

const testUser = "demo"

func testConfig() *config.Config {
	return &config.Config{
		AuthSecret:  "test-secret",
		TokenTTLMin: 30,

		MinTransferAmount:  money.FromFloat(1),
		PerTransferLimit:   money.FromFloat(50000),
		DailyTransferLimit: money.FromFloat(100000),

		MinDepositAmount:  money.FromFloat(1000),
		MaxActiveDeposits: 5,

		MaxLoanAmount:     money.FromFloat(500000),
		LoanAnnualRate:    0.65,
		RetractWindowDays: 10,

		MaxLoginAttempts: 3,
	}
}

// newTestLedger builds a ledger for one user with a checking account
// (ACC001), a savings account (ACC002) at the given peso balances, and a
// credit-card account (ACC003), plus the biller catalog entry the payment
// tests use.
func newTestLedger(t *testing.T, checking, savings float64) *Ledger {
	t.Helper()
	return New(testConfig(), &seed.Data{
		Accounts: map[string][]*models.Account{
			testUser: {
				{
					ID: "ACC001", Kind: models.AccountChecking, Label: "Cuenta Corriente",
					Number: "1234567890123456", DisplayNumber: "**** **** **** 1234",
					Balance: money.FromFloat(checking), Currency: "ARS",
					CBU: "0170001234567890123456",
				},
				{
					ID: "ACC002", Kind: models.AccountSavings, Label: "Caja de Ahorro",
					Number: "5678901234567890", DisplayNumber: "**** **** **** 5678",
					Balance: money.FromFloat(savings), Currency: "ARS",
					CBU: "0170005678901234567890",
				},
				{
					ID: "ACC003", Kind: models.AccountCredit, Label: "Tarjeta de Crédito",
					Number: "9012345678901234", DisplayNumber: "**** **** **** 9012",
					Balance: money.FromFloat(45000), CreditLimit: money.FromFloat(150000),
					Currency: "ARS",
				},
			},
		},
		Services: []models.Service{
			{ID: "SRV001", Name: "Electricidad", SuggestedAmount: money.FromFloat(8500),
				Company: "Edenor", CUIT: "30-11223344-5"},
		},
	})
}

// wantKind asserts err is a *Error with the given kind.
func wantKind(t *testing.T, err error, kind string) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error kind %s, got nil", kind)
	}
	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("want *ledger.Error, got %T: %v", err, err)
	}
	if lerr.Kind != kind {
		t.Fatalf("error kind=%s want=%s (message %q)", lerr.Kind, kind, lerr.Message)
	}
}

// balance reads one account's current balance.
func balance(t *testing.T, l *Ledger, id string) money.Centavos {
	t.Helper()
	for _, a := range l.Accounts(testUser) {
		if a.ID == id {
			return a.Balance
		}
	}
	t.Fatalf("account %s not found", id)
	return 0
}
