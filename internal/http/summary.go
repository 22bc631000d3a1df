package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
)

type AccountSpending struct {
	AccountID  string         `json:"account"`
	Amount     money.Centavos `json:"amount"`
	Percentage float64        `json:"percentage"`
}

type CreditUtilization struct {
	AccountID  string         `json:"account"`
	Used       money.Centavos `json:"used"`
	Limit      money.Centavos `json:"limit"`
	Percentage float64        `json:"percentage"`
	Warning    bool           `json:"warning"`
}

type SummaryResponse struct {
	Income            money.Centavos      `json:"income"`
	Spent             money.Centavos      `json:"spent"`
	Net               money.Centavos      `json:"net"`
	LargestDebit      *models.Transaction `json:"largest_debit,omitempty"`
	AccountSpending   []AccountSpending   `json:"account_spending"`
	CreditUtilization []CreditUtilization `json:"credit_utilization"`
	TransactionCount  int                 `json:"transaction_count"`
}

// GET /v1/summary
//
// Aggregates the last 30 days of ledger activity into the dashboard view
// the UI shows next to the account list.
func (s *Server) summary(c *gin.Context) {
	user := currentUser(c)
	since := time.Now().AddDate(0, 0, -30)

	txns := s.ledger.Transactions(user, 0)
	accounts := s.ledger.Accounts(user)

	res := SummaryResponse{
		AccountSpending:   []AccountSpending{},
		CreditUtilization: []CreditUtilization{},
	}

	perAccount := make(map[string]money.Centavos)
	var largest *models.Transaction
	for i := range txns {
		t := txns[i]
		if t.Date.Before(since) {
			continue
		}
		res.TransactionCount++
		if t.Type == models.TxnCredit {
			res.Income += t.Amount
			continue
		}
		spent := -t.Amount
		res.Spent += spent
		perAccount[t.AccountID] += spent
		if largest == nil || spent > -largest.Amount {
			largest = &txns[i]
		}
	}
	res.Net = res.Income - res.Spent
	res.LargestDebit = largest

	for acc, amt := range perAccount {
		pct := 0.0
		if res.Spent > 0 {
			pct = amt.Float() / res.Spent.Float() * 100
		}
		res.AccountSpending = append(res.AccountSpending, AccountSpending{
			AccountID:  acc,
			Amount:     amt,
			Percentage: pct,
		})
	}

	for _, acc := range accounts {
		if acc.Kind != models.AccountCredit || acc.CreditLimit <= 0 {
			continue
		}
		pct := acc.Balance.Float() / acc.CreditLimit.Float() * 100
		res.CreditUtilization = append(res.CreditUtilization, CreditUtilization{
			AccountID:  acc.ID,
			Used:       acc.Balance,
			Limit:      acc.CreditLimit,
			Percentage: pct,
			Warning:    pct > 60,
		})
	}

	ok(c, gin.H{"summary": res})
}
