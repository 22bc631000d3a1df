package ledger

import (
	"fmt"
	"math"
	"time"

	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
)

// Term (days) → TNA (percent) table for fixed deposits. Terms outside the
// table are rejected rather than producing an undefined rate.
var depositRates = map[int]int{
	30:  35,
	60:  38,
	90:  42,
	180: 45,
	360: 50,
}

type DepositRequest struct {
	SourceAccountID string
	Amount          money.Centavos
	Term            int
}

// CalculateInterest is the pure interest preview:
// interest = amount * TNA * term / (365 * 100), rounded to the centavo.
func CalculateInterest(amount money.Centavos, term int) (money.Centavos, error) {
	rate, ok := depositRates[term]
	if !ok {
		return 0, errf(KindInvalidTerm, fmt.Sprintf("El plazo de %d días no está disponible", term))
	}
	interest := math.Round(float64(amount) * float64(rate) * float64(term) / (365 * 100))
	return money.Centavos(interest), nil
}

// DepositRate exposes the TNA for a catalog term.
func DepositRate(term int) (int, bool) {
	rate, ok := depositRates[term]
	return rate, ok
}

// CreateDeposit debits the source account and opens an active fixed
// deposit. The funding account is recorded on the deposit so cancellation
// can refund it.
func (l *Ledger) CreateDeposit(user string, req DepositRequest) (*models.FixedDeposit, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req.Amount < l.cfg.MinDepositAmount {
		return nil, errf(KindMinimumAmount,
			"El monto mínimo para un plazo fijo es "+l.cfg.MinDepositAmount.Format())
	}
	rate, ok := depositRates[req.Term]
	if !ok {
		return nil, errf(KindInvalidTerm, fmt.Sprintf("El plazo de %d días no está disponible", req.Term))
	}

	src := l.account(user, req.SourceAccountID)
	if src == nil {
		return nil, errf(KindInvalidAccount, "Cuenta origen no válida")
	}
	if src.Balance < req.Amount {
		return nil, errf(KindInsufficientFunds, "Saldo insuficiente en la cuenta origen")
	}

	active := 0
	for _, d := range l.deposits[user] {
		if d.Status == models.DepositActive {
			active++
		}
	}
	if active >= l.cfg.MaxActiveDeposits {
		return nil, errf(KindMaxDepositsReached,
			fmt.Sprintf("No puedes tener más de %d plazos fijos activos", l.cfg.MaxActiveDeposits))
	}

	interest, _ := CalculateInterest(req.Amount, req.Term)
	now := time.Now()
	dep := &models.FixedDeposit{
		ID:                newID("FD"),
		SourceAccountID:   src.ID,
		Amount:            req.Amount,
		Term:              req.Term,
		Rate:              rate,
		StartDate:         now,
		MaturityDate:      now.AddDate(0, 0, req.Term),
		EstimatedInterest: interest,
		Status:            models.DepositActive,
	}

	src.Balance -= req.Amount
	l.deposits[user] = append(l.deposits[user], dep)
	l.appendTxn(user, &models.Transaction{
		ID:          newID("TXN"),
		Date:        now,
		Description: fmt.Sprintf("Plazo fijo %d días", req.Term),
		Amount:      -req.Amount,
		Type:        models.TxnDebit,
		AccountID:   src.ID,
	})

	cp := *dep
	return &cp, nil
}

// CancelDeposit marks an active deposit cancelled and refunds the principal
// (no accrued interest) to the account that funded it.
func (l *Ledger) CancelDeposit(user, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var dep *models.FixedDeposit
	for _, d := range l.deposits[user] {
		if d.ID == id {
			dep = d
			break
		}
	}
	if dep == nil {
		return errf(KindNotFound, "Plazo fijo no encontrado")
	}
	if dep.Status != models.DepositActive {
		return errf(KindNotActive, "El plazo fijo no está activo")
	}

	target := l.account(user, dep.SourceAccountID)
	if target == nil {
		return errf(KindInvalidAccount, "Cuenta de acreditación no válida")
	}

	target.Balance += dep.Amount
	dep.Status = models.DepositCancelled
	l.appendTxn(user, &models.Transaction{
		ID:          newID("TXN"),
		Date:        time.Now(),
		Description: fmt.Sprintf("Cancelación Plazo Fijo %d días", dep.Term),
		Amount:      dep.Amount,
		Type:        models.TxnCredit,
		AccountID:   target.ID,
	})
	return nil
}

// ActiveDeposits returns value copies of the user's active deposits.
func (l *Ledger) ActiveDeposits(user string) []models.FixedDeposit {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.FixedDeposit
	for _, d := range l.deposits[user] {
		if d.Status == models.DepositActive {
			out = append(out, *d)
		}
	}
	return out
}
