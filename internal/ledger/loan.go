package ledger

import (
	"fmt"
	"math"
	"time"

	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
)

type LoanRequest struct {
	Amount               money.Centavos
	Installments         int
	DestinationAccountID string
}

// CreateLoan credits the destination account with the principal and opens
// an active loan. totalToPay = amount * (1 + annualRate * installments/12),
// split into equal installments rounded to the centavo.
func (l *Ledger) CreateLoan(user string, req LoanRequest) (*models.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req.Amount <= 0 {
		return nil, errf(KindInvalidAmount, "El monto debe ser mayor a $0")
	}
	if req.Amount > l.cfg.MaxLoanAmount {
		return nil, errf(KindAmountTooLarge,
			"El monto máximo de préstamo es "+l.cfg.MaxLoanAmount.Format())
	}
	if req.Installments <= 0 {
		return nil, errf(KindInvalidAmount, "La cantidad de cuotas debe ser mayor a 0")
	}

	dst := l.account(user, req.DestinationAccountID)
	if dst == nil {
		return nil, errf(KindInvalidAccount, "Cuenta destino inválida")
	}

	totalToPay := math.Round(float64(req.Amount) * (1 + l.cfg.LoanAnnualRate*float64(req.Installments)/12))
	installment := money.Centavos(math.Round(totalToPay / float64(req.Installments)))

	now := time.Now()
	loan := &models.Loan{
		ID:                newID("LN"),
		Amount:            req.Amount,
		Installments:      req.Installments,
		InstallmentAmount: installment,
		StartDate:         now,
		Status:            models.LoanActive,
	}

	dst.Balance += req.Amount
	l.loans[user] = append(l.loans[user], loan)
	l.appendTxn(user, &models.Transaction{
		ID:          newID("TXN"),
		Date:        now,
		Description: fmt.Sprintf("Préstamo Personal a %d cuotas", req.Installments),
		Amount:      req.Amount,
		Type:        models.TxnCredit,
		AccountID:   dst.ID,
	})

	cp := *loan
	return &cp, nil
}

// PayOffLoan debits the full remaining obligation (installments ×
// installment amount, no early-payoff discount) and closes the loan.
func (l *Ledger) PayOffLoan(user, loanID, sourceAccountID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	loan := l.loan(user, loanID)
	if loan == nil {
		return errf(KindNotFound, "Préstamo no válido")
	}
	if loan.Status != models.LoanActive {
		return errf(KindNotActive, "Préstamo no válido o ya pagado")
	}

	payoff := loan.InstallmentAmount * money.Centavos(loan.Installments)

	src := l.account(user, sourceAccountID)
	if src == nil {
		return errf(KindInvalidAccount, "Cuenta de pago inválida")
	}
	if src.Balance < payoff {
		return errf(KindInsufficientFunds, "Saldo insuficiente para cancelar el préstamo")
	}

	src.Balance -= payoff
	loan.Status = models.LoanPaid
	l.appendTxn(user, &models.Transaction{
		ID:          newID("TXN"),
		Date:        time.Now(),
		Description: "Cancelación Total de Préstamo",
		Amount:      -payoff,
		Type:        models.TxnDebit,
		AccountID:   src.ID,
	})
	return nil
}

// RetractLoan reverses a loan inside the cooling-off window: the original
// principal (not the interest-bearing total) is debited back and the loan
// is terminally retracted. Day arithmetic matches the product rule that
// day 10 is still retractable: elapsed days are rounded up.
func (l *Ledger) RetractLoan(user, loanID, sourceAccountID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	loan := l.loan(user, loanID)
	if loan == nil {
		return errf(KindNotFound, "Préstamo no válido")
	}
	if loan.Status != models.LoanActive {
		return errf(KindNotActive, "Préstamo no válido")
	}

	days := int(math.Ceil(time.Since(loan.StartDate).Hours() / 24))
	if days > l.cfg.RetractWindowDays {
		return errf(KindWindowExpired,
			fmt.Sprintf("El plazo de %d días para desistir ha expirado", l.cfg.RetractWindowDays))
	}

	src := l.account(user, sourceAccountID)
	if src == nil {
		return errf(KindInvalidAccount, "Cuenta de pago inválida")
	}
	if src.Balance < loan.Amount {
		return errf(KindInsufficientFunds, "Saldo insuficiente para desistir del préstamo")
	}

	src.Balance -= loan.Amount
	loan.Status = models.LoanRetracted
	l.appendTxn(user, &models.Transaction{
		ID:          newID("TXN"),
		Date:        time.Now(),
		Description: "Desistimiento de Préstamo (Revocación)",
		Amount:      -loan.Amount,
		Type:        models.TxnDebit,
		AccountID:   src.ID,
	})
	return nil
}

// ActiveLoans returns value copies of the user's active loans.
func (l *Ledger) ActiveLoans(user string) []models.Loan {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.Loan
	for _, ln := range l.loans[user] {
		if ln.Status == models.LoanActive {
			out = append(out, *ln)
		}
	}
	return out
}

// loan looks up a user's loan by ID. Caller must hold mu.
func (l *Ledger) loan(user, id string) *models.Loan {
	for _, ln := range l.loans[user] {
		if ln.ID == id {
			return ln
		}
	}
	return nil
}
