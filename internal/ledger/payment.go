package ledger

import (
	"fmt"
	"time"

	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
)

// PaymentReceipt is what the UI renders (e.g. into a PDF) after paying a
// bill. Account carries the masked display number, never the full one.
type PaymentReceipt struct {
	ID      string         `json:"id"`
	Service string         `json:"service"`
	Company string         `json:"company"`
	Amount  money.Centavos `json:"amount"`
	Date    time.Time      `json:"date"`
	Account string         `json:"account"`
}

// PayService debits the account for a biller from the fixed catalog.
func (l *Ledger) PayService(user, serviceID string, amt money.Centavos, accountID string) (*PaymentReceipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc := l.account(user, accountID)
	if acc == nil {
		return nil, errf(KindInvalidAccount, "Cuenta inválida")
	}

	var svc *models.Service
	for i := range l.services {
		if l.services[i].ID == serviceID {
			svc = &l.services[i]
			break
		}
	}
	if svc == nil {
		return nil, errf(KindInvalidService, "Servicio no encontrado")
	}

	if amt <= 0 {
		return nil, errf(KindInvalidAmount, "El monto debe ser mayor a $0")
	}
	if acc.Balance < amt {
		return nil, errf(KindInsufficientFunds, "Saldo insuficiente")
	}

	now := time.Now()
	acc.Balance -= amt
	l.appendTxn(user, &models.Transaction{
		ID:          newID("TXN"),
		Date:        now,
		Description: fmt.Sprintf("Pago %s - %s", svc.Name, svc.Company),
		Amount:      -amt,
		Type:        models.TxnDebit,
		AccountID:   acc.ID,
	})

	return &PaymentReceipt{
		ID:      newID("REC"),
		Service: svc.Name,
		Company: svc.Company,
		Amount:  amt,
		Date:    now,
		Account: acc.DisplayNumber,
	}, nil
}
