package ledger

import (
	"time"

	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
)

type TransferKind string

const (
	TransferOwn        TransferKind = "own"
	TransferThirdParty TransferKind = "third-party"
)

// CBU the mock treats as an account that cannot receive transfers.
const rejectedDestination = "0000000000000000000000"

type TransferRequest struct {
	SourceAccountID string
	// Destination is one of the user's account IDs for own transfers, or a
	// CBU/alias for third-party ones.
	Destination string
	Amount      money.Centavos
	Description string
	Kind        TransferKind
}

type TransferReceipt struct {
	TransactionID      string         `json:"id"`
	Date               time.Time      `json:"date"`
	Amount             money.Centavos `json:"amount"`
	SourceAccount      string         `json:"source_account"`
	DestinationAccount string         `json:"destination_account"`
	Description        string         `json:"description"`
}

// Transfer debits the source account and, for own transfers, credits the
// destination. Third-party destinations are never credited: there is no
// counterparty ledger in this simulator. Validation follows a fixed order
// and the first failing check wins.
func (l *Ledger) Transfer(user string, req TransferRequest) (*TransferReceipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req.Amount < l.cfg.MinTransferAmount {
		return nil, errf(KindInvalidAmount,
			"El monto mínimo para transferir es "+l.cfg.MinTransferAmount.Format())
	}
	if req.Amount > l.cfg.PerTransferLimit {
		return nil, errf(KindLimitExceeded,
			"El monto máximo por transferencia es "+l.cfg.PerTransferLimit.Format())
	}
	if l.daily[user]+req.Amount > l.cfg.DailyTransferLimit {
		return nil, errf(KindDailyLimitExceeded,
			"Has excedido el límite diario de transferencias ("+l.cfg.DailyTransferLimit.Format()+")")
	}

	src := l.account(user, req.SourceAccountID)
	if src == nil {
		return nil, errf(KindInvalidAccount, "Cuenta origen no válida")
	}
	if src.Balance < req.Amount {
		return nil, errf(KindInsufficientFunds, "Saldo insuficiente en la cuenta origen")
	}

	var dst *models.Account
	switch req.Kind {
	case TransferOwn:
		dst = l.account(user, req.Destination)
		if dst == nil {
			return nil, errf(KindInvalidDestination, "Cuenta destino no válida")
		}
	default:
		if len(req.Destination) < 10 {
			return nil, errf(KindInvalidDestination, "CBU o Alias de destino no válido")
		}
		if req.Destination == rejectedDestination {
			return nil, errf(KindInvalidDestination,
				"La cuenta destino no existe o no puede recibir transferencias")
		}
	}

	desc := req.Description
	if desc == "" {
		if req.Kind == TransferOwn {
			desc = "Transferencia entre cuentas propias"
		} else {
			desc = "Transferencia a terceros"
		}
	}

	now := time.Now()
	src.Balance -= req.Amount
	l.daily[user] += req.Amount

	debit := &models.Transaction{
		ID:          newID("TXN"),
		Date:        now,
		Description: desc,
		Amount:      -req.Amount,
		Type:        models.TxnDebit,
		AccountID:   src.ID,
	}
	l.appendTxn(user, debit)

	destDisplay := req.Destination
	if dst != nil {
		dst.Balance += req.Amount
		l.appendTxn(user, &models.Transaction{
			ID:          newID("TXN"),
			Date:        now,
			Description: desc,
			Amount:      req.Amount,
			Type:        models.TxnCredit,
			AccountID:   dst.ID,
		})
		destDisplay = dst.DisplayNumber
	}

	return &TransferReceipt{
		TransactionID:      debit.ID,
		Date:               now,
		Amount:             req.Amount,
		SourceAccount:      src.DisplayNumber,
		DestinationAccount: destDisplay,
		Description:        desc,
	}, nil
}

// DailyTransferred reports the user's running daily transfer total.
func (l *Ledger) DailyTransferred(user string) money.Centavos {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.daily[user]
}

// ResetDailyCounter zeroes the user's daily transferred total.
func (l *Ledger) ResetDailyCounter(user string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.daily[user] = 0
}
