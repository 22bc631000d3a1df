// Package ledger implements the mock transaction engine: an in-memory
// store of accounts, transactions and banking products keyed by owning
// user, plus every operation that mutates it (transfers, fixed deposits,
// loans, bill payments, virtual cards).
//
// A single mutex serializes all reads and writes. Every mutating operation
// validates fully before touching state, so a failed call never leaves a
// partial mutation behind, and the matching Transaction entries are
// appended inside the same critical section as the balance change.
package ledger

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"

	"homebanking-sim/internal/config"
	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
	"homebanking-sim/internal/seed"
)

type Ledger struct {
	cfg *config.Config

	mu            sync.Mutex
	accounts      map[string][]*models.Account
	txns          map[string][]*models.Transaction
	deposits      map[string][]*models.FixedDeposit
	loans         map[string][]*models.Loan
	virtualCards  map[string][]*models.VirtualCard
	physicalCards map[string][]models.Card
	beneficiaries map[string][]models.Beneficiary
	services      []models.Service

	// Running per-user daily transferred counter (since-reset approximation
	// of a rolling day).
	daily map[string]money.Centavos

	// Seed balances by account ID, kept for Reset.
	seedBalances map[string]money.Centavos
}

func New(cfg *config.Config, data *seed.Data) *Ledger {
	l := &Ledger{
		cfg:           cfg,
		accounts:      make(map[string][]*models.Account),
		txns:          make(map[string][]*models.Transaction),
		deposits:      make(map[string][]*models.FixedDeposit),
		loans:         make(map[string][]*models.Loan),
		virtualCards:  make(map[string][]*models.VirtualCard),
		physicalCards: make(map[string][]models.Card),
		beneficiaries: make(map[string][]models.Beneficiary),
		daily:         make(map[string]money.Centavos),
		seedBalances:  make(map[string]money.Centavos),
	}
	if data != nil {
		for user, accts := range data.Accounts {
			l.accounts[user] = accts
			for _, a := range accts {
				l.seedBalances[a.ID] = a.Balance
			}
		}
		for user, txns := range data.Transactions {
			l.txns[user] = txns
		}
		for user, deps := range data.Deposits {
			l.deposits[user] = deps
		}
		for user, loans := range data.Loans {
			l.loans[user] = loans
		}
		for user, cards := range data.Cards {
			l.physicalCards[user] = cards
		}
		for user, bens := range data.Beneficiaries {
			l.beneficiaries[user] = bens
		}
		l.services = data.Services
	}
	return l
}

// newID returns a prefixed random identifier, e.g. "TXN3FA9C1B20D44".
func newID(prefix string) string {
	b := make([]byte, 6)
	rand.Read(b)
	return prefix + strings.ToUpper(hex.EncodeToString(b))
}

// account looks up one of the user's accounts. Caller must hold mu.
func (l *Ledger) account(user, id string) *models.Account {
	for _, a := range l.accounts[user] {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// appendTxn records a ledger entry newest-first. Caller must hold mu.
func (l *Ledger) appendTxn(user string, t *models.Transaction) {
	l.txns[user] = append([]*models.Transaction{t}, l.txns[user]...)
}

// Accounts returns value copies of the user's accounts.
func (l *Ledger) Accounts(user string) []models.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Account, 0, len(l.accounts[user]))
	for _, a := range l.accounts[user] {
		out = append(out, *a)
	}
	return out
}

// Transactions returns up to limit entries, newest first. limit <= 0 means
// everything.
func (l *Ledger) Transactions(user string, limit int) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	txns := l.txns[user]
	if limit > 0 && limit < len(txns) {
		txns = txns[:limit]
	}
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, *t)
	}
	return out
}

func (l *Ledger) Beneficiaries(user string) []models.Beneficiary {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Beneficiary, len(l.beneficiaries[user]))
	copy(out, l.beneficiaries[user])
	return out
}

func (l *Ledger) PhysicalCards(user string) []models.Card {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Card, len(l.physicalCards[user]))
	copy(out, l.physicalCards[user])
	return out
}

func (l *Ledger) Services() []models.Service {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Service, len(l.services))
	copy(out, l.services)
	return out
}

// Reset restores the user's account balances to their seed values. This is
// the test-only escape hatch of the simulator; products and the transaction
// log are left untouched.
func (l *Ledger) Reset(user string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range l.accounts[user] {
		if bal, ok := l.seedBalances[a.ID]; ok {
			a.Balance = bal
		}
	}
}
