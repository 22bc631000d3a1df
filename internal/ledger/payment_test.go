package ledger

import (
	"testing"

	"homebanking-sim/internal/models"
	"homebanking-sim/internal/money"
)

func TestPayServiceDebitsAndIssuesReceipt(t *testing.T) {
	l := newTestLedger(t, 20000, 0)

	receipt, err := l.PayService(testUser, "SRV001", money.FromFloat(8500), "ACC001")
	if err != nil {
		t.Fatal(err)
	}

	if got := balance(t, l, "ACC001"); got != money.FromFloat(11500) {
		t.Fatalf("balance=%d want=%d", got, money.FromFloat(11500))
	}

	txns := l.Transactions(testUser, 1)
	if txns[0].Type != models.TxnDebit || txns[0].Description != "Pago Electricidad - Edenor" {
		t.Fatalf("debit entry=%+v", txns[0])
	}

	if receipt.Service != "Electricidad" || receipt.Company != "Edenor" {
		t.Fatalf("receipt=%+v", receipt)
	}
	if receipt.Account != "**** **** **** 1234" {
		t.Fatalf("receipt must carry the masked number, got %q", receipt.Account)
	}
	if receipt.Amount != money.FromFloat(8500) {
		t.Fatalf("receipt amount=%d", receipt.Amount)
	}
}

func TestPayServiceValidation(t *testing.T) {
	l := newTestLedger(t, 1000, 0)

	_, err := l.PayService(testUser, "SRV001", money.FromFloat(100), "ACC999")
	wantKind(t, err, KindInvalidAccount)

	_, err = l.PayService(testUser, "SRV999", money.FromFloat(100), "ACC001")
	wantKind(t, err, KindInvalidService)

	_, err = l.PayService(testUser, "SRV001", 0, "ACC001")
	wantKind(t, err, KindInvalidAmount)

	_, err = l.PayService(testUser, "SRV001", money.FromFloat(5000), "ACC001")
	wantKind(t, err, KindInsufficientFunds)

	// None of the failures may have moved money.
	if got := balance(t, l, "ACC001"); got != money.FromFloat(1000) {
		t.Fatalf("balance mutated: %d", got)
	}
}
