package ledger

import (
	"testing"

	"homebanking-sim/internal/money"
)

func TestResetRestoresSeedBalances(t *testing.T) {
	l := newTestLedger(t, 5000, 2000)

	if _, err := l.Transfer(testUser, TransferRequest{
		SourceAccountID: "ACC001", Destination: "ACC002",
		Amount: money.FromFloat(1000), Kind: TransferOwn,
	}); err != nil {
		t.Fatal(err)
	}

	l.Reset(testUser)

	if got := balance(t, l, "ACC001"); got != money.FromFloat(5000) {
		t.Fatalf("ACC001=%d want seed value", got)
	}
	if got := balance(t, l, "ACC002"); got != money.FromFloat(2000) {
		t.Fatalf("ACC002=%d want seed value", got)
	}

	// Reset recharges funds but keeps the history.
	if got := len(l.Transactions(testUser, 0)); got != 2 {
		t.Fatalf("transactions=%d want=2", got)
	}
}

func TestTransactionsNewestFirstWithLimit(t *testing.T) {
	l := newTestLedger(t, 100000, 0)

	for i := 0; i < 3; i++ {
		if _, err := l.Transfer(testUser, TransferRequest{
			SourceAccountID: "ACC001", Destination: "0170009876543210987654",
			Amount: money.FromFloat(float64(100 * (i + 1))), Kind: TransferThirdParty,
		}); err != nil {
			t.Fatal(err)
		}
	}

	txns := l.Transactions(testUser, 2)
	if len(txns) != 2 {
		t.Fatalf("limit ignored: %d", len(txns))
	}
	if txns[0].Amount != money.FromFloat(-300) || txns[1].Amount != money.FromFloat(-200) {
		t.Fatalf("not newest-first: %v %v", txns[0].Amount, txns[1].Amount)
	}
}

func TestBalancesStayNonNegative(t *testing.T) {
	l := newTestLedger(t, 1000, 500)

	// Push every engine past the available funds; nothing may overdraw.
	l.Transfer(testUser, TransferRequest{
		SourceAccountID: "ACC001", Destination: "ACC002",
		Amount: money.FromFloat(2000), Kind: TransferOwn,
	})
	l.CreateDeposit(testUser, DepositRequest{
		SourceAccountID: "ACC002", Amount: money.FromFloat(1000), Term: 30,
	})
	l.PayService(testUser, "SRV001", money.FromFloat(9999), "ACC001")

	for _, a := range l.Accounts(testUser) {
		if a.Balance < 0 {
			t.Fatalf("account %s went negative: %d", a.ID, a.Balance)
		}
	}
}
