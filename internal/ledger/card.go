package ledger

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"homebanking-sim/internal/models"
)

// GenerateCard issues a virtual card linked to one of the user's accounts.
// An account can hold at most one card; the instrument is randomly
// generated Visa-style (leading 4).
func (l *Ledger) GenerateCard(user, linkedAccountID string) (*models.VirtualCard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc := l.account(user, linkedAccountID)
	if acc == nil {
		return nil, errf(KindInvalidAccount, "Cuenta inválida")
	}
	for _, c := range l.virtualCards[user] {
		if c.LinkedAccount == linkedAccountID {
			return nil, errf(KindAlreadyHasCard, "Esta cuenta ya posee una tarjeta virtual activa.")
		}
	}

	number := "4" + randomDigits(15)
	now := time.Now()
	card := &models.VirtualCard{
		ID:            newID("VCARD"),
		Number:        number,
		DisplayNumber: "**** **** **** " + number[len(number)-4:],
		FullNumber:    groupDigits(number),
		CVV:           randomDigits(3),
		ExpiryDate:    fmt.Sprintf("%02d/%s", 1+randomInt(12), now.AddDate(3, 0, 0).Format("06")),
		LinkedAccount: linkedAccountID,
		CreatedDate:   now,
		Status:        models.CardActive,
	}
	l.virtualCards[user] = append(l.virtualCards[user], card)

	cp := *card
	return &cp, nil
}

// DeleteCard removes the card entirely. Unlike deposits and loans there is
// no terminal status; a revoked instrument leaves no trace.
func (l *Ledger) DeleteCard(user, cardID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cards := l.virtualCards[user]
	for i, c := range cards {
		if c.ID == cardID {
			l.virtualCards[user] = append(cards[:i], cards[i+1:]...)
			return nil
		}
	}
	return errf(KindNotFound, "Tarjeta no encontrada")
}

// VirtualCards returns value copies of the user's virtual cards.
func (l *Ledger) VirtualCards(user string) []models.VirtualCard {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.VirtualCard, 0, len(l.virtualCards[user]))
	for _, c := range l.virtualCards[user] {
		out = append(out, *c)
	}
	return out
}

func randomDigits(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	var sb strings.Builder
	for _, v := range b {
		sb.WriteByte('0' + v%10)
	}
	return sb.String()
}

// randomInt returns a value in [0, n).
func randomInt(n int) int {
	b := make([]byte, 1)
	rand.Read(b)
	return int(b[0]) % n
}

// groupDigits formats a card number in blocks of four.
func groupDigits(number string) string {
	var parts []string
	for i := 0; i < len(number); i += 4 {
		end := i + 4
		if end > len(number) {
			end = len(number)
		}
		parts = append(parts, number[i:end])
	}
	return strings.Join(parts, " ")
}
