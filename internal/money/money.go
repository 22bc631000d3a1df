// Package money defines the minor-unit amount type used across the ledger.
// Amounts are stored as int64 centavos to avoid float drift; the JSON
// representation stays a plain 2-decimal number so API payloads read as ARS.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Centavos is a signed ARS amount in minor units (1 ARS = 100 centavos).
type Centavos int64

// FromFloat converts an ARS amount to centavos, rounding half away from zero.
func FromFloat(v float64) Centavos {
	return Centavos(math.Round(v * 100))
}

// Float returns the amount as ARS.
func (c Centavos) Float() float64 {
	return float64(c) / 100
}

func (c Centavos) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Float(), 'f', 2, 64)), nil
}

// maxAmount bounds parsed amounts so the centavo conversion stays inside
// int64 range.
const maxAmount = float64(math.MaxInt64) / 100

func (c *Centavos) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", string(data), err)
	}
	if v >= maxAmount || v <= -maxAmount {
		return fmt.Errorf("amount %q out of range", string(data))
	}
	*c = FromFloat(v)
	return nil
}

// Format renders the amount the way the UI shows pesos: "$125.450,75"
// (es-AR grouping, comma decimals). Used for the localized error messages.
func (c Centavos) Format() string {
	neg := c < 0
	if neg {
		c = -c
	}
	whole := int64(c) / 100
	frac := int64(c) % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s,%02d", sign, b.String(), frac)
}
