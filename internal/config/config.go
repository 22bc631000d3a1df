package config

import (
	"os"
	"strconv"

	"homebanking-sim/internal/money"
)

type Config struct {
	Port         string
	AllowOrigins string
	AuthSecret   string
	TokenTTLMin  int

	// Transfer engine
	MinTransferAmount  money.Centavos
	PerTransferLimit   money.Centavos
	DailyTransferLimit money.Centavos

	// Fixed-deposit engine
	MinDepositAmount  money.Centavos
	MaxActiveDeposits int

	// Loan engine
	MaxLoanAmount     money.Centavos
	LoanAnnualRate    float64
	RetractWindowDays int

	// Session service
	MaxLoginAttempts int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func atof(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// amount reads an env var expressed in pesos and converts to centavos.
func amount(key string, def float64) money.Centavos {
	return money.FromFloat(atof(key, def))
}

func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),
		AuthSecret:   getenv("AUTH_SECRET", "dev-only-secret"),
		TokenTTLMin:  atoi("TOKEN_TTL_MINUTES", 30),

		MinTransferAmount:  amount("TRANSFER_MIN_AMOUNT", 1),
		PerTransferLimit:   amount("TRANSFER_PER_LIMIT", 50000),
		DailyTransferLimit: amount("TRANSFER_DAILY_LIMIT", 100000),

		MinDepositAmount:  amount("DEPOSIT_MIN_AMOUNT", 1000),
		MaxActiveDeposits: atoi("DEPOSIT_MAX_ACTIVE", 5),

		MaxLoanAmount:     amount("LOAN_MAX_AMOUNT", 500000),
		LoanAnnualRate:    atof("LOAN_ANNUAL_RATE", 0.65),
		RetractWindowDays: atoi("LOAN_RETRACT_WINDOW_DAYS", 10),

		MaxLoginAttempts: atoi("MAX_LOGIN_ATTEMPTS", 3),
	}
}
