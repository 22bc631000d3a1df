// Domain errors for the ledger engines. Every operation fails with a typed
// *Error carrying a machine-readable kind plus the Spanish display message;
// the HTTP layer maps kinds to status codes and never parses the message.
package ledger

// Error kinds, one namespace across the engines.
const (
	KindInvalidAmount      = "INVALID_AMOUNT"
	KindLimitExceeded      = "LIMIT_EXCEEDED"
	KindDailyLimitExceeded = "DAILY_LIMIT_EXCEEDED"
	KindInvalidAccount     = "INVALID_ACCOUNT"
	KindInsufficientFunds  = "INSUFFICIENT_FUNDS"
	KindInvalidDestination = "INVALID_DESTINATION"
	KindMinimumAmount      = "MINIMUM_AMOUNT"
	KindMaxDepositsReached = "MAX_DEPOSITS_REACHED"
	KindInvalidTerm        = "INVALID_TERM"
	KindAmountTooLarge     = "AMOUNT_TOO_LARGE"
	KindWindowExpired      = "WINDOW_EXPIRED"
	KindInvalidService     = "INVALID_SERVICE"
	KindAlreadyHasCard     = "ALREADY_HAS_CARD"
	KindNotFound           = "NOT_FOUND"
	KindNotActive          = "NOT_ACTIVE"
)

type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return e.Kind + ": " + e.Message
}

func errf(kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}
