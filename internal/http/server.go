// Package http exposes the ledger engines and session service over a gin
// API. Handlers translate engine results into the discriminated envelope
// the UI consumes: {"success":true, ...} or
// {"success":false, "error": KIND, "message": localized string}.
package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"homebanking-sim/internal/config"
	"homebanking-sim/internal/ledger"
	"homebanking-sim/internal/session"
)

type Server struct {
	cfg      *config.Config
	ledger   *ledger.Ledger
	sessions *session.Service
}

// Token validated but the user vanished from the identity store.
var errUnknownUser = &session.Error{
	Kind:    session.KindSessionExpired,
	Message: "Tu sesión ha expirado. Por favor, inicia sesión nuevamente.",
}

func NewServer(cfg *config.Config, l *ledger.Ledger, sess *session.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(logging())

	s := &Server{cfg: cfg, ledger: l, sessions: sess}

	r.POST("/v1/auth/login", s.login)
	r.POST("/v1/auth/logout", s.logout)
	r.GET("/v1/auth/session", s.validateSession)

	authorized := r.Group("/v1")
	authorized.Use(AuthMiddleware(sess))
	{
		authorized.GET("/client", s.clientData)
		authorized.GET("/accounts", s.listAccounts)
		authorized.GET("/transactions", s.listTransactions)
		authorized.GET("/beneficiaries", s.listBeneficiaries)
		authorized.GET("/summary", s.summary)

		authorized.POST("/transfers", s.transfer)
		authorized.POST("/transfers/reset-daily", s.resetDaily)

		authorized.GET("/deposits", s.listDeposits)
		authorized.POST("/deposits", s.createDeposit)
		authorized.GET("/deposits/simulate", s.simulateDeposit)
		authorized.POST("/deposits/:id/cancel", s.cancelDeposit)

		authorized.GET("/loans", s.listLoans)
		authorized.POST("/loans", s.createLoan)
		authorized.POST("/loans/:id/payoff", s.payOffLoan)
		authorized.POST("/loans/:id/retract", s.retractLoan)

		authorized.GET("/services", s.listServices)
		authorized.POST("/payments", s.payService)

		authorized.GET("/cards", s.listCards)
		authorized.POST("/cards", s.generateCard)
		authorized.DELETE("/cards/:id", s.deleteCard)

		authorized.POST("/reset", s.reset)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

// ok writes the success envelope, merging payload fields into it.
func ok(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(200, body)
}

// fail maps a domain error to its HTTP status and failure envelope.
func fail(c *gin.Context, err error) {
	var lerr *ledger.Error
	if errors.As(err, &lerr) {
		c.JSON(statusFor(lerr.Kind), gin.H{"success": false, "error": lerr.Kind, "message": lerr.Message})
		return
	}
	var serr *session.Error
	if errors.As(err, &serr) {
		status := 401
		if serr.Kind == session.KindAccountLocked {
			status = 403
		}
		c.JSON(status, gin.H{"success": false, "error": serr.Kind, "message": serr.Message})
		return
	}
	log.Printf("internal error: %v", err)
	c.JSON(500, gin.H{"success": false, "error": "INTERNAL", "message": "Ocurrió un error inesperado"})
}

func statusFor(kind string) int {
	switch kind {
	case ledger.KindNotFound, ledger.KindInvalidService:
		return 404
	case ledger.KindInsufficientFunds, ledger.KindNotActive, ledger.KindAlreadyHasCard,
		ledger.KindLimitExceeded, ledger.KindDailyLimitExceeded,
		ledger.KindMaxDepositsReached, ledger.KindWindowExpired:
		return 409
	default:
		return 400
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "INVALID_REQUEST", "message": err.Error()})
}

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
