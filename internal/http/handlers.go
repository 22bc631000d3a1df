package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"homebanking-sim/internal/ledger"
	"homebanking-sim/internal/money"
)

// POST /v1/auth/login
func (s *Server) login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	res, err := s.sessions.Login(input.Username, input.Password)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"token": res.Token, "user": res.User})
}

// POST /v1/auth/logout
func (s *Server) logout(c *gin.Context) {
	s.sessions.Logout()
	ok(c, nil)
}

// GET /v1/auth/session
func (s *Server) validateSession(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	username, err := s.sessions.ValidateSession(token)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"username": username})
}

// GET /v1/client
func (s *Server) clientData(c *gin.Context) {
	user := currentUser(c)
	profile, found := s.sessions.Profile(user)
	if !found {
		fail(c, errUnknownUser)
		return
	}
	ok(c, gin.H{"data": gin.H{
		"personal_info": profile,
		"accounts":      s.ledger.Accounts(user),
		"cards":         s.ledger.PhysicalCards(user),
	}})
}

// GET /v1/accounts
func (s *Server) listAccounts(c *gin.Context) {
	ok(c, gin.H{"accounts": s.ledger.Accounts(currentUser(c))})
}

// GET /v1/transactions?limit=10
func (s *Server) listTransactions(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	ok(c, gin.H{"transactions": s.ledger.Transactions(currentUser(c), limit)})
}

// GET /v1/beneficiaries
func (s *Server) listBeneficiaries(c *gin.Context) {
	ok(c, gin.H{"beneficiaries": s.ledger.Beneficiaries(currentUser(c))})
}

// POST /v1/transfers
func (s *Server) transfer(c *gin.Context) {
	var input struct {
		SourceAccountID string         `json:"source_account" binding:"required"`
		Destination     string         `json:"destination" binding:"required"`
		Amount          money.Centavos `json:"amount"`
		Description     string         `json:"description"`
		Kind            string         `json:"kind" binding:"required,oneof=own third-party"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	receipt, err := s.ledger.Transfer(currentUser(c), ledger.TransferRequest{
		SourceAccountID: input.SourceAccountID,
		Destination:     input.Destination,
		Amount:          input.Amount,
		Description:     input.Description,
		Kind:            ledger.TransferKind(input.Kind),
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"transaction": receipt, "message": "Transferencia realizada exitosamente"})
}

// POST /v1/transfers/reset-daily
func (s *Server) resetDaily(c *gin.Context) {
	s.ledger.ResetDailyCounter(currentUser(c))
	ok(c, nil)
}

// GET /v1/deposits
func (s *Server) listDeposits(c *gin.Context) {
	ok(c, gin.H{"deposits": s.ledger.ActiveDeposits(currentUser(c))})
}

// POST /v1/deposits
func (s *Server) createDeposit(c *gin.Context) {
	var input struct {
		SourceAccountID string         `json:"source_account" binding:"required"`
		Amount          money.Centavos `json:"amount"`
		Term            int            `json:"term"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	dep, err := s.ledger.CreateDeposit(currentUser(c), ledger.DepositRequest{
		SourceAccountID: input.SourceAccountID,
		Amount:          input.Amount,
		Term:            input.Term,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"deposit": dep, "message": "Plazo fijo creado exitosamente"})
}

// GET /v1/deposits/simulate?amount=50000&term=90
func (s *Server) simulateDeposit(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		badRequest(c, err)
		return
	}
	term, err := strconv.Atoi(c.Query("term"))
	if err != nil {
		badRequest(c, err)
		return
	}

	interest, cerr := ledger.CalculateInterest(money.FromFloat(amount), term)
	if cerr != nil {
		fail(c, cerr)
		return
	}
	rate, _ := ledger.DepositRate(term)
	ok(c, gin.H{
		"amount":             money.FromFloat(amount),
		"term":               term,
		"rate":               rate,
		"estimated_interest": interest,
	})
}

// POST /v1/deposits/:id/cancel
func (s *Server) cancelDeposit(c *gin.Context) {
	if err := s.ledger.CancelDeposit(currentUser(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Plazo fijo cancelado exitosamente. El dinero se acreditó en tu cuenta."})
}

// GET /v1/loans
func (s *Server) listLoans(c *gin.Context) {
	ok(c, gin.H{"loans": s.ledger.ActiveLoans(currentUser(c))})
}

// POST /v1/loans
func (s *Server) createLoan(c *gin.Context) {
	var input struct {
		Amount               money.Centavos `json:"amount"`
		Installments         int            `json:"installments"`
		DestinationAccountID string         `json:"destination_account" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	loan, err := s.ledger.CreateLoan(currentUser(c), ledger.LoanRequest{
		Amount:               input.Amount,
		Installments:         input.Installments,
		DestinationAccountID: input.DestinationAccountID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"loan": loan, "message": "Préstamo acreditado exitosamente"})
}

// POST /v1/loans/:id/payoff
func (s *Server) payOffLoan(c *gin.Context) {
	var input struct {
		SourceAccountID string `json:"source_account" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.ledger.PayOffLoan(currentUser(c), c.Param("id"), input.SourceAccountID); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Préstamo cancelado exitosamente"})
}

// POST /v1/loans/:id/retract
func (s *Server) retractLoan(c *gin.Context) {
	var input struct {
		SourceAccountID string `json:"source_account" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.ledger.RetractLoan(currentUser(c), c.Param("id"), input.SourceAccountID); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Has desistido del préstamo exitosamente"})
}

// GET /v1/services
func (s *Server) listServices(c *gin.Context) {
	ok(c, gin.H{"services": s.ledger.Services()})
}

// POST /v1/payments
func (s *Server) payService(c *gin.Context) {
	var input struct {
		ServiceID string         `json:"service_id" binding:"required"`
		Amount    money.Centavos `json:"amount"`
		AccountID string         `json:"account" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	receipt, err := s.ledger.PayService(currentUser(c), input.ServiceID, input.Amount, input.AccountID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"receipt": receipt, "message": "Pago de " + receipt.Service + " realizado exitosamente"})
}

// GET /v1/cards
func (s *Server) listCards(c *gin.Context) {
	ok(c, gin.H{"cards": s.ledger.VirtualCards(currentUser(c))})
}

// POST /v1/cards
func (s *Server) generateCard(c *gin.Context) {
	var input struct {
		LinkedAccountID string `json:"linked_account" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	card, err := s.ledger.GenerateCard(currentUser(c), input.LinkedAccountID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"card": card, "message": "Tarjeta virtual generada exitosamente"})
}

// DELETE /v1/cards/:id
func (s *Server) deleteCard(c *gin.Context) {
	if err := s.ledger.DeleteCard(currentUser(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Tarjeta virtual eliminada exitosamente"})
}

// POST /v1/reset
func (s *Server) reset(c *gin.Context) {
	s.ledger.Reset(currentUser(c))
	ok(c, gin.H{"message": "Simulador restablecido: Fondos recargados"})
}
