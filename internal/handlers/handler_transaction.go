package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/SscSPs/bank_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles transaction requests and staff decisions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, maxUploadBytes int64) {
	h := newTransactionHandler(transactionService)

	customerOnly := middleware.RequireRoles(domain.RoleCustomer)
	deciders := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager, domain.RoleAccountant, domain.RoleLoanCommittee)

	txns := rg.Group("/transactions")
	{
		txns.POST("/deposit", customerOnly, limitBody(maxUploadBytes), h.requestDeposit)
		txns.POST("/withdraw", customerOnly, h.requestWithdrawal)
		txns.POST("/loan", customerOnly, h.applyForLoan)
		txns.POST("/loan-repayment", customerOnly, limitBody(maxUploadBytes), h.requestLoanRepayment)
		txns.GET("", h.listTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.POST("/:id/process", deciders, h.processTransaction)
	}
}

// requestDeposit godoc
// @Summary Request a deposit
// @Description Uploads the receipt and records a pending deposit for staff approval.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param amount formData string true "Amount, greater than zero"
// @Param reason formData string false "Reason"
// @Param receipt formData file true "Deposit receipt"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Receipt upload failed"
// @Security BearerAuth
// @Router /transactions/deposit [post]
func (h *transactionHandler) requestDeposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err, "deposit request")
		return
	}
	receipt, closeFn, err := formAttachment(c, "receipt")
	if err != nil {
		respondBindError(c, err, "deposit receipt")
		return
	}
	defer closeFn()

	userID, _ := middleware.GetUserIDFromContext(c)
	txn, err := h.transactionService.RequestDeposit(c.Request.Context(), userID, req, receipt)
	if err != nil {
		respondError(c, err, "Failed to request deposit")
		return
	}
	h.created(c, txn)
}

// requestWithdrawal godoc
// @Summary Request a withdrawal
// @Description Records a pending withdrawal. The saving balance must cover the amount.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.WithdrawalRequest true "Withdrawal"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or insufficient funds"
// @Security BearerAuth
// @Router /transactions/withdraw [post]
func (h *transactionHandler) requestWithdrawal(c *gin.Context) {
	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "withdrawal request")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	txn, err := h.transactionService.RequestWithdrawal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to request withdrawal")
		return
	}
	h.created(c, txn)
}

// applyForLoan godoc
// @Summary Apply for a loan
// @Description Records a pending loan once every eligibility rule passes. A refusal carries the failed rule in "reason".
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan application"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not eligible"
// @Security BearerAuth
// @Router /transactions/loan [post]
func (h *transactionHandler) applyForLoan(c *gin.Context) {
	var req dto.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "loan request")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	txn, err := h.transactionService.ApplyForLoan(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to apply for loan")
		return
	}
	h.created(c, txn)
}

// requestLoanRepayment godoc
// @Summary Request a loan repayment
// @Description Records a pending repayment. The receipt is optional.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param amount formData string true "Amount, at most the outstanding loan"
// @Param reason formData string false "Reason"
// @Param receipt formData file false "Payment receipt"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/loan-repayment [post]
func (h *transactionHandler) requestLoanRepayment(c *gin.Context) {
	var req dto.LoanRepaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err, "loan repayment request")
		return
	}
	receipt, closeFn, err := formAttachment(c, "receipt")
	if err != nil {
		respondBindError(c, err, "repayment receipt")
		return
	}
	defer closeFn()

	userID, _ := middleware.GetUserIDFromContext(c)
	txn, err := h.transactionService.RequestLoanRepayment(c.Request.Context(), userID, req, receipt)
	if err != nil {
		respondError(c, err, "Failed to request loan repayment")
		return
	}
	h.created(c, txn)
}

// listTransactions godoc
// @Summary List transactions
// @Description Customers only ever see their own transactions. Staff may filter by user.
// @Tags transactions
// @Produce json
// @Param type query string false "deposit, withdrawal, loan or loan repayment"
// @Param status query string false "Status filter"
// @Param userID query string false "Owner filter (staff only)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list transactions query")
		return
	}
	actor, _ := middleware.GetActorFromContext(c)
	txns, err := h.transactionService.ListTransactions(c.Request.Context(), params, actor)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	txn, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// processTransaction godoc
// @Summary Decide a transaction
// @Description Applies approve, reject, recommend-approval or recommend-rejection. Only approval moves money, and a finalized transaction cannot be decided again.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param decision body dto.ProcessTransactionRequest true "Decision"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Unknown action or balance no longer covers it"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already finalized"
// @Security BearerAuth
// @Router /transactions/{id}/process [post]
func (h *transactionHandler) processTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProcessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "process transaction request")
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)
	txn, err := h.transactionService.Decide(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to process transaction")
		return
	}
	logger.Info("Transaction decided",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("status", string(txn.Status)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) created(c *gin.Context, txn *domain.Transaction) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction requested",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
