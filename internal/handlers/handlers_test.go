package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/SscSPs/bank_backoffice_app/internal/handlers"
	"github.com/SscSPs/bank_backoffice_app/internal/platform/config"
	"github.com/SscSPs/bank_backoffice_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret  = "test-secret-key-that-is-long-enough"
	customerUserID = "cust-user-1"
	staffUserID    = "staff-user-1"
)

type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	customers    *MockCustomerService
	interest     *MockInterestService
	transactions *MockTransactionService
	users        *MockUserService
	tokens       *MockTokenService
	audit        *MockAuditService
	now          time.Time
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	suite.customers = new(MockCustomerService)
	suite.interest = new(MockInterestService)
	suite.transactions = new(MockTransactionService)
	suite.users = new(MockUserService)
	suite.tokens = new(MockTokenService)
	suite.audit = new(MockAuditService)
	suite.router = suite.newRouter(handlers.RouteDeps{})
}

func (suite *HandlerTestSuite) newRouter(deps handlers.RouteDeps) *gin.Engine {
	cfg := &config.Config{
		JWTSecret:      testJWTSecret,
		IsProduction:   true,
		MaxUploadBytes: 64 << 10,
	}
	container := &portssvc.ServiceContainer{
		Customer:    suite.customers,
		Transaction: suite.transactions,
		Interest:    suite.interest,
		User:        suite.users,
		Token:       suite.tokens,
		Audit:       suite.audit,
	}
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, container, deps)
	return r
}

// token signs a JWT the way the token service does.
func (suite *HandlerTestSuite) token(userID string, role domain.Role) string {
	signed, _, err := utils.GenerateJWT(userID, string(role), testJWTSecret, time.Hour, "bank-test", time.Now())
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) do(method, path string, body io.Reader, contentType string, role domain.Role, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token(userID, role))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) doJSON(method, path string, payload any, role domain.Role, userID string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(raw)
	}
	return suite.do(method, path, body, "application/json", role, userID)
}

// multipartBody builds a form with the given fields and, when fileName is set, a "receipt" file.
func (suite *HandlerTestSuite) multipartBody(fields map[string]string, fileField, fileName string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		suite.Require().NoError(mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		suite.Require().NoError(err)
		_, err = fw.Write(content)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(mw.Close())
	return &buf, mw.FormDataContentType()
}

func (suite *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var res handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func (suite *HandlerTestSuite) customer() *domain.Customer {
	return &domain.Customer{
		CustomerID:    "c1",
		UserID:        customerUserID,
		FirstName:     "Almaz",
		Email:         "almaz@example.com",
		SavingBalance: decimal.RequireFromString("1000"),
		LoanBalance:   decimal.Zero,
		Status:        domain.CustomerStatusActive,
		AuditFields:   domain.AuditFields{CreatedAt: suite.now, UpdatedAt: suite.now},
	}
}

func (suite *HandlerTestSuite) pendingTxn(txType domain.TransactionType, amount string) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: "t1",
		UserID:        customerUserID,
		Type:          txType,
		Amount:        txType.SignedAmount(decimal.RequireFromString(amount)),
		Status:        domain.StatusPending,
		AuditFields:   domain.AuditFields{CreatedAt: suite.now, UpdatedAt: suite.now},
	}
}

// --- Auth and access control ---

func (suite *HandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: customerUserID, Username: "almaz@example.com", Role: domain.RoleCustomer}
	expires := suite.now.Add(time.Hour)
	suite.users.On("AuthenticateUser", mock.Anything, "almaz@example.com", "password123").Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expires, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "almaz@example.com", Password: "password123"}, "", "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("signed-token", res.Token)
	suite.Equal(domain.RoleCustomer, res.User.Role)
}

func (suite *HandlerTestSuite) TestLogin_BadCredentials() {
	suite.users.On("AuthenticateUser", mock.Anything, "almaz@example.com", "nope").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "almaz@example.com", Password: "nope"}, "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.tokens.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	calls := 0
	suite.router = suite.newRouter(handlers.RouteDeps{LoginLimit: func(c *gin.Context) {
		calls++
		c.AbortWithStatusJSON(http.StatusTooManyRequests, handlers.ErrorResponse{Error: "Too many requests"})
	}})

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "a", Password: "b"}, "", "")

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Equal(1, calls)
	suite.users.AssertNotCalled(suite.T(), "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSignup_AlwaysCreatesCustomers() {
	suite.users.On("CreateUser", mock.Anything, dto.CreateUserRequest{Username: "new@example.com", Password: "long-enough", Role: domain.RoleCustomer}).
		Return(&domain.User{UserID: "u9", Username: "new@example.com", Role: domain.RoleCustomer}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/signup", dto.SignupRequest{Username: "new@example.com", Password: "long-enough"}, "", "")

	suite.Equal(http.StatusCreated, w.Code)
	suite.users.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestProtectedRoutes_RequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/customers", nil, "", "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestRoleGates() {
	testCases := []struct {
		name   string
		method string
		path   string
		role   domain.Role
	}{
		{"customer cannot list customers", http.MethodGet, "/api/v1/customers", domain.RoleCustomer},
		{"accountant cannot delete customers", http.MethodDelete, "/api/v1/customers/c1", domain.RoleAccountant},
		{"loan committee cannot calculate interest", http.MethodPost, "/api/v1/customers/c1/calculate-interest", domain.RoleLoanCommittee},
		{"staff cannot request deposits", http.MethodPost, "/api/v1/transactions/deposit", domain.RoleManager},
		{"customer cannot decide", http.MethodPost, "/api/v1/transactions/t1/process", domain.RoleCustomer},
		{"manager cannot manage users", http.MethodGet, "/api/v1/users", domain.RoleManager},
		{"accountant cannot manage employees", http.MethodGet, "/api/v1/employees", domain.RoleAccountant},
		{"manager cannot read logs", http.MethodGet, "/api/v1/logs", domain.RoleManager},
		{"customer cannot read feedback", http.MethodGet, "/api/v1/feedback", domain.RoleCustomer},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(tc.method, tc.path, nil, "", tc.role, "someone")

			suite.Equal(http.StatusForbidden, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "", "", "")
	suite.Equal(http.StatusOK, w.Code)
	w = suite.do(http.MethodGet, "/api/v1/health", nil, "", "", "")
	suite.Equal(http.StatusNotFound, w.Code, "health lives at the root, not under the API base path")

	suite.router = suite.newRouter(handlers.RouteDeps{DB: stubPinger{err: errors.New("connection refused")}})
	w = suite.do(http.MethodGet, "/health", nil, "", "", "")
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Contains(w.Body.String(), "unreachable")
}

// --- Customers ---

func (suite *HandlerTestSuite) TestRegisterCustomer_Created() {
	req := dto.CreateCustomerRequest{
		Phone:     "0911223344",
		AccountNo: "1000200030004000",
		FirstName: "Almaz",
		LastName:  "Tesfaye",
		Age:       34,
		Sex:       domain.Female,
		Email:     "almaz@example.com",
	}
	user := &domain.User{UserID: customerUserID, Username: "almaz@example.com", Role: domain.RoleCustomer}
	suite.customers.On("RegisterCustomer", mock.Anything, mock.MatchedBy(func(r dto.CreateCustomerRequest) bool {
		return r.Email == req.Email && r.AccountNo == req.AccountNo
	}), staffUserID).Return(suite.customer(), user, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/customers", req, domain.RoleAccountant, staffUserID)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.RegisterCustomerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("c1", res.Customer.CustomerID)
	suite.Equal(customerUserID, res.User.UserID)
	suite.customers.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRegisterCustomer_RejectsBadInput() {
	testCases := []struct {
		name   string
		mutate func(*dto.CreateCustomerRequest)
	}{
		{"underage", func(r *dto.CreateCustomerRequest) { r.Age = 24 }},
		{"short phone", func(r *dto.CreateCustomerRequest) { r.Phone = "12345" }},
		{"unknown sex", func(r *dto.CreateCustomerRequest) { r.Sex = "unspecified" }},
		{"bad email", func(r *dto.CreateCustomerRequest) { r.Email = "not-an-email" }},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := dto.CreateCustomerRequest{
				Phone: "0911223344", AccountNo: "1000200030004000", FirstName: "A", LastName: "B",
				Age: 30, Sex: domain.Male, Email: "a@example.com",
			}
			tc.mutate(&req)

			w := suite.doJSON(http.MethodPost, "/api/v1/customers", req, domain.RoleAdmin, staffUserID)

			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.customers.AssertNotCalled(suite.T(), "RegisterCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetMyCustomer() {
	suite.customers.On("GetCustomerByUserID", mock.Anything, customerUserID).Return(suite.customer(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/customers/me", nil, "", domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(decimal.RequireFromString("1000").Equal(res.SavingBalance))
}

func (suite *HandlerTestSuite) TestDeleteCustomer_UnsettledBalances() {
	suite.customers.On("DeleteCustomer", mock.Anything, "c1", staffUserID).
		Return(fmt.Errorf("%w: customer still holds a balance", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/customers/c1", nil, "", domain.RoleManager, staffUserID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Error, "balance")
}

func (suite *HandlerTestSuite) TestCalculateInterest() {
	suite.interest.On("Accrue", mock.Anything, "c1").Return(domain.AccrualResult{
		CustomerID:    "c1",
		Outcome:       domain.AccrualCredited,
		ElapsedYears:  2,
		Interest:      decimal.RequireFromString("240"),
		SavingBalance: decimal.RequireFromString("1240"),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/customers/c1/calculate-interest", nil, "", domain.RoleAccountant, staffUserID)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.AccrualResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(domain.AccrualCredited, res.Outcome)
	suite.True(decimal.RequireFromString("240").Equal(res.Interest))
}

func (suite *HandlerTestSuite) TestCalculateInterest_UnknownCustomer() {
	suite.interest.On("Accrue", mock.Anything, "ghost").Return(domain.AccrualResult{}, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/customers/ghost/calculate-interest", nil, "", domain.RoleAdmin, staffUserID)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestRequestDeposit_WithReceipt() {
	body, contentType := suite.multipartBody(map[string]string{"amount": "100.50", "reason": "salary"}, "receipt", "slip.png", []byte("fake png"))
	suite.transactions.On("RequestDeposit", mock.Anything, customerUserID,
		mock.MatchedBy(func(r dto.DepositRequest) bool {
			return r.Amount.Equal(decimal.RequireFromString("100.50")) && r.Reason == "salary"
		}),
		mock.MatchedBy(func(a *domain.Attachment) bool {
			return a != nil && a.Filename == "slip.png" && a.Size == int64(len("fake png"))
		}),
	).Return(suite.pendingTxn(domain.Deposit, "100.50"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", body, contentType, domain.RoleCustomer, customerUserID)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(domain.StatusPending, res.Status)
	suite.transactions.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRequestDeposit_MissingReceiptIsPassedAsNil() {
	body, contentType := suite.multipartBody(map[string]string{"amount": "10"}, "", "", nil)
	suite.transactions.On("RequestDeposit", mock.Anything, customerUserID, mock.Anything, (*domain.Attachment)(nil)).
		Return(nil, fmt.Errorf("%w: a receipt is required", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", body, contentType, domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.transactions.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRequestDeposit_UploadTooLarge() {
	body, contentType := suite.multipartBody(map[string]string{"amount": "10"}, "receipt", "huge.png", bytes.Repeat([]byte("x"), 128<<10))

	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", body, contentType, domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
	suite.transactions.AssertNotCalled(suite.T(), "RequestDeposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRequestDeposit_StorageFailureHidesDetails() {
	body, contentType := suite.multipartBody(map[string]string{"amount": "10"}, "receipt", "slip.png", []byte("png"))
	suite.transactions.On("RequestDeposit", mock.Anything, customerUserID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: bucket quota exceeded", apperrors.ErrAttachmentUpload)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/deposit", body, contentType, domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.NotContains(w.Body.String(), "quota")
}

func (suite *HandlerTestSuite) TestRequestWithdrawal_InsufficientFunds() {
	req := dto.WithdrawalRequest{Amount: decimal.RequireFromString("5000")}
	suite.transactions.On("RequestWithdrawal", mock.Anything, customerUserID, mock.Anything).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/withdraw", req, domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.ErrInsufficientFunds.Error(), suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestApplyForLoan_IneligibleCarriesReason() {
	req := dto.LoanRequest{Amount: decimal.RequireFromString("700"), Reason: "car"}
	suite.transactions.On("ApplyForLoan", mock.Anything, customerUserID, mock.Anything).
		Return(nil, apperrors.NewLoanEligibilityError("account must be at least six months old")).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/loan", req, domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusForbidden, w.Code)
	res := suite.decodeError(w)
	suite.Equal("Loan application rejected", res.Error)
	suite.Equal("account must be at least six months old", res.Reason)
}

func (suite *HandlerTestSuite) TestRequestLoanRepayment_ReceiptOptional() {
	body, contentType := suite.multipartBody(map[string]string{"amount": "50"}, "", "", nil)
	suite.transactions.On("RequestLoanRepayment", mock.Anything, customerUserID, mock.Anything, (*domain.Attachment)(nil)).
		Return(suite.pendingTxn(domain.LoanRepayment, "50"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/loan-repayment", body, contentType, domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions_PassesActor() {
	actor := domain.Actor{UserID: customerUserID, Role: domain.RoleCustomer}
	suite.transactions.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool { return p.Type == "deposit" && p.Limit == 5 }),
		actor,
	).Return([]domain.Transaction{*suite.pendingTxn(domain.Deposit, "10")}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?type=deposit&limit=5", nil, "", domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Transactions, 1)
	suite.transactions.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetTransaction_OtherCustomersIsNotFound() {
	actor := domain.Actor{UserID: "intruder", Role: domain.RoleCustomer}
	suite.transactions.On("GetTransaction", mock.Anything, "t1", actor).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/t1", nil, "", domain.RoleCustomer, "intruder")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestProcessTransaction() {
	approved := suite.pendingTxn(domain.Loan, "700")
	approved.Status = domain.StatusApproved

	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"approved", nil, http.StatusOK},
		{"unknown action", fmt.Errorf("%w: %q", apperrors.ErrInvalidAction, "maybe"), http.StatusBadRequest},
		{"already finalized", apperrors.ErrAlreadyFinalized, http.StatusConflict},
		{"missing", apperrors.ErrNotFound, http.StatusNotFound},
		{"repayment too large", apperrors.ErrRepaymentExceedsLoan, http.StatusBadRequest},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			req := dto.ProcessTransactionRequest{Action: "approve", Comment: "ok"}
			if tc.err != nil {
				suite.transactions.On("Decide", mock.Anything, "t1", req, staffUserID).Return(nil, tc.err).Once()
			} else {
				suite.transactions.On("Decide", mock.Anything, "t1", req, staffUserID).Return(approved, nil).Once()
			}

			w := suite.doJSON(http.MethodPost, "/api/v1/transactions/t1/process", req, domain.RoleLoanCommittee, staffUserID)

			suite.Equal(tc.wantCode, w.Code, w.Body.String())
		})
	}
}

func (suite *HandlerTestSuite) TestProcessTransaction_ActionRequired() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/t1/process", strings.NewReader(`{}`), "application/json", domain.RoleManager, staffUserID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.transactions.AssertNotCalled(suite.T(), "Decide", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Users and logs ---

func (suite *HandlerTestSuite) TestUploadProfilePicture() {
	url := "https://storage.googleapis.com/bank/receipts/me.png"
	body, contentType := suite.multipartBody(nil, "picture", "me.png", []byte("png"))
	suite.users.On("SetProfilePicture", mock.Anything, staffUserID, mock.MatchedBy(func(a domain.Attachment) bool {
		return a.Filename == "me.png"
	})).Return(&domain.User{UserID: staffUserID, Role: domain.RoleManager, ProfilePicture: &url}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/profile", body, contentType, domain.RoleManager, staffUserID)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), url)
}

func (suite *HandlerTestSuite) TestUploadProfilePicture_FileRequired() {
	body, contentType := suite.multipartBody(map[string]string{"note": "x"}, "", "", nil)

	w := suite.do(http.MethodPost, "/api/v1/profile", body, contentType, domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteUser_Self() {
	suite.users.On("DeleteUser", mock.Anything, staffUserID, staffUserID).
		Return(fmt.Errorf("%w: cannot delete yourself", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/users/"+staffUserID, nil, "", domain.RoleAdmin, staffUserID)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestChangePassword() {
	req := dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"}
	suite.users.On("ChangePassword", mock.Anything, customerUserID, req).Return(nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/change-password", req, domain.RoleCustomer, customerUserID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.users.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListLogs_DefaultsPaging() {
	suite.audit.On("ListLogs", mock.Anything, 50, 0).Return([]domain.AuditLog{{LogID: "l1", Action: domain.AuditCustomerRegistered}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/logs", nil, "", domain.RoleAdmin, staffUserID)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "l1")
	suite.audit.AssertExpectations(suite.T())
}
