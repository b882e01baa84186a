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

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	interestService portssvc.InterestSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade, is portssvc.InterestSvcFacade) *customerHandler {
	return &customerHandler{
		customerService: cs,
		interestService: is,
	}
}

// registerCustomerRoutes registers routes related to customers. Each route
// carries its own role gate.
func registerCustomerRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCustomerHandler(services.Customer, services.Interest)

	onboarding := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager, domain.RoleAccountant)
	administration := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager)

	customers := rg.Group("/customers")
	{
		customers.POST("", onboarding, h.registerCustomer)
		customers.GET("/me", middleware.RequireRoles(domain.RoleCustomer), h.getMyCustomer)
		customers.GET("", middleware.RequireRoles(middleware.StaffRoles...), h.listCustomers)
		customers.PUT("/:id", administration, h.updateCustomer)
		customers.DELETE("/:id", administration, h.deleteCustomer)
		customers.POST("/:id/calculate-interest", onboarding, h.calculateInterest)
	}
}

// registerCustomer godoc
// @Summary Register a customer
// @Description Creates the customer together with a customer-role login. The username is the email and the password is the bank's default password.
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.RegisterCustomerResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 409 {object} ErrorResponse "Email, phone or account number already in use"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) registerCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create customer request")
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	customer, user, err := h.customerService.RegisterCustomer(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to register customer")
		return
	}

	logger.Info("Customer registered", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, dto.RegisterCustomerResponse{
		Customer: dto.ToCustomerResponse(customer),
		User:     dto.ToUserResponse(user),
	})
}

// getMyCustomer godoc
// @Summary Own customer record
// @Description Returns the customer record owned by the logged-in customer, balances included.
// @Tags customers
// @Produce  json
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/me [get]
func (h *customerHandler) getMyCustomer(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	customer, err := h.customerService.GetCustomerByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Description Newest customers first.
// @Tags customers
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list customers query")
		return
	}
	customers, err := h.customerService.ListCustomers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomersResponse(customers))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Updates profile fields. Balances cannot be edited here.
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update customer request")
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)
	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Close a customer account
// @Description Deletes the customer and its login. Both balances must be zero. Transaction history is kept.
// @Tags customers
// @Param   id path string true "Customer ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Balances not settled"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	actorID, _ := middleware.GetUserIDFromContext(c)
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// calculateInterest godoc
// @Summary Credit savings interest
// @Description Credits the interest due for whole years since the last calculation. Calling it again in the same calendar year credits nothing.
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.AccrualResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/calculate-interest [post]
func (h *customerHandler) calculateInterest(c *gin.Context) {
	result, err := h.interestService.Accrue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to calculate interest")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccrualResponse(result))
}
