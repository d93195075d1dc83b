package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/SscSPs/fund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.POST("/seed", h.seedChart)
		accounts.GET("/:code", h.getAccount)
		accounts.GET("/:code/balance", h.getBalance)
		accounts.GET("/:code/ledger", h.getLedger)
	}
}

// parseDateRange turns optional YYYY-MM-DD query bounds into pointers.
func parseDateRange(p dto.DateRangeParams) (from, to *time.Time, err error) {
	parse := func(field, v string) (*time.Time, error) {
		if v == "" {
			return nil, nil
		}
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return nil, apperrors.NewValidationError("%s must be YYYY-MM-DD", field)
		}
		return &t, nil
	}
	if from, err = parse("from", p.From); err != nil {
		return nil, nil, err
	}
	if to, err = parse("to", p.To); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds a custom account to the tenant's chart
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Account code already used"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	logger.Info("Received request to create account", slog.String("code", req.Code))
	account, err := h.accountService.CreateAccount(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags accounts
// @Produce  json
// @Param   type query string false "Account type filter"
// @Param   fund query string false "Fund filter"
// @Param   activeOnly query bool false "Only active accounts"
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), actor, domain.AccountFilter{
		AccountType: domain.AccountType(params.AccountType),
		FundType:    domain.FundType(params.FundType),
		ActiveOnly:  params.ActiveOnly,
	})
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// seedChart godoc
// @Summary Seed the default chart of accounts
// @Description Inserts the configured default accounts whose codes are missing
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.SeedChartResponse
// @Security BearerAuth
// @Router /accounts/seed [post]
func (h *accountHandler) seedChart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	n, err := h.accountService.SeedDefaultChart(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to seed chart of accounts")
		return
	}
	c.JSON(http.StatusOK, dto.SeedChartResponse{Created: n})
}

// getAccount godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce  json
// @Param   code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{code} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	account, err := h.accountService.ResolveAccount(c.Request.Context(), actor, c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getBalance godoc
// @Summary Get an account balance
// @Description Signed balance under the account type's natural sign, optionally over a date range
// @Tags accounts
// @Produce  json
// @Param   code path string true "Account code"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Security BearerAuth
// @Router /accounts/{code}/balance [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	from, to, err := parseDateRange(params)
	if err != nil {
		respondError(c, err, "Invalid date range")
		return
	}

	code := c.Param("code")
	balance, err := h.accountService.GetBalance(c.Request.Context(), actor, code, from, to)
	if err != nil {
		respondError(c, err, fmt.Sprintf("Failed to compute balance of %s", code))
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{Code: code, Balance: balance, From: params.From, To: params.To})
}

// getLedger godoc
// @Summary Get an account ledger
// @Description Entries of one account with opening, running and closing balances
// @Tags accounts
// @Produce  json
// @Param   code path string true "Account code"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.AccountLedger
// @Security BearerAuth
// @Router /accounts/{code}/ledger [get]
func (h *accountHandler) getLedger(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	from, to, err := parseDateRange(params)
	if err != nil {
		respondError(c, err, "Invalid date range")
		return
	}

	ledger, err := h.accountService.AccountLedger(c.Request.Context(), actor, c.Param("code"), from, to)
	if err != nil {
		respondError(c, err, "Failed to build account ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}
