package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to financial reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-expenditure", h.getIncomeExpenditure)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/fund-summary", h.getFundSummary)
		reports.GET("/daily", h.getDailyReport)
		reports.GET("/monthly", h.getMonthlyCategorySummary)
		reports.GET("/payers", h.getPayerSummary)
	}
}

// asOf parses the optional asOf query parameter; empty means today.
func asOf(c *gin.Context) (time.Time, error) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return time.Time{}, apperrors.NewValidationError("%v", err)
	}
	if params.AsOf == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	t, err := time.Parse(time.DateOnly, params.AsOf)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("asOf must be YYYY-MM-DD")
	}
	return t, nil
}

// getTrialBalance godoc
// @Summary Get trial balance report
// @Description Every account with a non-zero balance as of a date, on its natural side
// @Tags reports
// @Produce  json
// @Param   asOf query string false "As-of date (YYYY-MM-DD), default today"
// @Success 200 {object} domain.TrialBalanceReport
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	date, err := asOf(c)
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}
	report, err := h.reportingService.TrialBalance(c.Request.Context(), actor, date)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getIncomeExpenditure godoc
// @Summary Get income and expenditure report
// @Description Income statement for a date range, optionally for one fund
// @Tags reports
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Param   fund query string false "Fund"
// @Success 200 {object} domain.IncomeExpenditureReport
// @Failure 400 {object} map[string]string "Invalid date range"
// @Security BearerAuth
// @Router /reports/income-expenditure [get]
func (h *reportingHandler) getIncomeExpenditure(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.IncomeExpenditureParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	from, to, err := parseDateRange(dto.DateRangeParams{From: params.From, To: params.To})
	if err != nil {
		respondError(c, err, "Invalid date range")
		return
	}
	if from == nil || to == nil {
		respondError(c, apperrors.NewValidationError("from and to are required"), "Invalid date range")
		return
	}

	report, err := h.reportingService.IncomeExpenditure(c.Request.Context(), actor, *from, *to, domain.FundType(params.Fund))
	if err != nil {
		respondError(c, err, "Failed to generate income and expenditure report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Get balance sheet report
// @Tags reports
// @Produce  json
// @Param   asOf query string false "As-of date (YYYY-MM-DD), default today"
// @Success 200 {object} domain.BalanceSheetReport
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	date, err := asOf(c)
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}
	report, err := h.reportingService.BalanceSheet(c.Request.Context(), actor, date)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getFundSummary godoc
// @Summary Get fund summary
// @Description Income, expense, surplus and assets per fund
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.FundSummaryReport
// @Security BearerAuth
// @Router /reports/fund-summary [get]
func (h *reportingHandler) getFundSummary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	report, err := h.reportingService.FundSummary(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to generate fund summary")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getDailyReport godoc
// @Summary Get daily report
// @Description Receipts and vouchers dated on one day with verified income and approved expense totals
// @Tags reports
// @Produce  json
// @Param   date query string false "Date (YYYY-MM-DD), default today"
// @Success 200 {object} domain.DailyReport
// @Failure 400 {object} map[string]string "Invalid date format"
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *reportingHandler) getDailyReport(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.DailyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	date := time.Now().UTC()
	if params.Date != "" {
		t, err := time.Parse(time.DateOnly, params.Date)
		if err != nil {
			respondError(c, apperrors.NewValidationError("date must be YYYY-MM-DD"), "Invalid date")
			return
		}
		date = t
	}
	report, err := h.reportingService.DailyReport(c.Request.Context(), actor, date)
	if err != nil {
		respondError(c, err, "Failed to generate daily report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getMonthlyCategorySummary godoc
// @Summary Get monthly category summary
// @Description Counted income and expense for one month grouped by category
// @Tags reports
// @Produce  json
// @Param   year query int false "Year, default current"
// @Param   month query int false "Month 1-12, default current"
// @Success 200 {object} domain.MonthlyCategorySummary
// @Failure 400 {object} map[string]string "Invalid month"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyCategorySummary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	period := domain.PeriodOf(time.Now().UTC())
	if params.Year != 0 {
		period.Year = params.Year
	}
	if params.Month != 0 {
		period.Month = params.Month
	}
	report, err := h.reportingService.MonthlyCategorySummary(c.Request.Context(), actor, period)
	if err != nil {
		respondError(c, err, "Failed to generate monthly summary")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getPayerSummary godoc
// @Summary Get payer summary
// @Description Count and total of verified receipts per payer, largest first
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.PayerSummary
// @Failure 400 {object} map[string]string "Invalid date range"
// @Security BearerAuth
// @Router /reports/payers [get]
func (h *reportingHandler) getPayerSummary(c *gin.Context) {
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
	report, err := h.reportingService.PayerSummary(c.Request.Context(), actor, from, to)
	if err != nil {
		respondError(c, err, "Failed to generate payer summary")
		return
	}
	c.JSON(http.StatusOK, report)
}
