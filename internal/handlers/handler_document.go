package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/SscSPs/fund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler serves income receipts and expense vouchers. One instance
// is bound to each kind.
type documentHandler struct {
	kind            domain.DocumentKind
	documentService portssvc.DocumentSvcFacade
	reversalService portssvc.ReversalSvc
}

// registerDocumentRoutes registers the income and expense routes.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, reversalService portssvc.ReversalSvc) {
	income := &documentHandler{kind: domain.KindIncome, documentService: documentService, reversalService: reversalService}
	incomes := rg.Group("/income")
	{
		incomes.POST("", income.createIncome)
		incomes.GET("", income.listDocuments)
		incomes.GET("/:id", income.getDocument)
		incomes.POST("/:id/verify", income.verify)
		incomes.POST("/:id/reject", income.reject)
		incomes.POST("/:id/reverse", income.reverse)
	}

	expense := &documentHandler{kind: domain.KindExpense, documentService: documentService, reversalService: reversalService}
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", expense.createExpense)
		expenses.GET("", expense.listDocuments)
		expenses.GET("/:id", expense.getDocument)
		expenses.POST("/:id/verify", expense.verify)
		expenses.POST("/:id/approve", expense.approve)
		expenses.POST("/:id/reject", expense.reject)
		expenses.POST("/:id/reverse", expense.reverse)
	}
}

// createIncome godoc
// @Summary Record an income receipt
// @Description Numbers the receipt, and posts it when auto-verify is on
// @Tags income
// @Accept  json
// @Produce  json
// @Param   income body dto.CreateIncomeRequest true "Receipt details"
// @Success 201 {object} domain.Document
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Period locked"
// @Security BearerAuth
// @Router /income [post]
func (h *documentHandler) createIncome(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	doc, err := h.documentService.CreateIncome(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to record income")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Income recorded", slog.String("number", doc.Number))
	c.JSON(http.StatusCreated, doc)
}

// createExpense godoc
// @Summary Record an expense voucher
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Voucher details"
// @Success 201 {object} domain.Document
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Period locked"
// @Security BearerAuth
// @Router /expenses [post]
func (h *documentHandler) createExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	doc, err := h.documentService.CreateExpense(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to record expense")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expense recorded", slog.String("number", doc.Number))
	c.JSON(http.StatusCreated, doc)
}

// listDocuments godoc
// @Summary List receipts or vouchers
// @Tags income,expenses
// @Produce  json
// @Param   status query string false "Verification status"
// @Param   approval query string false "Approval status (expenses)"
// @Param   category query string false "Category"
// @Param   fund query string false "Fund"
// @Param   includeReversed query bool false "Include reversed documents"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Security BearerAuth
// @Router /income [get]
// @Router /expenses [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	docs, next, err := h.documentService.ListDocuments(c.Request.Context(), actor, domain.DocumentFilter{
		Kind:               h.kind,
		VerificationStatus: domain.VerificationStatus(params.Status),
		ApprovalStatus:     domain.ApprovalStatus(params.Approval),
		Category:           params.Category,
		FundType:           domain.FundType(params.Fund),
		IncludeReversed:    params.IncludeReversed,
		Limit:              params.Limit,
		NextToken:          params.NextToken,
	})
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	c.JSON(http.StatusOK, dto.ListDocumentsResponse{Documents: docs, NextToken: next})
}

// getDocument godoc
// @Summary Get a receipt or voucher
// @Tags income,expenses
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} domain.Document
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /income/{id} [get]
// @Router /expenses/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	doc, err := h.documentService.GetDocument(c.Request.Context(), actor, h.kind, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

type transitionFunc func(c *gin.Context, actor domain.Actor, remarks string) (*domain.Document, error)

// transition binds the remarks body and runs one workflow or reversal step.
func (h *documentHandler) transition(c *gin.Context, step string, fn transitionFunc) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RemarksRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err, "request format")
			return
		}
	}
	doc, err := fn(c, actor, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to "+step+" document")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Document "+step+" done",
		slog.String("document_id", c.Param("id")), slog.String("number", doc.Number))
	c.JSON(http.StatusOK, doc)
}

// verify godoc
// @Summary Verify a pending document
// @Description Posts income on verification; expenses wait for approval
// @Tags income,expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   body body dto.RemarksRequest false "Remarks"
// @Success 200 {object} domain.Document
// @Failure 409 {object} map[string]string "Already processed, self-verification or period locked"
// @Security BearerAuth
// @Router /income/{id}/verify [post]
// @Router /expenses/{id}/verify [post]
func (h *documentHandler) verify(c *gin.Context) {
	h.transition(c, "verify", func(c *gin.Context, actor domain.Actor, remarks string) (*domain.Document, error) {
		return h.documentService.Verify(c.Request.Context(), actor, h.kind, c.Param("id"), remarks)
	})
}

// approve godoc
// @Summary Approve a verified expense
// @Description Approval posts the voucher to the ledger
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   body body dto.RemarksRequest false "Remarks"
// @Success 200 {object} domain.Document
// @Security BearerAuth
// @Router /expenses/{id}/approve [post]
func (h *documentHandler) approve(c *gin.Context) {
	h.transition(c, "approve", func(c *gin.Context, actor domain.Actor, remarks string) (*domain.Document, error) {
		return h.documentService.Approve(c.Request.Context(), actor, h.kind, c.Param("id"), remarks)
	})
}

// reject godoc
// @Summary Reject a pending document
// @Tags income,expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   body body dto.RemarksRequest true "Remarks"
// @Success 200 {object} domain.Document
// @Security BearerAuth
// @Router /income/{id}/reject [post]
// @Router /expenses/{id}/reject [post]
func (h *documentHandler) reject(c *gin.Context) {
	h.transition(c, "reject", func(c *gin.Context, actor domain.Actor, remarks string) (*domain.Document, error) {
		return h.documentService.Reject(c.Request.Context(), actor, h.kind, c.Param("id"), remarks)
	})
}

// reverse godoc
// @Summary Reverse a document
// @Description Creates a mirror document and, when posted, a counter transaction
// @Tags income,expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   body body dto.RemarksRequest true "Reason for the reversal"
// @Success 200 {object} domain.Document
// @Failure 409 {object} map[string]string "Already reversed, reversal of a reversal or period locked"
// @Security BearerAuth
// @Router /income/{id}/reverse [post]
// @Router /expenses/{id}/reverse [post]
func (h *documentHandler) reverse(c *gin.Context) {
	h.transition(c, "reverse", func(c *gin.Context, actor domain.Actor, remarks string) (*domain.Document, error) {
		return h.reversalService.Reverse(c.Request.Context(), actor, h.kind, c.Param("id"), remarks)
	})
}
