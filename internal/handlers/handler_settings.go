package handlers

import (
	"net/http"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
	auditService    portssvc.AuditSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade, auditService portssvc.AuditSvcFacade) {
	h := &settingsHandler{settingsService: settingsService, auditService: auditService}

	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
	rg.GET("/audit-logs", h.listAuditLogs)
}

// getSettings godoc
// @Summary Get tenant settings
// @Description Stored settings, or the defaults when none were saved
// @Tags settings
// @Produce  json
// @Success 200 {object} domain.Settings
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	settings, err := h.settingsService.Settings(c.Request.Context(), actor.TenantID)
	if err != nil {
		respondError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSettings godoc
// @Summary Update tenant settings
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} domain.Settings
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// listAuditLogs godoc
// @Summary List the audit trail
// @Description Newest first, with token pagination
// @Tags audit
// @Produce  json
// @Param   action query string false "Action"
// @Param   entityType query string false "Entity type"
// @Param   entityID query string false "Entity ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *settingsHandler) listAuditLogs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	logs, next, err := h.auditService.ListAuditLogs(c.Request.Context(), actor, domain.AuditFilter{
		Action:     domain.AuditAction(params.Action),
		EntityType: params.EntityType,
		EntityID:   params.EntityID,
		Limit:      params.Limit,
		NextToken:  params.NextToken,
	})
	if err != nil {
		respondError(c, err, "Failed to list audit logs")
		return
	}
	if logs == nil {
		logs = []domain.AuditLog{}
	}
	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{Logs: logs, NextToken: next})
}
