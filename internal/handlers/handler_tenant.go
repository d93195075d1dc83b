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

// tenantHandler handles tenants and their memberships.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

// registerTenantRoutes registers routes that need only an authenticated user.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := &tenantHandler{tenantService: tenantService}

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listTenants)
	}
}

// registerMemberRoutes registers routes scoped to the actor's tenant.
func registerMemberRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := &tenantHandler{tenantService: tenantService}

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.POST("", h.addMember)
	}
}

// createTenant godoc
// @Summary Open a new set of books
// @Description The caller becomes ADMIN and the default chart is seeded
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} domain.Tenant
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create tenant")
		return
	}
	logger.Info("Tenant created", slog.String("new_tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, tenant)
}

// listTenants godoc
// @Summary List the caller's tenants
// @Tags tenants
// @Produce  json
// @Success 200 {array} domain.Tenant
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tenants, err := h.tenantService.ListTenantsForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list tenants")
		return
	}
	if tenants == nil {
		tenants = []domain.Tenant{}
	}
	c.JSON(http.StatusOK, tenants)
}

// listMembers godoc
// @Summary List members of the current tenant
// @Tags tenants
// @Produce  json
// @Success 200 {array} domain.TenantMember
// @Security BearerAuth
// @Router /members [get]
func (h *tenantHandler) listMembers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	members, err := h.tenantService.ListMembers(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// addMember godoc
// @Summary Add a member or change their role
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   member body dto.AddMemberRequest true "Member and role"
// @Success 200 {object} domain.TenantMember
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /members [post]
func (h *tenantHandler) addMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	member, err := h.tenantService.AddMember(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusOK, member)
}
