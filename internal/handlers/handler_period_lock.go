package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/fund_ledger/internal/apperrors"
	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type periodLockHandler struct {
	lockService portssvc.PeriodLockSvcFacade
}

func registerPeriodLockRoutes(rg *gin.RouterGroup, lockService portssvc.PeriodLockSvcFacade) {
	h := &periodLockHandler{lockService: lockService}

	locks := rg.Group("/period-locks")
	{
		locks.POST("", h.lockPeriod)
		locks.GET("", h.listLocks)
		locks.DELETE("/:year/:month", h.unlockPeriod)
	}
}

// lockPeriod godoc
// @Summary Close an accounting month
// @Tags period-locks
// @Accept  json
// @Produce  json
// @Param   lock body dto.LockPeriodRequest true "Month to lock"
// @Success 201 {object} domain.PeriodLock
// @Failure 409 {object} map[string]string "Already locked"
// @Security BearerAuth
// @Router /period-locks [post]
func (h *periodLockHandler) lockPeriod(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.LockPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	lock, err := h.lockService.LockPeriod(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to lock period")
		return
	}
	c.JSON(http.StatusCreated, lock)
}

// listLocks godoc
// @Summary List closed months
// @Tags period-locks
// @Produce  json
// @Success 200 {array} domain.PeriodLock
// @Security BearerAuth
// @Router /period-locks [get]
func (h *periodLockHandler) listLocks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	locks, err := h.lockService.ListLocks(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list period locks")
		return
	}
	if locks == nil {
		locks = []domain.PeriodLock{}
	}
	c.JSON(http.StatusOK, locks)
}

// unlockPeriod godoc
// @Summary Reopen an accounting month
// @Tags period-locks
// @Param   year path int true "Year"
// @Param   month path int true "Month"
// @Success 204
// @Failure 404 {object} map[string]string "Month is not locked"
// @Security BearerAuth
// @Router /period-locks/{year}/{month} [delete]
func (h *periodLockHandler) unlockPeriod(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	year, yErr := strconv.Atoi(c.Param("year"))
	month, mErr := strconv.Atoi(c.Param("month"))
	if yErr != nil || mErr != nil {
		respondError(c, apperrors.NewValidationError("year and month must be numbers"), "Invalid period")
		return
	}
	if err := h.lockService.UnlockPeriod(c.Request.Context(), actor, year, month); err != nil {
		respondError(c, err, "Failed to unlock period")
		return
	}
	c.Status(http.StatusNoContent)
}
