package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/komisi/internal/api/dto"
	"github.com/eshaffer321/komisi/internal/application/service"
)

// RosterHandler lists the sales staff and the rate table.
type RosterHandler struct {
	Base
	svc *service.CommissionService
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(svc *service.CommissionService) *RosterHandler {
	return &RosterHandler{svc: svc}
}

// List handles GET /api/roster.
func (h *RosterHandler) List(c *gin.Context) {
	h.WriteJSON(c, http.StatusOK, dto.NewRosterResponse(h.svc.Roster()))
}

// Get handles GET /api/roster/:id.
func (h *RosterHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("staff id must be an integer"))
		return
	}

	entry, err := h.svc.Roster().ByID(id)
	if err != nil {
		h.WriteError(c, http.StatusNotFound, dto.NotFoundError("staff member"))
		return
	}

	h.WriteJSON(c, http.StatusOK, entry)
}

// Rates handles GET /api/rates.
func (h *RosterHandler) Rates(c *gin.Context) {
	h.WriteJSON(c, http.StatusOK, dto.NewRatesResponse(h.svc.Rates(), h.svc.MaxLeadGenerators()))
}
