package api

import (
	"errors"
	"net/http"

	"hotel-ops/internal/domain/maintenance"
	reqdto "hotel-ops/internal/handler/dto/request"
	"hotel-ops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MaintenanceHandler struct {
	commands commands.MaintenanceCommands
}

func NewMaintenanceHandler(cmds commands.MaintenanceCommands) *MaintenanceHandler {
	return &MaintenanceHandler{commands: cmds}
}

// @Summary Report maintenance problem
// @Description Open a maintenance ticket; the room moves under maintenance immediately
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReportTicketRequest true "Ticket request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /maintenance/tickets [post]
func (h *MaintenanceHandler) ReportTicket(c *gin.Context) {
	var req reqdto.ReportTicketRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actorID, _ := actorIDPtr(c)
	id, err := h.commands.Report(c.Request.Context(), commands.ReportTicketInput{
		RoomID:     req.RoomID,
		ReportedBy: actorID,
		Problem:    req.Problem,
		Priority:   maintenance.Priority(req.Priority),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Start maintenance work
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /maintenance/tickets/{id}/start [post]
func (h *MaintenanceHandler) StartTicket(c *gin.Context) {
	id, ok := parseTicketID(c)
	if !ok {
		return
	}
	h.respondTransition(c, h.commands.Start(c.Request.Context(), id))
}

// @Summary Complete maintenance work
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.CompleteTicketRequest false "Completion details"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /maintenance/tickets/{id}/complete [post]
func (h *MaintenanceHandler) CompleteTicket(c *gin.Context) {
	id, ok := parseTicketID(c)
	if !ok {
		return
	}

	var req reqdto.CompleteTicketRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	var cost *decimal.Decimal
	if req.Cost != nil {
		d, err := decimal.NewFromString(*req.Cost)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cost value",
			})
			return
		}
		cost = &d
	}

	h.respondTransition(c, h.commands.Complete(c.Request.Context(), id, cost))
}

// @Summary Cancel maintenance ticket
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /maintenance/tickets/{id}/cancel [post]
func (h *MaintenanceHandler) CancelTicket(c *gin.Context) {
	id, ok := parseTicketID(c)
	if !ok {
		return
	}
	h.respondTransition(c, h.commands.Cancel(c.Request.Context(), id))
}

// @Summary Append note to ticket
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.AppendTicketNoteRequest true "Note"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /maintenance/tickets/{id}/notes [post]
func (h *MaintenanceHandler) AppendNote(c *gin.Context) {
	id, ok := parseTicketID(c)
	if !ok {
		return
	}

	var req reqdto.AppendTicketNoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.respondTransition(c, h.commands.AppendNote(c.Request.Context(), id, req.Note))
}

func (h *MaintenanceHandler) respondTransition(c *gin.Context, err error) {
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Maintenance ticket not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Transition not allowed from current status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func parseTicketID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
