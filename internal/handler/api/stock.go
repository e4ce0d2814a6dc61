package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-ops/internal/domain/stock"
	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StockHandler struct {
	commands commands.StockCommands
	queries  queries.StockQueries
}

func NewStockHandler(cmds commands.StockCommands, qs queries.StockQueries) *StockHandler {
	return &StockHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Record stock movement
// @Description Record one ledger entry (entree/sortie/ajustement/perte) and update the level
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordMovementRequest true "Movement request"
// @Success 201 {object} resdto.MovementResultResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stock/movements [post]
func (h *StockHandler) RecordMovement(c *gin.Context) {
	var req reqdto.RecordMovementRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actorID, _ := actorIDPtr(c)
	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	result, err := h.commands.RecordMovement(c.Request.Context(), commands.RecordMovementInput{
		ProductID:   req.ProductID,
		Type:        stock.MovementType(req.Type),
		Quantity:    req.Quantity,
		Reason:      reason,
		PerformedBy: actorID,
	})
	if err != nil {
		h.respondMovementError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMovementResult(result))
}

// @Summary Apply dotation
// @Description Consume a room type's standard product allocation for one room
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyDotationRequest true "Dotation request"
// @Success 201 {object} resdto.MovementResultResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stock/dotations/apply [post]
func (h *StockHandler) ApplyDotation(c *gin.Context) {
	var req reqdto.ApplyDotationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actorID, _ := actorIDPtr(c)
	result, err := h.commands.ApplyDotation(c.Request.Context(), req.DotationID, req.RoomID, actorID)
	if err != nil {
		h.respondMovementError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMovementResult(result))
}

func (h *StockHandler) respondMovementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, commands.ErrDotationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Dotation not found",
		})
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, stock.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient stock for movement",
		})
	case errors.Is(err, commands.ErrStockConflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid stock movement",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get product
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock/products/{id} [get]
func (h *StockHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	view, err := h.queries.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondNotFoundOrInternal(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary List products
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param below_minimum query bool false "Only products at or below minimum"
// @Success 200 {array} resdto.ProductResponse
// @Router /stock/products [get]
func (h *StockHandler) ListProducts(c *gin.Context) {
	belowMinimumOnly := c.Query("below_minimum") == "true"

	views, err := h.queries.ListProducts(c.Request.Context(), belowMinimumOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary List stock movements for a product
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.MovementResponse
// @Router /stock/products/{id}/movements [get]
func (h *StockHandler) ListMovements(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	limit := 0
	if s := c.Query("limit"); s != "" {
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	views, err := h.queries.ListMovements(c.Request.Context(), id, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMovementViews(views))
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param mine query bool false "Only notifications addressed to the caller"
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} resdto.NotificationResponse
// @Router /notifications [get]
func (h *StockHandler) ListNotifications(c *gin.Context) {
	var recipientID *uuid.UUID
	if c.Query("mine") == "true" {
		id, ok := actorIDPtr(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		recipientID = id
	}
	unreadOnly := c.Query("unread") == "true"

	views, err := h.queries.ListNotifications(c.Request.Context(), recipientID, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}
