package api

import (
	"context"
	"errors"
	"net/http"

	"quickaid/logger"
	"quickaid/models"
	"quickaid/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TicketService interface {
	Submit(ctx context.Context, sub models.Submission) (*services.Receipt, error)
	List(ctx context.Context, f models.TicketFilter) ([]models.Ticket, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// SubmitTicket handles POST /api/submit_ticket.
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	var sub models.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	receipt, err := h.svc.Submit(c.Request.Context(), sub)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		logger.L.Error("submit ticket failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to submit ticket",
			"details": "The ticket could not be saved. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// GetTickets handles GET /api/get_tickets with an optional email filter.
func (h *TicketHandler) GetTickets(c *gin.Context) {
	filter := models.TicketFilter{Email: c.Query("email")}

	tickets, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		logger.L.Error("list tickets failed", zap.Error(err), zap.Bool("filtered", filter.Email != ""))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tickets"})
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
