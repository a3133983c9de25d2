package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *TicketHandler) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(), Instrument())

	r.GET("/healthz", Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/submit_ticket", h.SubmitTicket)
		apiGroup.GET("/get_tickets", h.GetTickets)
	}
	return r
}
