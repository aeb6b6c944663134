package handler

import (
	"errors"
	"log"
	"net/http"

	"losmecanics_booking/internal/middleware"
	"losmecanics_booking/internal/model"
	"losmecanics_booking/internal/service"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment related requests
type AppointmentHandler struct {
	service service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found in context"})
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	apt, err := h.service.Book(c.Request.Context(), session, req)
	if err != nil {
		log.Printf("Error booking appointment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}
	c.JSON(http.StatusCreated, apt)
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found in context"})
		return
	}

	// upcoming/history are derived views, recomputed per query
	switch c.Query("view") {
	case "upcoming":
		apts, err := h.service.Upcoming(c.Request.Context(), session)
		h.respondList(c, apts, err)
		return
	case "history":
		apts, err := h.service.History(c.Request.Context(), session)
		h.respondList(c, apts, err)
		return
	}

	var filters model.AppointmentFilters
	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}
	if status := c.Query("status"); status != "" {
		if !model.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		filters.Status = &status
	}

	apts, err := h.service.List(c.Request.Context(), session, filters)
	h.respondList(c, apts, err)
}

func (h *AppointmentHandler) respondList(c *gin.Context, apts []model.Appointment, err error) {
	if err != nil {
		log.Printf("Error listing appointments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	if apts == nil {
		apts = []model.Appointment{}
	}
	c.JSON(http.StatusOK, apts)
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	apt, err := h.service.Get(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to retrieve appointment")
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	apt, err := h.service.Update(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	err := h.service.Delete(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// --- Admin Routes ---

func (h *AppointmentHandler) GetStatsAdmin(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	stats, err := h.service.Stats(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AppointmentHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// RegisterAppointmentRoutes registers appointment routes
func (h *AppointmentHandler) RegisterAppointmentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	aptRoutes := rg.Group("/appointments")
	aptRoutes.Use(authMW) // All routes in this group require authentication
	{
		aptRoutes.POST("", h.BookAppointment)
		aptRoutes.GET("", h.ListAppointments)
		aptRoutes.GET("/:id", h.GetAppointment)       // Service layer handles ownership for non-admins
		aptRoutes.PUT("/:id", h.UpdateAppointment)    // Service layer handles ownership
		aptRoutes.DELETE("/:id", h.DeleteAppointment) // Service layer handles ownership
	}

	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(authMW)
	adminRoutes.Use(adminMW)
	{
		adminRoutes.GET("/stats", h.GetStatsAdmin)
	}
}
