package handler

import (
	"log"
	"net/http"

	"losmecanics_booking/internal/middleware"
	"losmecanics_booking/internal/service"
	"losmecanics_booking/internal/view"

	"github.com/gin-gonic/gin"
)

// ViewHandler resolves navigation requests through the view router and
// returns the descriptor the frontend renders. Auth is optional: anonymous
// visitors navigate the public pages too.
type ViewHandler struct {
	appointments service.AppointmentService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(appointments service.AppointmentService) *ViewHandler {
	return &ViewHandler{appointments: appointments}
}

func (h *ViewHandler) ResolveView(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	res := view.Resolve(c.Param("page"), session)
	vd, err := view.Describe(c.Request.Context(), res, session, h.appointments)
	if err != nil {
		log.Printf("Error describing view %q: %v", res.Page, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve view"})
		return
	}
	c.JSON(http.StatusOK, vd)
}

// RegisterViewRoutes registers the view resolution route
func (h *ViewHandler) RegisterViewRoutes(rg *gin.RouterGroup, optionalAuthMW gin.HandlerFunc) {
	viewRoutes := rg.Group("/views")
	viewRoutes.Use(optionalAuthMW)
	{
		viewRoutes.GET("/:page", h.ResolveView)
	}
}
