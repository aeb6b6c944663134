package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"losmecanics_booking/internal/handler"
	"losmecanics_booking/internal/middleware"
	"losmecanics_booking/internal/model"
	"losmecanics_booking/internal/repository"
	"losmecanics_booking/internal/service"
	"losmecanics_booking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminEmail = "admin@losmecanics.com"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryAppointmentRepository()
	require.NoError(t, repo.Seed(context.Background(), repository.SeedFixtures()))

	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	authService := service.NewAuthService(service.AllowAllVerifier{}, jwtUtil, adminEmail)
	appointmentService := service.NewAppointmentService(repo)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.NewAuthHandler(authService).RegisterAuthRoutes(api, nil)
	handler.NewAppointmentHandler(appointmentService).RegisterAppointmentRoutes(
		api, middleware.JWTAuthMiddleware(jwtUtil), middleware.AdminMiddleware())
	handler.NewViewHandler(appointmentService).RegisterViewRoutes(
		api, middleware.OptionalJWTAuthMiddleware(jwtUtil))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func login(t *testing.T, router *gin.Engine, email, name string) (token, page string) {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": "x", "name": name,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Token string `json:"token"`
		Page  string `json:"page"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.Page
}

func TestLogin_LandingPageFollowsRole(t *testing.T) {
	router := setupRouter(t)

	_, page := login(t, router, adminEmail, "")
	assert.Equal(t, model.PageAdminDashboard, page)

	_, page = login(t, router, "jane@example.com", "Jane")
	assert.Equal(t, model.PageUserDashboard, page)
}

func TestBookAppointment_RequiresAuth(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/appointments", "", gin.H{
		"user_name": "Jane", "user_email": "jane@example.com", "user_phone": "(555) 111-2222",
		"service": "Brake Service", "date": "2025-09-20", "time": "10:00",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBookAppointment_ValidationAtBoundary(t *testing.T) {
	router := setupRouter(t)
	token, _ := login(t, router, "jane@example.com", "Jane")

	// Missing service, malformed date.
	rr := doJSON(t, router, http.MethodPost, "/api/v1/appointments", token, gin.H{
		"user_name": "Jane", "user_email": "jane@example.com", "user_phone": "(555) 111-2222",
		"date": "20-09-2025", "time": "10:00",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAppointmentLifecycleOverHTTP(t *testing.T) {
	router := setupRouter(t)
	userToken, _ := login(t, router, "jane@example.com", "Jane")
	adminToken, _ := login(t, router, adminEmail, "")

	// Book.
	rr := doJSON(t, router, http.MethodPost, "/api/v1/appointments", userToken, gin.H{
		"user_name": "Jane", "user_email": "jane@example.com", "user_phone": "(555) 111-2222",
		"service": "Brake Service", "date": "2025-09-20", "time": "10:00",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var apt model.Appointment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apt))
	assert.Equal(t, model.StatusPending, apt.Status)

	// Owner sees exactly their own appointment.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/appointments", userToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var mine []model.Appointment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, apt.ID, mine[0].ID)

	// Admin sees the fixtures plus the new booking.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/appointments", adminToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var all []model.Appointment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	// Admin confirms, then deletes.
	rr = doJSON(t, router, http.MethodPut, "/api/v1/appointments/"+apt.ID, adminToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSON(t, router, http.MethodDelete, "/api/v1/appointments/"+apt.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/api/v1/appointments/"+apt.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestForeignAppointmentIsForbidden(t *testing.T) {
	router := setupRouter(t)
	token, _ := login(t, router, "bob@example.com", "")

	// Fixture "1" belongs to user1, not to this session.
	rr := doJSON(t, router, http.MethodPut, "/api/v1/appointments/1", token, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/api/v1/appointments/1", token, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAdminStats_GatedByRole(t *testing.T) {
	router := setupRouter(t)
	userToken, _ := login(t, router, "jane@example.com", "")
	adminToken, _ := login(t, router, adminEmail, "")

	rr := doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats model.AppointmentStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
}

func TestViewEndpoint_RoutesAnonymousAndAuthenticated(t *testing.T) {
	router := setupRouter(t)

	// Anonymous admin-dashboard request falls through to home.
	rr := doJSON(t, router, http.MethodGet, "/api/v1/views/admin-dashboard", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var vd struct {
		Page       string              `json:"page"`
		Redirected bool                `json:"redirected"`
		Services   []string            `json:"services"`
		Appts      []model.Appointment `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vd))
	assert.Equal(t, model.PageHome, vd.Page)
	assert.True(t, vd.Redirected)

	// Services page carries the catalog.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/views/services", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vd))
	assert.Equal(t, model.Services, vd.Services)

	// Admin resolves their dashboard with the full collection attached.
	adminToken, _ := login(t, router, adminEmail, "")
	rr = doJSON(t, router, http.MethodGet, "/api/v1/views/admin-dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vd))
	assert.Equal(t, model.PageAdminDashboard, vd.Page)
	assert.Len(t, vd.Appts, 2)
}

func TestUpdateValidation_RejectsUnknownStatus(t *testing.T) {
	router := setupRouter(t)
	adminToken, _ := login(t, router, adminEmail, "")

	rr := doJSON(t, router, http.MethodPut, "/api/v1/appointments/1", adminToken, gin.H{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
