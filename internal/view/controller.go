package view

import (
	"context"
	"sync"

	"losmecanics_booking/internal/model"
	"losmecanics_booking/internal/service"
)

// ViewDescriptor is what the presentation layer renders: the resolved page
// plus the data that page needs.
type ViewDescriptor struct {
	Page         string              `json:"page"`
	Redirected   bool                `json:"redirected"`
	Session      *model.Session      `json:"session,omitempty"`
	Appointments []model.Appointment `json:"appointments,omitempty"`
	Services     []string            `json:"services,omitempty"`
	TimeSlots    []string            `json:"time_slots,omitempty"`
	Contact      *model.ContactInfo  `json:"contact,omitempty"`
}

// Controller is the single-session orchestrator for the standalone
// deployment mode: it holds the one live session and the current page,
// and wires user actions to the identity resolver and the appointment
// service. The services themselves take the session as an explicit value,
// so a multi-session server can bypass the controller entirely (the HTTP
// handlers do).
type Controller struct {
	mu           sync.Mutex
	page         string
	session      *model.Session
	auth         service.AuthService
	appointments service.AppointmentService
}

// NewController creates a Controller showing the home page, anonymous.
func NewController(auth service.AuthService, appointments service.AppointmentService) *Controller {
	return &Controller{
		page:         model.PageHome,
		auth:         auth,
		appointments: appointments,
	}
}

// Navigate requests a page change and returns the resolved view.
func (c *Controller) Navigate(page string) Resolution {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := Resolve(page, c.session)
	c.page = res.Page
	return res
}

// Login resolves an identity and auto-navigates to its dashboard. An
// already-active session is replaced unconditionally.
func (c *Controller) Login(ctx context.Context, email, password string, isSignup bool, name string) (*model.Session, error) {
	session, _, err := c.auth.Resolve(ctx, email, password, isSignup, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = session
	c.page = DashboardFor(session)
	return session, nil
}

// Logout clears the session and navigates home.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
	c.page = model.PageHome
}

// Session returns the live session, nil when anonymous.
func (c *Controller) Session() *model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Page returns the current page selector.
func (c *Controller) Page() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// BookAppointment books for the live session. Without one the request is
// rejected and the controller redirects to the login page; no appointment
// is created.
func (c *Controller) BookAppointment(ctx context.Context, draft model.CreateAppointmentRequest) (*model.Appointment, error) {
	c.mu.Lock()
	session := c.session
	if session == nil {
		c.page = model.PageLogin
	}
	c.mu.Unlock()

	return c.appointments.Book(ctx, session, draft)
}

// UpdateAppointment patches an appointment on behalf of the live session.
func (c *Controller) UpdateAppointment(ctx context.Context, id string, patch model.UpdateAppointmentRequest) (*model.Appointment, error) {
	return c.appointments.Update(ctx, c.Session(), id, patch)
}

// DeleteAppointment removes an appointment on behalf of the live session.
func (c *Controller) DeleteAppointment(ctx context.Context, id string) error {
	return c.appointments.Delete(ctx, c.Session(), id)
}

// ListAppointments returns the appointments visible to the live session.
func (c *Controller) ListAppointments(ctx context.Context, filters model.AppointmentFilters) ([]model.Appointment, error) {
	return c.appointments.List(ctx, c.Session(), filters)
}

// View re-evaluates the current page against the live session and returns
// the descriptor the presentation layer renders.
func (c *Controller) View(ctx context.Context) (*ViewDescriptor, error) {
	c.mu.Lock()
	page := c.page
	session := c.session
	c.mu.Unlock()

	res := Resolve(page, session)
	return Describe(ctx, res, session, c.appointments)
}

// Describe assembles the ViewDescriptor for a resolved page. Shared by the
// controller and the stateless HTTP view endpoint.
func Describe(ctx context.Context, res Resolution, session *model.Session, appointments service.AppointmentService) (*ViewDescriptor, error) {
	vd := &ViewDescriptor{
		Page:       res.Page,
		Redirected: res.Redirected,
		Session:    session,
	}

	switch res.Page {
	case model.PageUserDashboard, model.PageAdminDashboard:
		apts, err := appointments.List(ctx, session, model.AppointmentFilters{})
		if err != nil {
			return nil, err
		}
		vd.Appointments = apts
	case model.PageServices:
		vd.Services = model.Services
	case model.PageBookAppointment:
		vd.Services = model.Services
		vd.TimeSlots = model.TimeSlots
	case model.PageContact:
		contact := model.ShopContact
		vd.Contact = &contact
	}

	return vd, nil
}
